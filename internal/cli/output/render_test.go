package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemDoc struct {
	ID   uint   `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	err := PrintJSON(&buf, []itemDoc{{ID: 1, Name: "Quarterly Report"}})
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, `"id": 1`)
	assert.Contains(t, got, `"name": "Quarterly Report"`)
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	err := PrintYAML(&buf, itemDoc{ID: 2, Name: "Weekly Digest"})
	require.NoError(t, err)

	got := buf.String()
	assert.Contains(t, got, "id: 2")
	assert.Contains(t, got, "name: Weekly Digest")
}
