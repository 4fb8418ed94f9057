package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "json", input: "json", want: FormatJSON},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  table  ", want: FormatTable},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuccess(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		Success(&buf, "item 3 deleted successfully", false)

		assert.Equal(t, "item 3 deleted successfully\n", buf.String())
	})

	t.Run("color", func(t *testing.T) {
		var buf bytes.Buffer
		Success(&buf, "item 3 deleted successfully", true)

		got := buf.String()
		assert.Contains(t, got, "item 3 deleted successfully")
		assert.Contains(t, got, "\033[32m")
	})
}
