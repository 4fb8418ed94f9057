package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAge(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{name: "seconds only", age: 45 * time.Second, want: "45s"},
		{name: "minutes", age: 2*time.Minute + 30*time.Second, want: "2m 30s"},
		{name: "hours", age: 3*time.Hour + 15*time.Minute, want: "3h 15m"},
		{name: "days", age: 5*24*time.Hour + 4*time.Hour, want: "5d 4h"},
		{name: "negative clamps to zero", age: -time.Minute, want: "0s"},
		{name: "zero", age: 0, want: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAge(tt.age))
		})
	}
}
