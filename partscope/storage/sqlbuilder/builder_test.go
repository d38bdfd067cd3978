package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	tests := []struct {
		name  string
		style PlaceholderStyle
		want  string
	}{
		{"question", PlaceholderQuestion, "?, ?, ?"},
		{"dollar", PlaceholderDollar, "$1, $2, $3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.style)
			assert.Equal(t, tt.want, b.List(1, "x", nil))
			assert.Equal(t, []any{1, "x", nil}, b.Args())
			assert.Equal(t, 3, b.Len())
		})
	}

	b := New(PlaceholderDollar)
	b.Arg("a")
	assert.Equal(t, "$2, $3", b.List("b", "c"))
}
