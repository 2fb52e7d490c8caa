package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "hello world",
			want: "hello world",
		},
		{
			name: "unicode spaces normalized",
			in:   "a b c　d e",
			want: "a b c d e",
		},
		{
			name: "line separators become newlines",
			in:   "line1 line2\rline3",
			want: "line1\nline2\nline3",
		},
		{
			name: "control characters dropped, tabs and newlines kept",
			in:   "a\x00b\tc\nd",
			want: "ab\tc\nd",
		},
		{
			name: "leading colon escaped",
			in:   "note: details",
			want: `note\: details`,
		},
		{
			name: "colon after first space untouched",
			in:   "a note: details",
			want: "a note: details",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}
