package reassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRecord(t *testing.T) {
	tests := []struct {
		name   string
		record string
		delim  rune
		want   []string
	}{
		{
			name:   "basic record",
			record: "one;two;three",
			delim:  ';',
			want:   []string{"one", "two", "three"},
		},
		{
			name:   "no delimiter yields single fragment",
			record: "whole line",
			delim:  ';',
			want:   []string{"whole line"},
		},
		{
			name:   "trailing delimiter token dropped",
			record: "one;two;",
			delim:  ';',
			want:   []string{"one", "two"},
		},
		{
			name:   "consecutive delimiter tokens dropped",
			record: "one;;two",
			delim:  ';',
			want:   []string{"one", "two"},
		},
		{
			name:   "leading delimiter token dropped",
			record: ";one",
			delim:  ';',
			want:   []string{"one"},
		},
		{
			name:   "whitespace fragments preserved",
			record: "one; ;two",
			delim:  ';',
			want:   []string{"one", " ", "two"},
		},
		{
			name:   "only delimiters",
			record: ";;;",
			delim:  ';',
			want:   []string{},
		},
		{
			name:   "alternate delimiter",
			record: "a|b|c",
			delim:  '|',
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "semicolons ignored under alternate delimiter",
			record: "a;b|c",
			delim:  '|',
			want:   []string{"a;b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRecord(tt.record, tt.delim))
		})
	}
}
