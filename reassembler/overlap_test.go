package reassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "suffix matches head",
			a:    "ABCDEF",
			b:    "DEFG",
			want: 3,
		},
		{
			name: "three character run",
			a:    "XYZABC",
			b:    "ABCDEF",
			want: 3,
		},
		{
			name: "whole fragment contained at non-zero offset",
			a:    "BCDE",
			b:    "ABCDEF",
			want: 4,
		},
		{
			name: "tail run inside b but not at head",
			a:    "ABCDEF",
			b:    "XCDEZ",
			want: 0,
		},
		{
			name: "partial tail at non-zero offset is rejected",
			a:    "XYZABC",
			b:    "BCABCDEF",
			want: 0,
		},
		{
			name: "no shared characters",
			a:    "AAAA",
			b:    "ZZZZ",
			want: 0,
		},
		{
			name: "real sentence fragments",
			a:    "O draconia",
			b:    "conian devil! Oh la",
			want: 5,
		},
		{
			name: "content-equal fragments never overlap themselves",
			a:    "ABC",
			b:    "ABC",
			want: 0,
		},
		{
			name: "empty a",
			a:    "",
			b:    "ABC",
			want: 0,
		},
		{
			name: "empty b",
			a:    "ABC",
			b:    "",
			want: 0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "whitespace-only fragments",
			a:    "   ",
			b:    "\t\t",
			want: 0,
		},
		{
			name: "overlapping whitespace run",
			a:    "end ",
			b:    " start",
			want: 1,
		},
		{
			name: "single character overlap",
			a:    "Jav",
			b:    "va technical",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(tt.a, tt.b))
		})
	}
}

func TestOverlapAsymmetry(t *testing.T) {
	// Overlap is directional: the tail of the first argument against the
	// head of the second.
	assert.Equal(t, 3, Overlap("ABCDEF", "DEFG"))
	assert.Equal(t, 0, Overlap("DEFG", "ABCDEF"))
}
