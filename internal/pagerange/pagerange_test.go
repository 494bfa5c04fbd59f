package pagerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want []int
	}{
		{"5", []int{5}},
		{"5,6,7", []int{5, 6, 7}},
		{"5-8", []int{5, 6, 7, 8}},
		{"5,8-10,12", []int{5, 8, 9, 10, 12}},
		{"7,5,6", []int{5, 6, 7}},
		{"5,5,5-6", []int{5, 6}},
		{" 5 , 6 ", []int{5, 6}},
		{"5,,6", []int{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, spec := range []string{"", "  ", "abc", "5-abc", "8-5", "5;6"} {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec)
			assert.Error(t, err)
		})
	}
}
