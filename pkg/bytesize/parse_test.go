package bytesize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "0B", want: 0},
		{input: "100b", want: 100},
		{input: "512KB", want: 512 * KB},
		{input: "10MB", want: 10 * MB},
		{input: " 1.5 gb ", want: GB + GB/2},
		{input: "2TB", want: 2 * TB},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "10", "MB", "ten MB", "-1MB", "1PB", "99999999999TB"} {
		_, err := Parse(input)
		assert.Error(t, err, input)
	}
}

func TestCeilMB(t *testing.T) {
	assert.Equal(t, 0, CeilMB(0))
	assert.Equal(t, 1, CeilMB(1))
	assert.Equal(t, 1, CeilMB(MB))
	assert.Equal(t, 2, CeilMB(MB+1))
}
