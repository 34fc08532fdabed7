package helpers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, errors.New("forced read error")
}

func TestShortChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty string", "", "e3b0c442"},
		{"basic string", "hello world", "b94d27b9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ShortChecksum(tt.in))

			got, err := ShortChecksumReader(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("reader error", func(t *testing.T) {
		t.Parallel()
		_, err := ShortChecksumReader(errorReader{})
		require.Error(t, err)
	})
}
