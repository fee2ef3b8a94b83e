package goroutine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorfund/creatorfund/internal/shared/logger"
)

func TestGo(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		fn      func() error
		wantErr string
	}{
		{"success", func() error { return nil }, ""},
		{"error", func() error { return errBoom }, "boom"},
		{"panic", func() error { panic("kaput") }, "listener panicked: kaput"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := Go(logger.NewNop(), "listener", tt.fn)

			err, ok := <-done
			if tt.wantErr == "" {
				assert.False(t, ok)
				assert.NoError(t, err)
				return
			}
			require.True(t, ok)
			assert.EqualError(t, err, tt.wantErr)

			_, open := <-done
			assert.False(t, open)
		})
	}
}
