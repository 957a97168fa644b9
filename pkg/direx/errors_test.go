package direx

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestError(t *testing.T) {
	t.Run("with_path", func(t *testing.T) {
		err := newError(ErrCodeReadDir, "/etc/secret", os.ErrPermission)
		assert.Equal(t, "READ_DIR: /etc/secret: permission denied", err.Error())
	})

	t.Run("without_path", func(t *testing.T) {
		err := newError(ErrCodeInput, "", fmt.Errorf("bad event"))
		assert.Equal(t, "INPUT: bad event", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		err := newError(ErrCodeReadDir, "/d", os.ErrNotExist)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestIsCode(t *testing.T) {
	err := newError(ErrCodeInvalidStartDir, "/nope", os.ErrNotExist)
	assert.True(t, IsCode(err, ErrCodeInvalidStartDir))
	assert.False(t, IsCode(err, ErrCodeReadDir))
	assert.True(t, IsCode(fmt.Errorf("wrapped: %w", err), ErrCodeInvalidStartDir))
	assert.False(t, IsCode(os.ErrNotExist, ErrCodeReadDir))
	assert.False(t, IsCode(nil, ErrCodeReadDir))
}
