package images

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := NewError(ErrBufferTooSmall, "out.png", errors.New("need 16 bytes"))
	wrapped := errors.Wrap(err, "set data")

	assert.True(t, errors.Is(wrapped, ErrBufferTooSmall))
	assert.False(t, errors.Is(wrapped, ErrEncode))
	assert.Equal(t, ErrBufferTooSmall, KindOf(wrapped))
	assert.Equal(t, "set data: buffer too small: out.png: need 16 bytes", wrapped.Error())
}

func TestErrorUnwrapsCause(t *testing.T) {
	err := NewError(ErrIO, "x", os.ErrNotExist)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, errors.Is(err, ErrIO))
}

func TestKindOfPlainErrors(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, ErrDecode, KindOf(errors.Wrap(ErrDecode, "bare kind")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
