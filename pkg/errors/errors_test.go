package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	sentinel := New("something failed")
	cause := fmt.Errorf("io timeout")

	err := sentinel.Wrap(cause)
	require.Error(t, err)
	assert.Equal(t, "something failed: io timeout", err.Error())
	assert.True(t, Is(err, sentinel))
	assert.Equal(t, cause, err.Unwrap())

	// wrapping copies: the sentinel itself stays pristine
	assert.Nil(t, sentinel.Unwrap())
}

func TestWrapMessage(t *testing.T) {
	sentinel := New("parse failed")
	cause := fmt.Errorf("bad byte")

	err := sentinel.WrapMessage(cause, "file %q", "de.strings")
	assert.Equal(t, `file "de.strings": parse failed: bad byte`, err.Error())
	assert.True(t, Is(err, sentinel))

	noCause := sentinel.WrapMessage(nil, "file %q", "fr.strings")
	assert.Equal(t, `file "fr.strings": parse failed`, noCause.Error())
	assert.True(t, Is(noCause, sentinel))
}

func TestIsAcrossInstances(t *testing.T) {
	a := New("same message")
	b := New("same message")
	assert.True(t, Is(a.Wrap(fmt.Errorf("x")), b))
	assert.False(t, Is(a, New("other message")))
}
