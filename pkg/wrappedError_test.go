package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrappedErrorWithoutError(t *testing.T) {
	wErr := NewWrappedError("f()")
	assert.Equal(t, "", wErr.Error())
	assert.NoError(t, wErr.Report())
	assert.Nil(t, wErr.Unwrap())
}

func TestWrappedErrorSpecify(t *testing.T) {
	cause := errors.New("boom")
	wErr := NewWrappedError("f()").Specify(cause, "g()").With("position", 3)

	assert.Equal(t, "'g()' in function 'f()' invoked 'boom'", wErr.Error())
	require.ErrorIs(t, wErr, cause)
	assert.Same(t, cause, wErr.Report())

	// nil не перезаписывает уже указанную ошибку
	wErr.Specify(nil, "h()")
	assert.Same(t, cause, wErr.Unwrap())
}
