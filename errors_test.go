package docq_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docq"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docq.Errorf(docq.ENOTFOUND, "page %q not found", "test")

	assert.Equal(t, docq.ENOTFOUND, docq.ErrorCode(err))
	assert.Equal(t, "page \"test\" not found", docq.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docq.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docq.EINTERNAL, docq.ErrorCode(errors.New("disk on fire")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docq.ErrorMessage(nil))
}
