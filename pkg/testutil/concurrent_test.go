package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "recordkeeper/pkg/domain-errors"
)

func TestRunConcurrentCategorizes(t *testing.T) {
	result := RunConcurrent(8, func(idx int) error {
		switch idx % 4 {
		case 0:
			return nil
		case 1:
			return dErrors.New(dErrors.CodeConflict, "duplicate")
		case 2:
			return dErrors.Wrap(errors.New("gone"), dErrors.CodeNotFound, "missing")
		default:
			return errors.New("boom")
		}
	})

	assert.Equal(t, int32(2), result.Successes)
	assert.Equal(t, int32(2), result.Conflicts)
	assert.Equal(t, int32(2), result.NotFounds)
	assert.Equal(t, int32(2), result.Errors)
	assert.Equal(t, int32(8), result.Total())
}
