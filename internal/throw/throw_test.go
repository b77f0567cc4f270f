package throw

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			Fatalf("kaboom %d", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom 3: invariant violated")
		assert.True(t, errors.Is(err, ErrInvariant))
		assert.Equal(t, ErrInvariant, errors.Cause(err))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestFatalKeepsCause(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := func() (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		Fatal(sentinel, "while testing")
		return nil
	}()
	assert.EqualError(t, err, "while testing: sentinel")
	assert.True(t, errors.Is(err, sentinel))
}
