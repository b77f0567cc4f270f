package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type thing struct{ n int }

func TestName(t *testing.T) {
	a, b := &thing{1}, &thing{2}
	assert.Equal(t, Name(a), Name(a))
	assert.NotEqual(t, Name(a), Name(b))

	var none *thing
	assert.Equal(t, "Ø", Name(none))
	assert.Equal(t, "Ø", Name(nil))
}

func TestColorName(t *testing.T) {
	a := &thing{1}
	assert.Equal(t, Name(a), ColorName(a, Plain))
	assert.Contains(t, ColorName(a, Dead), Name(a))
}

func TestDump(t *testing.T) {
	assert.Contains(t, Dump(thing{42}), "42")
}
