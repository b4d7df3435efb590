//go:build !release

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert_PassesThrough(t *testing.T) {
	assert.True(t, Assert(true, "never shown"))
}

func TestAssert_PanicsInDevelopment(t *testing.T) {
	assert.PanicsWithValue(t, "assertion failed: len 3 != 4", func() {
		Assert(false, "len %d != %d", 3, 4)
	})
}

func TestEntity_Valid(t *testing.T) {
	assert.False(t, NoEntity.Valid())
	assert.True(t, Entity(7).Valid())
}
