//go:build unit

package ptr_test

import (
	"testing"

	"foodshare/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	v := 3
	p := ptr.Of(v)
	v = 4

	assert.Equal(t, 3, *p)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "pickup", ptr.Deref(ptr.Of("pickup")))
	assert.Empty(t, ptr.Deref[string](nil))
	assert.Zero(t, ptr.Deref[int](nil))
}
