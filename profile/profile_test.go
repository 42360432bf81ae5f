package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCachesByPayload(t *testing.T) {
	r := NewResolver(16)

	first := r.Resolve("dGV4dHVyZS1vbmU=")
	require.NotNil(t, first)
	assert.Equal(t, int64(1), r.Misses())

	second := r.Resolve("dGV4dHVyZS1vbmU=")
	assert.Same(t, first, second, "same payload must return the cached profile")
	assert.Equal(t, int64(1), r.Misses(), "second resolve must be a cache hit")

	other := r.Resolve("dGV4dHVyZS10d28=")
	assert.NotSame(t, first, other)
	assert.Equal(t, int64(2), r.Misses())
}

func TestResolveDeterministicIdentity(t *testing.T) {
	a := NewResolver(4).Resolve("c29tZS10ZXh0dXJl")
	b := NewResolver(4).Resolve("c29tZS10ZXh0dXJl")

	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.ID, b.ID, "profile identity must be derived from the payload")
	assert.Equal(t, ProfileName, a.Name)
	assert.Equal(t, "c29tZS10ZXh0dXJl", a.Textures)
}

func TestResolveEmptyPayload(t *testing.T) {
	r := NewResolver(4)
	assert.Nil(t, r.Resolve(""))
	assert.Equal(t, int64(0), r.Misses())
}

func TestDefaultResolverIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
