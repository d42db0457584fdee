package shortcut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilities_BundleReadsLatestRegistration(t *testing.T) {
	caps := NewCapabilities()

	var first, second []bool
	caps.Acquire(QuickFind, func(open bool) { first = append(first, open) })
	caps.Acquire(QuickFind, func(open bool) { second = append(second, open) })

	require.NoError(t, caps.Bundle().OpenQuickFind(true))
	assert.Empty(t, first)
	assert.Equal(t, []bool{true}, second)
}

func TestCapabilities_StaleReleaseKeepsNewerRegistration(t *testing.T) {
	caps := NewCapabilities()

	releaseOld := caps.Acquire(CommandMenu, func(bool) {})
	opened := false
	releaseNew := caps.Acquire(CommandMenu, func(bool) { opened = true })

	releaseOld()
	require.NoError(t, caps.Bundle().OpenCommandMenu(true))
	assert.True(t, opened)

	releaseNew()
	releaseNew()
	assert.ErrorIs(t, caps.Bundle().OpenCommandMenu(true), ErrCapabilityUnavailable)
}

func TestCapabilities_Navigator(t *testing.T) {
	caps := NewCapabilities()
	assert.ErrorIs(t, caps.Bundle().Navigate("/"), ErrCapabilityUnavailable)

	var path string
	release := caps.AcquireNavigator(func(p string) { path = p })
	require.NoError(t, caps.Bundle().Navigate("/items"))
	assert.Equal(t, "/items", path)

	release()
	assert.ErrorIs(t, caps.Bundle().Navigate("/"), ErrCapabilityUnavailable)
}

func TestCapabilities_BundleIsSnapshot(t *testing.T) {
	caps := NewCapabilities()
	bundle := caps.Bundle()

	caps.Acquire(IdentityPicker, func(bool) {})

	assert.ErrorIs(t, bundle.OpenIdentityPicker(true), ErrCapabilityUnavailable)
	assert.NoError(t, caps.Bundle().OpenIdentityPicker(true))
}
