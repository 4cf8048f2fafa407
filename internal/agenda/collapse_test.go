package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseState_ToggleIndependentSections(t *testing.T) {
	state := NewCollapseState()

	state = state.Toggle("2025-01-01")
	assert.True(t, state.Collapsed("2025-01-01"))
	assert.False(t, state.Collapsed("2025-01-02"))

	state = state.Toggle("2025-01-02")
	assert.True(t, state.Collapsed("2025-01-01"))
	assert.True(t, state.Collapsed("2025-01-02"))

	state = state.Toggle("2025-01-01")
	assert.False(t, state.Collapsed("2025-01-01"))
	assert.True(t, state.Collapsed("2025-01-02"))
}

func TestCollapseState_ToggleReturnsNewMap(t *testing.T) {
	original := NewCollapseState()
	toggled := original.Toggle("2025-01-01")

	assert.False(t, original.Collapsed("2025-01-01"))
	assert.True(t, toggled.Collapsed("2025-01-01"))
}

func TestCollapseState_UnknownSectionExpanded(t *testing.T) {
	state := NewCollapseState()
	assert.False(t, state.Collapsed("never-seen"))
}
