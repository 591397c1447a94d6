package theme

import (
	"testing"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFromSettingsPresets(t *testing.T) {
	th := FromSettings(model.Settings{Theme: "dark", ThemeColor: model.ThemeEmerald})
	assert.Equal(t, Dark.Background, th.Background)
	assert.Equal(t, lipgloss.Color("#10B981"), th.Accent)
	assert.Equal(t, th.Accent, th.BorderAccent)
}

func TestFromSettingsCustomHex(t *testing.T) {
	th := FromSettings(model.Settings{Theme: "light", ThemeColor: model.ThemeCustom, CustomHex: "#ABCDEF"})
	assert.Equal(t, lipgloss.Color("#ABCDEF"), th.Accent)
	assert.Equal(t, Light.Background, th.Background)
}

func TestFromSettingsUnknownFallsBackToIndigo(t *testing.T) {
	th := FromSettings(model.Settings{Theme: "light", ThemeColor: "mystery"})
	assert.Equal(t, lipgloss.Color("#6366F1"), th.Accent)
}
