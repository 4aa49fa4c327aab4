package docs

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopics_Sorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"compose", "config", "dial", "grid", "picker"}, Topics())
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get(" Dial ")
	require.True(t, ok)
	assert.Contains(t, body, "# Dial")

	_, ok = Get("../docs")
	assert.False(t, ok)
	_, ok = Get("nope")
	assert.False(t, ok)
}

func TestStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "light", Style("light", "true", ""))
	assert.Equal(t, "dark", Style("auto", "true", ""))
	assert.Equal(t, "light", Style("", "false", "0;0"))
	assert.Equal(t, "light", Style("", "", "0;15"))
	assert.Equal(t, "dark", Style("", "", "15;0"))
}

func TestRender_ProducesText(t *testing.T) {
	t.Parallel()

	body, _ := Get("grid")
	out, err := Render(body, 80, "dark")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "Calendar grid")

	out, err = Render("   ", 80, "light")
	require.NoError(t, err)
	assert.Empty(t, out)
}
