package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	l, c, err := New(path, logrus.DebugLevel)
	require.NoError(t, err)

	l.WithField("slot", "due").Debug("pick committed")
	require.NoError(t, c.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(raw))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "pick committed", entry["msg"])
	assert.Equal(t, "due", entry["slot"])
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	l, c, err := New("  ", logrus.InfoLevel)
	require.NoError(t, err)
	require.NotNil(t, c)
	l.Info("dropped")
	assert.NoError(t, c.Close())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logrus.PanicLevel, ParseLevel("silent"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, logrus.DebugLevel, ParseLevel(""))
	assert.Equal(t, logrus.DebugLevel, ParseLevel("bogus"))
}
