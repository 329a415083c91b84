package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chart struct {
	Name     string  `json:"name"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	LogLevel string  `json:"log_level"`
}

func TestLoad(t *testing.T) {
	var c chart
	require.NoError(t, Load(".", "silhouette", &c))
	assert.Equal(t, 6.4, c.Width)
	assert.Equal(t, 4.8, c.Height)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))

	var c chart
	assert.Error(t, Load(dir, "missing", &c))
	assert.Error(t, Load(dir, "broken", &c))
}
