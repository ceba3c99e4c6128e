package configloader_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"termlaunch.dev/launcher/internal/configloader"
)

// Test default configuration loading
func TestLoadDefaultConfiguration(t *testing.T) {
	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "info" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "info")
	}
	assert.Equal(t, "auto", configuration.Terminal)
	if runtime.GOOS == "windows" {
		assert.Equal(t, "python", configuration.Interpreter)
	} else {
		assert.Equal(t, "python3", configuration.Interpreter)
	}
	assert.Equal(t, configuration.Python, configuration.Interpreter)
	assert.Equal(t, "launcher.py", configuration.EntryPoint)
	assert.True(t, configuration.Focus)
	assert.False(t, configuration.HistoryEnabled, "The launch history must be opt-in")
	assert.Equal(t, "127.0.0.1:8462", configuration.ServerAddress)
	assert.Equal(t, 2*time.Second, configuration.BrowserDelay)
}

// Test environment variables configuration loading
func TestLoadEnvironmentVariablesConfiguration(t *testing.T) {
	t.Setenv("UNEXISTENT_LOG_LEVEL", "LOG_LEVEL")
	t.Setenv("UNEXISTENT_FOCUS", "false")
	t.Setenv("UNEXISTENT_BROWSER_DELAY", "500ms")

	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "LOG_LEVEL" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "LOG_LEVEL")
	}
	assert.False(t, configuration.Focus)
	assert.Equal(t, 500*time.Millisecond, configuration.BrowserDelay)
}

// Test configuration file loading from a search path
func TestLoadSearchPathConfiguration(t *testing.T) {
	folder := t.TempDir()
	data := "TERMINAL: xterm\nENTRY_POINT: main.py\nINTERPRETER: \"\"\n"
	if err := os.WriteFile(filepath.Join(folder, "config.yaml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	configuration, err := configloader.LoadConfiguration("unexistent", "", folder)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "xterm", configuration.Terminal)
	assert.Equal(t, "main.py", configuration.EntryPoint)
	assert.Equal(t, "", configuration.Interpreter)
}

// Test explicit configuration file loading
func TestLoadFileConfiguration(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(filePath, []byte("SERVER_ADDRESS: 0.0.0.0:9000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	configuration, err := configloader.LoadConfiguration("unexistent", filePath)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "0.0.0.0:9000", configuration.ServerAddress)
	assert.Equal(t, "info", configuration.LogLevel)
}
