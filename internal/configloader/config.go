package configloader

import (
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel string `mapstructure:"LOG_LEVEL"` // logrus library log level to be assigned

	// Launcher
	Terminal       string `mapstructure:"TERMINAL"`    // terminal backend name, "auto" to detect it
	Interpreter    string `mapstructure:"INTERPRETER"` // command prefixed to the entry point, may be empty
	EntryPoint     string `mapstructure:"ENTRY_POINT"` // file executed inside the new session
	Focus          bool   `mapstructure:"FOCUS"`
	Title          string `mapstructure:"TITLE"`
	HistoryEnabled bool   `mapstructure:"HISTORY_ENABLED"`
	HistoryPath    string `mapstructure:"HISTORY_PATH"`

	// Bootstrap
	ProjectRoot   string        `mapstructure:"PROJECT_ROOT"`
	GUIDir        string        `mapstructure:"GUI_DIR"`
	VenvDir       string        `mapstructure:"VENV_DIR"`
	Python        string        `mapstructure:"PYTHON"`
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	BrowserDelay  time.Duration `mapstructure:"BROWSER_DELAY"`
	OpenBrowser   bool          `mapstructure:"OPEN_BROWSER"`
}

// Initialize default parameters values
func initDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("TERMINAL", "auto")
	v.SetDefault("ENTRY_POINT", "launcher.py")
	v.SetDefault("FOCUS", true)
	v.SetDefault("TITLE", "termlaunch")
	v.SetDefault("HISTORY_ENABLED", false)
	v.SetDefault("HISTORY_PATH", "")

	v.SetDefault("PROJECT_ROOT", "")
	v.SetDefault("GUI_DIR", "GUI")
	v.SetDefault("VENV_DIR", ".venv")
	python := "python3"
	if runtime.GOOS == "windows" {
		python = "python"
	}
	v.SetDefault("INTERPRETER", python)
	v.SetDefault("PYTHON", python)
	v.SetDefault("SERVER_ADDRESS", "127.0.0.1:8462")
	v.SetDefault("BROWSER_DELAY", 2*time.Second)
	v.SetDefault("OPEN_BROWSER", true)
}

// Load configuration from file and environment.
// Environment variables are prefixed by the upper case application name,
// e.g. TERMLAUNCH_LOG_LEVEL. Extra search paths are looked up before the
// current folder.
func LoadConfiguration(applicationName string, configurationFilePath string, searchPaths ...string) (config Config, err error) {
	v := viper.New()
	initDefaultConfiguration(v)

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName*, search paths or current folders
		v.AddConfigPath(filepath.Join(root, "etc", applicationName))
		v.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		for _, searchPath := range searchPaths {
			v.AddConfigPath(searchPath)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		v.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	v.SetEnvPrefix(strings.ToUpper(applicationName))
	v.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := v.ReadInConfig(); configError != nil {
		if _, notFound := configError.(viper.ConfigFileNotFoundError); notFound {
			logrus.Debug(configError.Error())
		} else {
			logrus.Warn(configError.Error())
		}
	}
	err = v.Unmarshal(&config)

	return
}
