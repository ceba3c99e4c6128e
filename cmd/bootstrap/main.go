// Command bootstrap prepares the Python virtual environment of the GUI,
// installs its requirements and serves it, opening the browser on it.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"termlaunch.dev/launcher/internal/bootstrap"
	"termlaunch.dev/launcher/internal/configloader"
	"termlaunch.dev/launcher/internal/location"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "termlaunch"

func main() {
	os.Exit(run())
}

func run() int {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
	flag.Parse()

	executableFolder, err := location.Executable()
	if err != nil {
		logrus.Error(err)
		return 1
	}
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath, executableFolder)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	logrus.SetLevel(level)

	// The executable lives in the GUI folder by default
	projectRoot := configuration.ProjectRoot
	if projectRoot == "" {
		projectRoot = filepath.Dir(executableFolder)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instance := bootstrap.New(bootstrap.Options{
		ProjectRoot:   projectRoot,
		GUIDir:        configuration.GUIDir,
		VenvDir:       configuration.VenvDir,
		Python:        configuration.Python,
		ServerAddress: configuration.ServerAddress,
		BrowserDelay:  configuration.BrowserDelay,
		OpenBrowser:   configuration.OpenBrowser,
	})
	instance.Events.Subscribe(bootstrap.LogEvent)

	banner := strings.Repeat("=", 40)
	logrus.Info(banner)
	logrus.Info("  GUI bootstrap")
	logrus.Info(banner)
	logrus.WithField("root", projectRoot).Debug("Project root")

	if err = instance.Run(ctx); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}
