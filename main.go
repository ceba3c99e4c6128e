// Command termlaunch opens a new terminal window rooted at the folder holding
// its executable and runs the configured entry point there.
//
// The launcher returns as soon as the terminal application accepted the
// request: its exit status never reflects the outcome of the entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"termlaunch.dev/launcher/internal/configloader"
	"termlaunch.dev/launcher/internal/history"
	"termlaunch.dev/launcher/internal/history/delegate/sqlite"
	"termlaunch.dev/launcher/internal/launcher"
	"termlaunch.dev/launcher/internal/location"
	"termlaunch.dev/launcher/internal/terminal"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "termlaunch"

func main() {
	os.Exit(run())
}

func run() int {
	// Parsing the command line arguments
	configurationFilePath := flag.String("config", "", "Configuration file path")
	historyLimit := flag.Int("history", 0, "Print the given number of latest launches and exit")
	dryRun := flag.Bool("dry-run", false, "Print the terminal command instead of running it")
	flag.Parse()

	// Loading application configuration, also looked up next to the executable
	var searchPaths []string
	if executableFolder, err := location.Executable(); err == nil {
		searchPaths = append(searchPaths, executableFolder)
	}
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath, searchPaths...)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}
	logrus.Debugf("Setting log level to %s", level.String())
	if bi, ok := debug.ReadBuildInfo(); ok {
		logrus.Debug("Launching termlaunch v.", bi.Main.Version)
	}

	var recorder launcher.Recorder
	launchHistory, err := openHistory(configuration, *historyLimit > 0)
	if err != nil {
		logrus.Warnf("Launch history unavailable: %v", err)
		if *historyLimit > 0 {
			return 1
		}
	} else if launchHistory != nil {
		defer launchHistory.Deinitialize()
		if *historyLimit > 0 {
			return printHistory(launchHistory, *historyLimit)
		}
		recorder = launchHistory
	}

	selectedTerminal, err := terminal.Select(configuration.Terminal, runtime.GOOS, exec.LookPath)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	instance := launcher.New(launcher.Options{
		Resolver:    location.Executable,
		Terminal:    selectedTerminal,
		Spawner:     terminal.ProcessSpawner{},
		Recorder:    recorder,
		Interpreter: configuration.Interpreter,
		EntryPoint:  configuration.EntryPoint,
		Focus:       configuration.Focus,
		Title:       configuration.Title,
	})

	if *dryRun {
		session, err := instance.Session()
		if err != nil {
			logrus.Error(err)
			return 1
		}
		fmt.Println(selectedTerminal.Command(session))
		return 0
	}

	if _, err = instance.Launch(); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

// openHistory opens the launch history when it is enabled or listed.
// It returns nil otherwise, leaving the file system untouched.
func openHistory(configuration configloader.Config, listing bool) (*history.History, error) {
	if !configuration.HistoryEnabled && !listing {
		return nil, nil
	}
	launchHistory := history.NewHistory(historyPath(configuration), &sqlite.SQLiteDelegate{})
	if err := launchHistory.Initialize(); err != nil {
		return nil, err
	}
	return launchHistory, nil
}

func historyPath(configuration configloader.Config) string {
	if configuration.HistoryPath != "" {
		return configuration.HistoryPath
	}
	if configFolder, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configFolder, APPLICATION_NAME)
	}
	return filepath.Join(os.TempDir(), APPLICATION_NAME)
}

func printHistory(launchHistory *history.History, limit int) int {
	launches, err := launchHistory.Latest(limit)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "STARTED\tTERMINAL\tPID\tDIRECTORY\tERROR")
	for _, launch := range launches {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\n",
			launch.StartedAt.Local().Format(time.DateTime), launch.Terminal, launch.Pid, launch.Directory, launch.Error.String)
	}
	writer.Flush()
	return 0
}
