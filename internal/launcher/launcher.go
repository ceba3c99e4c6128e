// Package launcher opens a terminal session rooted at the launcher folder
// and running the configured entry point.
package launcher

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"termlaunch.dev/launcher/internal/entity"
	"termlaunch.dev/launcher/internal/location"
	"termlaunch.dev/launcher/internal/terminal"
)

// Recorder journals launch requests
type Recorder interface {
	Record(launch *entity.Launch)
}

type Options struct {
	Resolver    location.Resolver
	Terminal    terminal.Terminal
	Spawner     terminal.Spawner
	Recorder    Recorder // optional
	Interpreter string   // split on blanks, empty to execute the entry point directly
	EntryPoint  string
	Focus       bool
	Title       string
}

type Launcher struct {
	options Options
}

// Result describes an accepted launch request
type Result struct {
	Directory string
	Terminal  string
	Command   terminal.Command
	Pid       int
}

func New(options Options) *Launcher {
	if options.Spawner == nil {
		options.Spawner = terminal.ProcessSpawner{}
	}
	if options.Resolver == nil {
		options.Resolver = location.Executable
	}
	return &Launcher{options: options}
}

// Argv returns the program run inside the session
func (l *Launcher) Argv() (argv []string) {
	argv = strings.Fields(l.options.Interpreter)
	return append(argv, l.options.EntryPoint)
}

// Session resolves the launch folder and describes the session to open
func (l *Launcher) Session() (session terminal.Session, err error) {
	var directory string
	if directory, err = l.options.Resolver(); err != nil {
		return session, fmt.Errorf("cannot resolve launch directory: %w", err)
	}
	return terminal.Session{
		Directory: directory,
		Argv:      l.Argv(),
		Focus:     l.options.Focus,
		Title:     l.options.Title,
	}, nil
}

// Launch issues a single terminal open request and returns as soon as the
// host accepted it. The entry point existence is left to the session.
func (l *Launcher) Launch() (result Result, err error) {
	var session terminal.Session
	if session, err = l.Session(); err != nil {
		return
	}
	result = Result{
		Directory: session.Directory,
		Terminal:  l.options.Terminal.Name(),
		Command:   l.options.Terminal.Command(session),
	}
	logrus.WithFields(logrus.Fields{
		"directory": result.Directory,
		"terminal":  result.Terminal,
	}).Infof("Launching %s", strings.Join(session.Argv, " "))
	logrus.Debugf("Terminal command: %s", result.Command)

	result.Pid, err = l.options.Spawner.Spawn(result.Command)
	if l.options.Recorder != nil {
		l.options.Recorder.Record(entity.NewLaunch(result.Directory, result.Terminal, result.Command.String(), result.Pid, err))
	}
	return
}
