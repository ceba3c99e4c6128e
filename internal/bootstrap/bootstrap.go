// Package bootstrap prepares a Python virtual environment for a Django GUI
// and serves it.
//
// The installer is uv when available on PATH, pip from the virtual
// environment otherwise. Requirement files are installed again only when
// their content or the installer changes.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/browser"
	"termlaunch.dev/launcher/internal/folder"
	"termlaunch.dev/launcher/pkg/eventemitter"
)

type Options struct {
	ProjectRoot   string
	GUIDir        string // relative to the project root unless absolute
	VenvDir       string // relative to the project root unless absolute
	Python        string // interpreter creating the virtual environment
	ServerAddress string
	BrowserDelay  time.Duration
	OpenBrowser   bool

	GOOS    string                 // host operating system, runtime.GOOS by default
	Runner  Runner                 // ExecRunner by default
	Browser func(url string) error // browser.OpenURL by default
}

type Bootstrapper struct {
	options Options
	useUV   bool

	Events eventemitter.EventEmitter[Event]
}

func New(options Options) *Bootstrapper {
	if options.GOOS == "" {
		options.GOOS = runtime.GOOS
	}
	if options.Runner == nil {
		options.Runner = ExecRunner{}
	}
	if options.Browser == nil {
		options.Browser = browser.OpenURL
	}
	return &Bootstrapper{options: options}
}

// Run prepares the environment and serves the GUI until ctx is cancelled
// or the server exits.
func (b *Bootstrapper) Run(ctx context.Context) (err error) {
	b.DetectUV(ctx)
	if err = b.EnsureVenv(ctx); err != nil {
		return
	}
	if err = b.InstallRequirements(ctx); err != nil {
		return
	}
	return b.Serve(ctx)
}

func (b *Bootstrapper) emit(stage Stage, status Status, message string, err error) {
	b.Events.Emit(Event{Stage: stage, Status: status, Message: message, Err: err})
}

func (b *Bootstrapper) projectPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(b.options.ProjectRoot, path)
}

func (b *Bootstrapper) VenvPath() string {
	return b.projectPath(b.options.VenvDir)
}

func (b *Bootstrapper) GUIPath() string {
	return b.projectPath(b.options.GUIDir)
}

// BinPath returns the virtual environment executables folder
func (b *Bootstrapper) BinPath() string {
	if b.options.GOOS == "windows" {
		return filepath.Join(b.VenvPath(), "Scripts")
	}
	return filepath.Join(b.VenvPath(), "bin")
}

// PythonPath returns the virtual environment interpreter
func (b *Bootstrapper) PythonPath() string {
	if b.options.GOOS == "windows" {
		return filepath.Join(b.BinPath(), "python.exe")
	}
	return filepath.Join(b.BinPath(), "python")
}

func (b *Bootstrapper) installer() string {
	if b.useUV {
		return "uv"
	}
	return "pip"
}

// DetectUV checks whether the uv package manager can be used
func (b *Bootstrapper) DetectUV(ctx context.Context) bool {
	b.useUV = b.options.Runner.Run(ctx, Command{Name: "uv", Args: []string{"--version"}, Quiet: true}) == nil
	if b.useUV {
		b.emit(StageInstaller, StatusDone, "uv found, using it for package management", nil)
	} else {
		b.emit(StageInstaller, StatusWarning, "uv not found, using standard pip/venv (install uv: https://github.com/astral-sh/uv)", nil)
	}
	return b.useUV
}

// EnsureVenv creates the virtual environment unless it exists
func (b *Bootstrapper) EnsureVenv(ctx context.Context) (err error) {
	venvPath := b.VenvPath()
	if _, err = os.Stat(venvPath); err == nil {
		b.emit(StageVenv, StatusDone, "Virtual environment exists", nil)
		return nil
	}

	b.emit(StageVenv, StatusStarted, "Creating virtual environment", nil)
	command := Command{Name: b.options.Python, Args: []string{"-m", "venv", venvPath}, Dir: b.options.ProjectRoot}
	if b.useUV {
		command = Command{Name: "uv", Args: []string{"venv", venvPath}, Dir: b.options.ProjectRoot}
	}
	if err = b.options.Runner.Run(ctx, command); err != nil {
		err = fmt.Errorf("cannot create virtual environment: %w", err)
		b.emit(StageVenv, StatusFailed, "Failed to create virtual environment", err)
		return
	}
	b.emit(StageVenv, StatusDone, "Virtual environment created", nil)
	return nil
}

type requirementsFile struct {
	name string
	path string
}

func (b *Bootstrapper) requirementsFiles() []requirementsFile {
	return []requirementsFile{
		{"root", filepath.Join(b.options.ProjectRoot, folder.Requirements)},
		{"GUI", filepath.Join(b.GUIPath(), folder.Requirements)},
	}
}

// InstallRequirements installs the project and GUI requirement files,
// stopping at the first failure.
func (b *Bootstrapper) InstallRequirements(ctx context.Context) (err error) {
	stampPath := filepath.Join(b.VenvPath(), folder.Stamp)
	stamp, stampErr := LoadStamp(stampPath)
	if stampErr != nil {
		b.emit(StageRequirements, StatusWarning, "Unreadable install stamp, installing everything", stampErr)
	}
	installer := b.installer()

	for _, requirements := range b.requirementsFiles() {
		if _, statErr := os.Stat(requirements.path); os.IsNotExist(statErr) {
			b.emit(StageRequirements, StatusWarning, requirements.name+"/requirements.txt not found, skipping", nil)
			continue
		}
		var digest string
		if digest, err = fileDigest(requirements.path); err != nil {
			b.emit(StageRequirements, StatusFailed, "Cannot read "+requirements.name+" requirements", err)
			return
		}
		if stamp.Matches(requirements.name, digest, installer) {
			b.emit(StageRequirements, StatusSkipped, requirements.name+" requirements already installed", nil)
			continue
		}

		b.emit(StageRequirements, StatusStarted, "Installing requirements from "+requirements.name, nil)
		command := Command{
			Name: b.PythonPath(),
			Args: []string{"-m", "pip", "install", "-r", requirements.path},
			Dir:  b.options.ProjectRoot,
		}
		if b.useUV {
			command = Command{
				Name: "uv",
				Args: []string{"pip", "install", "-r", requirements.path},
				Dir:  b.options.ProjectRoot,
				Env:  []string{"VIRTUAL_ENV=" + b.VenvPath()},
			}
		}
		if err = b.options.Runner.Run(ctx, command); err != nil {
			err = fmt.Errorf("cannot install %s requirements: %w", requirements.name, err)
			b.emit(StageRequirements, StatusFailed, "Failed to install "+requirements.name+" requirements", err)
			return
		}

		stamp.Record(requirements.name, digest, installer)
		if saveErr := stamp.Save(stampPath); saveErr != nil {
			b.emit(StageRequirements, StatusWarning, "Cannot save install stamp", saveErr)
		}
		b.emit(StageRequirements, StatusDone, requirements.name+" requirements installed", nil)
	}
	return nil
}
