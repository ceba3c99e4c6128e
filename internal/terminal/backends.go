package terminal

import "strings"

// TerminalApp drives macOS Terminal.app through osascript
type TerminalApp struct{}

func (TerminalApp) Name() string { return "terminal-app" }

func (TerminalApp) Command(session Session) Command {
	lines := []string{
		`tell application "Terminal"`,
		"do script " + appleScriptString(ShellLine(session)),
	}
	if session.Focus {
		lines = append(lines, "activate")
	}
	lines = append(lines, "end tell")
	return Command{
		Name: "osascript",
		Args: []string{"-e", strings.Join(lines, "\n")},
		Dir:  session.Directory,
	}
}

// Emulator is a Linux terminal emulator accepting a shell command line
type Emulator struct {
	Executable string
	// Flags placed before the command, given the session
	flags func(session Session) []string
}

func (emulator Emulator) Name() string { return emulator.Executable }

func (emulator Emulator) Command(session Session) Command {
	args := emulator.flags(session)
	args = append(args, "sh", "-c", interactiveShellLine(session))
	return Command{
		Name: emulator.Executable,
		Args: args,
		Dir:  session.Directory,
	}
}

var (
	GnomeTerminal = Emulator{"gnome-terminal", func(session Session) []string {
		return []string{"--working-directory=" + session.Directory, "--title=" + session.Title, "--"}
	}}
	Konsole = Emulator{"konsole", func(session Session) []string {
		return []string{"--workdir", session.Directory, "-p", "tabtitle=" + session.Title, "-e"}
	}}
	XfceTerminal = Emulator{"xfce4-terminal", func(session Session) []string {
		return []string{"--working-directory=" + session.Directory, "--title=" + session.Title, "-x"}
	}}
	Kitty = Emulator{"kitty", func(session Session) []string {
		return []string{"--directory", session.Directory, "--title", session.Title}
	}}
	Alacritty = Emulator{"alacritty", func(session Session) []string {
		return []string{"--working-directory", session.Directory, "--title", session.Title, "-e"}
	}}
	DebianAlternative = Emulator{"x-terminal-emulator", func(session Session) []string {
		return []string{"-T", session.Title, "-e"}
	}}
	XTerm = Emulator{"xterm", func(session Session) []string {
		return []string{"-T", session.Title, "-e"}
	}}
)

// WindowsConsole opens a new console window with cmd's start builtin
type WindowsConsole struct{}

func (WindowsConsole) Name() string { return "cmd" }

func (WindowsConsole) Command(session Session) Command {
	// The first quoted argument of start is the window title. An empty one
	// is the only form surviving argument escaping unchanged.
	args := []string{"/c", "start", "", "/D", session.Directory, "cmd", "/k"}
	args = append(args, session.Argv...)
	return Command{
		Name: "cmd",
		Args: args,
		Dir:  session.Directory,
	}
}

// Headless runs the session command in a detached shell, without any window
type Headless struct{}

func (Headless) Name() string { return "headless" }

func (Headless) Command(session Session) Command {
	return Command{
		Name: "sh",
		Args: []string{"-c", ShellLine(session)},
		Dir:  session.Directory,
	}
}
