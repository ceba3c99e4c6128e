// Package terminal opens interactive terminal sessions through the host
// terminal application.
//
// Every backend turns a Session into a single Command; starting that command
// is the only side effect, the session itself is never observed.
package terminal

import (
	"strings"

	"github.com/alessio/shellescape"
)

// Session describes the terminal session to open
type Session struct {
	Directory string   // absolute folder the session starts in
	Argv      []string // program and arguments run inside the session
	Focus     bool     // bring the new window to the foreground
	Title     string
}

// Command is a process request handed to a Spawner
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command as a shell line, for logs and history
func (command Command) String() string {
	return shellescape.QuoteCommand(append([]string{command.Name}, command.Args...))
}

// Terminal builds the command opening a session on a terminal application
type Terminal interface {
	Name() string
	Command(session Session) Command
}

// ShellLine returns the POSIX shell line changing to the session folder
// and running its program.
func ShellLine(session Session) string {
	line := "cd " + shellescape.Quote(session.Directory)
	if len(session.Argv) > 0 {
		line += " && " + shellescape.QuoteCommand(session.Argv)
	}
	return line
}

// interactiveShellLine keeps the session open once the program exits, for
// emulators closing the window together with their child.
func interactiveShellLine(session Session) string {
	return ShellLine(session) + `; exec "${SHELL:-/bin/sh}"`
}

// appleScriptString quotes value as an AppleScript string literal
func appleScriptString(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + replacer.Replace(value) + `"`
}
