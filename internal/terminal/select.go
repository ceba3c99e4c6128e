package terminal

import (
	"errors"
	"fmt"
)

var (
	ErrNoTerminal      = errors.New("no supported terminal emulator found")
	ErrUnknownTerminal = errors.New("unknown terminal")
)

// Auto asks Select to detect the host terminal
const Auto = "auto"

// Linux candidates, in detection order
var emulators = []Emulator{
	DebianAlternative,
	GnomeTerminal,
	Konsole,
	XfceTerminal,
	Kitty,
	Alacritty,
	XTerm,
}

// LookPath reports where an executable is, exec.LookPath in production
type LookPath func(file string) (string, error)

// Known returns every backend by name
func Known() map[string]Terminal {
	known := map[string]Terminal{
		TerminalApp{}.Name():    TerminalApp{},
		WindowsConsole{}.Name(): WindowsConsole{},
		Headless{}.Name():       Headless{},
	}
	for _, emulator := range emulators {
		known[emulator.Name()] = emulator
	}
	return known
}

// Select returns the named backend, or the host default when name is empty
// or Auto.
func Select(name string, goos string, lookPath LookPath) (Terminal, error) {
	if name != "" && name != Auto {
		if terminal, ok := Known()[name]; ok {
			return terminal, nil
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownTerminal, name)
	}

	switch goos {
	case "darwin":
		return TerminalApp{}, nil
	case "windows":
		return WindowsConsole{}, nil
	}
	for _, emulator := range emulators {
		if _, err := lookPath(emulator.Executable); err == nil {
			return emulator, nil
		}
	}
	return nil, ErrNoTerminal
}
