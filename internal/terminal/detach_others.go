//go:build !windows
// +build !windows

package terminal

import "syscall"

// New session, so that the terminal outlives the launcher process group
func detachedAttributes() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
