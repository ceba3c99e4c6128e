//go:build windows
// +build windows

package terminal

import "syscall"

const createNewProcessGroup = 0x00000200

func detachedAttributes() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNewProcessGroup}
}
