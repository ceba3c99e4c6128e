package terminal

import (
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Spawner starts a command without waiting for it
type Spawner interface {
	Spawn(command Command) (pid int, err error)
}

// ProcessSpawner starts commands as detached OS processes
type ProcessSpawner struct{}

func (ProcessSpawner) Spawn(command Command) (pid int, err error) {
	process := exec.Command(command.Name, command.Args...)
	process.Dir = command.Dir
	process.SysProcAttr = detachedAttributes()
	if err = process.Start(); err != nil {
		return 0, fmt.Errorf("cannot start %s: %w", command.Name, err)
	}
	pid = process.Process.Pid
	logrus.Debugf("Started %s with pid %d", command.Name, pid)
	if err = process.Process.Release(); err != nil {
		logrus.Warnf("Cannot release process %d: %v", pid, err)
	}
	return pid, nil
}
