package bootstrap

import "github.com/sirupsen/logrus"

type Stage string

const (
	StageInstaller    Stage = "installer"
	StageVenv         Stage = "venv"
	StageRequirements Stage = "requirements"
	StageServer       Stage = "server"
	StageBrowser      Stage = "browser"
)

type Status int

const (
	StatusStarted Status = iota
	StatusDone
	StatusSkipped
	StatusWarning
	StatusFailed
)

func (status Status) String() string {
	switch status {
	case StatusStarted:
		return "started"
	case StatusDone:
		return "done"
	case StatusSkipped:
		return "skipped"
	case StatusWarning:
		return "warning"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Event reports the progress of a bootstrap stage
type Event struct {
	Stage   Stage
	Status  Status
	Message string
	Err     error
}

// LogEvent writes event on the standard logrus logger
func LogEvent(event Event) {
	entry := logrus.WithFields(logrus.Fields{
		"stage":  event.Stage,
		"status": event.Status,
	})
	if event.Err != nil {
		entry = entry.WithError(event.Err)
	}
	switch event.Status {
	case StatusWarning:
		entry.Warn(event.Message)
	case StatusFailed:
		entry.Error(event.Message)
	default:
		entry.Info(event.Message)
	}
}
