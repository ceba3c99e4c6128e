package history

import (
	"github.com/sirupsen/logrus"
	"termlaunch.dev/launcher/internal/entity"
	"termlaunch.dev/launcher/internal/history/delegate"
)

// History journals the launches. Its failures never prevent a launch.
type History struct {
	basePath string
	delegate delegate.HistoryDelegate
}

func NewHistory(basePath string, delegate delegate.HistoryDelegate) (instance *History) {
	instance = &History{
		basePath: basePath,
		delegate: delegate,
	}
	return
}

func (h *History) Initialize() (err error) {
	logrus.Debugf("Opening launch history in %s", h.basePath)
	if err = h.delegate.Open(h.basePath); err != nil {
		return
	}
	logrus.Debug("Applying launch history migrations")
	if err = h.delegate.Migrate(); err != nil {
		h.delegate.Close()
		return
	}
	return
}

func (h *History) Deinitialize() {
	if err := h.delegate.Close(); err != nil {
		logrus.Debug(err)
	}
}

func (h *History) Record(launch *entity.Launch) {
	if err := h.delegate.Create(launch); err != nil {
		logrus.Warnf("Cannot record launch: %v", err)
	}
}

func (h *History) Latest(limit int) ([]entity.Launch, error) {
	return h.delegate.Latest(limit)
}
