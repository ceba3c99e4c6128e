package mock

import (
	"termlaunch.dev/launcher/internal/entity"
)

// MockDelegate keeps the history in memory, failing on request
type MockDelegate struct {
	FailOpen      bool
	FailMigration bool
	FailCreate    bool
	Error         error
	Opened        bool
	Closed        bool
	Launches      []entity.Launch
}

func (m *MockDelegate) Open(basePath string) error {
	if m.FailOpen {
		return m.Error
	}
	m.Opened = true
	return nil
}

func (m *MockDelegate) Migrate() error {
	if m.FailMigration {
		return m.Error
	}
	return nil
}

func (m *MockDelegate) Close() error {
	m.Closed = true
	return nil
}

func (m *MockDelegate) Create(launch *entity.Launch) error {
	if m.FailCreate {
		return m.Error
	}
	launch.Id = uint(len(m.Launches) + 1)
	m.Launches = append(m.Launches, *launch)
	return nil
}

func (m *MockDelegate) Latest(limit int) (launches []entity.Launch, err error) {
	for index := len(m.Launches) - 1; index >= 0 && len(launches) < limit; index-- {
		launches = append(launches, m.Launches[index])
	}
	return
}
