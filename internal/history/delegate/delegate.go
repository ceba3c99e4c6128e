package delegate

import "termlaunch.dev/launcher/internal/entity"

type HistoryDelegate interface {
	Open(basePath string) error
	Close() error
	Migrate() error
	Create(launch *entity.Launch) error
	Latest(limit int) ([]entity.Launch, error)
}
