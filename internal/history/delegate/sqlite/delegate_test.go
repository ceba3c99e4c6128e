package sqlite_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"termlaunch.dev/launcher/internal/entity"
	"termlaunch.dev/launcher/internal/history/delegate/sqlite"
)

func TestOpenAndClose(t *testing.T) {
	s := sqlite.SQLiteDelegate{}
	if err := s.Open(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	assert.NoError(t, s.Close())
}

func TestOpenAfterFirstCreation(t *testing.T) {
	basePath := t.TempDir()
	s := sqlite.SQLiteDelegate{}
	if err := s.Open(basePath); err != nil {
		t.Fatal(err)
	}
	s.Close()
	if err := s.Open(basePath); err != nil {
		t.Fatal(err)
	}
	s.Close()
}

func TestFailMigration(t *testing.T) {
	s := sqlite.SQLiteDelegate{}
	assert.Error(t, s.Migrate())
}

func TestFailClose(t *testing.T) {
	s := sqlite.SQLiteDelegate{}
	assert.Error(t, s.Close())
}

func TestCreateAndLatest(t *testing.T) {
	s := sqlite.SQLiteDelegate{}
	if err := s.Open(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if err := s.Migrate(); err != nil {
		t.Fatal(err)
	}

	startingTime := time.Now()
	for _, directory := range []string{"/tmp/first", "/tmp/second", "/tmp/third"} {
		if err := s.Create(entity.NewLaunch(directory, "gnome-terminal", "gnome-terminal -- sh", 42, nil)); err != nil {
			t.Fatal(err)
		}
	}
	failed := entity.NewLaunch("/tmp/fourth", "xterm", "xterm", 0, errors.New("exec: not found"))
	if err := s.Create(failed); err != nil {
		t.Fatal(err)
	}
	assert.Positive(t, failed.Id)

	launches, err := s.Latest(2)
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, launches, 2) {
		assert.Equal(t, "/tmp/fourth", launches[0].Directory)
		assert.Equal(t, "xterm", launches[0].Terminal)
		assert.True(t, launches[0].Error.Valid)
		assert.Equal(t, "exec: not found", launches[0].Error.String)
		assert.Equal(t, "/tmp/third", launches[1].Directory)
		assert.Equal(t, 42, launches[1].Pid)
		assert.False(t, launches[1].Error.Valid)
		assert.LessOrEqual(t, startingTime.Unix(), launches[1].StartedAt.Unix())
	}
}
