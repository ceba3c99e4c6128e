package entity

import (
	"database/sql"
	"time"
)

// Launch is a terminal session request issued by the launcher
type Launch struct {
	Id        uint      `gorm:"primaryKey"`
	StartedAt time.Time `gorm:"autoCreateTime;not null;index"`
	Directory string    `gorm:"not null"`
	Terminal  string    `gorm:"not null"`
	Command   string    `gorm:"not null"`
	Pid       int
	Error     sql.NullString
}

func NewLaunch(directory, terminal, command string, pid int, launchErr error) *Launch {
	launchError := sql.NullString{String: "", Valid: false}
	if launchErr != nil {
		launchError.String = launchErr.Error()
		launchError.Valid = true
	}
	return &Launch{
		StartedAt: time.Now(),
		Directory: directory,
		Terminal:  terminal,
		Command:   command,
		Pid:       pid,
		Error:     launchError,
	}
}
