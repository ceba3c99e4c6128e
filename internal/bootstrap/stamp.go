package bootstrap

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Stamp remembers which requirement files have been installed in a
// virtual environment, and with which installer.
type Stamp struct {
	Installer    string            `toml:"installer"`
	Requirements map[string]string `toml:"requirements"`
	UpdatedAt    time.Time         `toml:"updated_at"`
}

// LoadStamp reads the stamp at path, an absent file being an empty stamp
func LoadStamp(path string) (stamp Stamp, err error) {
	stamp.Requirements = make(map[string]string)
	if _, err = os.Stat(path); os.IsNotExist(err) {
		return stamp, nil
	}
	if _, err = toml.DecodeFile(path, &stamp); err != nil {
		return Stamp{Requirements: make(map[string]string)}, err
	}
	if stamp.Requirements == nil {
		stamp.Requirements = make(map[string]string)
	}
	return
}

func (stamp *Stamp) Save(path string) (err error) {
	var file *os.File
	if file, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
		return
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return toml.NewEncoder(file).Encode(stamp)
}

// Matches reports whether the requirements named name, with the given
// digest, are already installed by installer.
func (stamp Stamp) Matches(name, digest, installer string) bool {
	return stamp.Installer == installer && stamp.Requirements[name] == digest
}

// Record marks the requirements as installed. Switching installer
// invalidates every previous entry.
func (stamp *Stamp) Record(name, digest, installer string) {
	if stamp.Installer != installer || stamp.Requirements == nil {
		stamp.Installer = installer
		stamp.Requirements = make(map[string]string)
	}
	stamp.Requirements[name] = digest
	stamp.UpdatedAt = time.Now()
}

func fileDigest(path string) (digest string, err error) {
	var file *os.File
	if file, err = os.Open(path); err != nil {
		return
	}
	defer file.Close()
	hash := sha1.New()
	if _, err = io.Copy(hash, file); err != nil {
		return
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
