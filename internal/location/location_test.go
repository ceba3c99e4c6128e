package location_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"termlaunch.dev/launcher/internal/location"
)

func canonical(t *testing.T, path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

func chdir(t *testing.T, directory string) {
	previous, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err = os.Chdir(directory); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(previous) })
}

func TestDirectoryIgnoresWorkingDirectory(t *testing.T) {
	application := t.TempDir()
	caller := t.TempDir()
	script := filepath.Join(application, "termlaunch")
	if err := os.WriteFile(script, []byte{}, 0755); err != nil {
		t.Fatal(err)
	}

	chdir(t, caller)

	directory, err := location.Directory(script)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, canonical(t, application), directory)
}

func TestDirectoryRelativePath(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "app"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "app", "termlaunch"), []byte{}, 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, root)

	directory, err := location.Directory(filepath.Join("app", "termlaunch"))
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, filepath.IsAbs(directory))
	assert.Equal(t, canonical(t, filepath.Join(root, "app")), directory)
}

func TestDirectoryFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	application := t.TempDir()
	links := t.TempDir()
	script := filepath.Join(application, "termlaunch")
	if err := os.WriteFile(script, []byte{}, 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(links, "termlaunch")
	if err := os.Symlink(script, link); err != nil {
		t.Fatal(err)
	}

	directory, err := location.Directory(link)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, canonical(t, application), directory)
}

func TestDirectoryMissingPath(t *testing.T) {
	_, err := location.Directory(filepath.Join(t.TempDir(), "missing", "termlaunch"))
	assert.Error(t, err)
}

func TestExecutable(t *testing.T) {
	directory, err := location.Executable()
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, filepath.IsAbs(directory))
	info, err := os.Stat(directory)
	if assert.NoError(t, err) {
		assert.True(t, info.IsDir())
	}
}

func TestFixed(t *testing.T) {
	application := t.TempDir()
	directory, err := location.Fixed(application)()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, canonical(t, application), directory)

	file := filepath.Join(application, "file")
	if err := os.WriteFile(file, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	_, err = location.Fixed(file)()
	assert.True(t, errors.Is(err, location.ErrNotDirectory))
}

func TestFixedMatchesDirectory(t *testing.T) {
	application := t.TempDir()
	script := filepath.Join(application, "termlaunch")
	if err := os.WriteFile(script, []byte{}, 0755); err != nil {
		t.Fatal(err)
	}

	fromScript, err := location.Directory(script)
	assert.NoError(t, err)
	fromFolder, err := location.Fixed(application)()
	assert.NoError(t, err)
	assert.Equal(t, fromScript, fromFolder)

	_, err = location.Fixed(filepath.Join(application, "missing"))()
	assert.Error(t, err)
}
