// Package persist implements on-disk session and parser-definition
// storage plus the append-only history tape (spec.md §6), grounded on
// the teacher's directory-resolution precedence and JSON-record style.
package persist

import (
	"os"
	"path/filepath"
)

const (
	homeEnvVar = "LOGRIA_USER_HOME"
	rootEnvVar = "LOGRIA_ROOT"
	defaultApp = "Logria"
)

// Paths resolves the directories spec.md §6 derives from the user's home.
type Paths struct {
	Root     string
	Parsers  string
	Sessions string
	History  string
	TapeFile string
}

// Resolve computes Paths from LOGRIA_USER_HOME/LOGRIA_ROOT, falling back
// to the OS user home directory and the "Logria" subdirectory name.
func Resolve() (Paths, error) {
	home := os.Getenv(homeEnvVar)
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		home = h
	}

	app := os.Getenv(rootEnvVar)
	if app == "" {
		app = defaultApp
	}

	root := filepath.Join(home, app)
	history := filepath.Join(root, "history")
	return Paths{
		Root:     root,
		Parsers:  filepath.Join(root, "parsers"),
		Sessions: filepath.Join(root, "sessions"),
		History:  history,
		TapeFile: filepath.Join(history, "tape"),
	}, nil
}

// EnsureDirs creates every directory these Paths name, for the
// create-on-demand initialization spec.md §4.8 requires.
func (p Paths) EnsureDirs() error {
	for _, dir := range []string{p.Root, p.Parsers, p.Sessions, p.History} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
