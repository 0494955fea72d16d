package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/ReagentX/Logria-sub000/internal/errs"
	"github.com/ReagentX/Logria-sub000/internal/source"
)

// Genre is a persisted session's source-kind label.
type Genre string

const (
	GenreCommand Genre = "Command"
	GenreFile    Genre = "File"
	GenreMixed   Genre = "Mixed"
)

// Session is the persisted record for a named set of source commands.
//
// NOTE: preserved verbatim per documented Open Question — one assembly
// path assigns GenreCommand to stream_types where GenreFile was more
// likely intended. See GenreFor below, not this struct.
type Session struct {
	Commands []string `json:"commands"`
	Genre    Genre    `json:"genre"`
}

// GenreFor derives the genre to persist for a set of active source
// kinds. Mixed kinds get GenreMixed. A single, uniform kind is meant to
// yield GenreCommand for command sources and GenreFile for file
// sources — but preserved here verbatim is the flagged assignment bug:
// the uniform branch always assigns GenreCommand, even when every
// source is a file source. Flag, do not fix, per the documented Open
// Question decision.
func GenreFor(kinds []source.Kind) Genre {
	if len(kinds) == 0 {
		return GenreCommand
	}
	first := kinds[0]
	for _, k := range kinds[1:] {
		if k != first {
			return GenreMixed
		}
	}
	return GenreCommand
}

// SessionStore lists, loads, saves, and deletes named sessions under
// dir (normally Paths.Sessions).
type SessionStore struct {
	dir string
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{dir: dir}
}

// List returns session names sorted ascending, matching the numbered
// startup-viewport listing (spec.md §4.3: "N: name").
func (s *SessionStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.New(errs.CannotRead, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *SessionStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads and validates a session file, sanity-checking its shape
// with gjson before the strict json.Unmarshal.
func (s *SessionStore) Load(name string) (*Session, error) {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.CannotRead, err)
	}
	if !gjson.ValidBytes(data) || !gjson.GetBytes(data, "commands").Exists() {
		return nil, errs.Newf(errs.CannotRead, "%s: not a valid session file", path)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errs.New(errs.CannotRead, err)
	}
	return &sess, nil
}

// Save writes name's session file, creating the directory on demand.
func (s *SessionStore) Save(name string, sess *Session) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	return nil
}

// Delete removes a named session file.
func (s *SessionStore) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	return nil
}

// DeleteMany removes several named sessions, accumulating the first
// error encountered while attempting every deletion.
func (s *SessionStore) DeleteMany(names []string) error {
	var firstErr error
	for _, name := range names {
		if err := s.Delete(name); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", name, err)
		}
	}
	return firstErr
}
