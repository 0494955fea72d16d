package persist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/ReagentX/Logria-sub000/internal/errs"
	"github.com/ReagentX/Logria-sub000/internal/parsing"
)

// ParserStore lists, loads, and saves named parser definitions under
// dir (normally Paths.Parsers).
type ParserStore struct {
	dir string
}

func NewParserStore(dir string) *ParserStore {
	return &ParserStore{dir: dir}
}

// List returns parser file names sorted ascending.
func (s *ParserStore) List() ([]string, error) {
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

func (s *ParserStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads and validates a parser definition file. analytics_map,
// analytics, and num_to_print are runtime-only fields per spec.md §6
// and are never read from or written to disk.
func (s *ParserStore) Load(name string) (*parsing.Definition, error) {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.CannotRead, err)
	}
	if !gjson.ValidBytes(data) || !gjson.GetBytes(data, "pattern").Exists() {
		return nil, errs.Newf(errs.CannotRead, "%s: not a valid parser file", path)
	}

	var def parsing.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, errs.New(errs.CannotRead, err)
	}
	if def.PatternType != parsing.Regex && def.PatternType != parsing.Split {
		return nil, errs.Newf(errs.WrongParserType, "%s: unknown pattern_type %q", path, def.PatternType)
	}
	return &def, nil
}

// Save writes name's parser definition file, creating the directory on
// demand.
func (s *ParserStore) Save(name string, def *parsing.Definition) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	return nil
}
