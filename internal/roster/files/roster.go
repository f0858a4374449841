// Package files provides a roster implementation persisted as one YAML
// file per player under a directory.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/KaminaDuck/hd2-tracker/internal/roster/base"
	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/roster"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// store is a roster backed by a directory of per-player YAML files.
type store struct {
	base.BaseRoster
	basePath string
}

// NewRoster creates a roster backed by the given directory. The
// directory is created on first Save.
func NewRoster(basePath string) roster.Roster {
	return &store{
		BaseRoster: base.NewBaseRoster(),
		basePath:   basePath,
	}
}

// recordFile converts a player name to its on-disk file name. The
// record inside the file carries the authoritative name; the file name
// only has to be filesystem-safe and deterministic.
func recordFile(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String() + ".yaml"
}

// Load replaces the roster contents with the records found under the
// base path. A missing directory loads as an empty roster.
func (s *store) Load() error {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WrapIO("read", s.basePath, err)
	}

	s.Records().Clear()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(s.basePath, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.WrapIO("read", path, err)
		}
		var rec stats.Record
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return errors.WrapParse("yaml", path, err)
		}
		if err := s.SetPlayer(&rec); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

// Save writes every record to its own YAML file and sweeps files left
// behind by deleted players.
func (s *store) Save() error {
	if err := os.MkdirAll(s.basePath, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.basePath, err)
	}

	keep := make(map[string]string) // file name -> player name
	var saveErr error
	s.Records().ForEach(func(name string, rec *stats.Record) bool {
		file := recordFile(name)
		if other, clash := keep[file]; clash {
			saveErr = errors.NewResourceError("save", "player", name,
				fmt.Errorf("file name %s collides with player %s", file, other))
			return false
		}
		keep[file] = name

		data, err := yaml.MarshalWithOptions(rec, yaml.Indent(2))
		if err != nil {
			saveErr = errors.WrapResource("save", "player", name, err)
			return false
		}
		path := filepath.Join(s.basePath, file)
		if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
			saveErr = errors.WrapIO("write", path, err)
			return false
		}
		return true
	})
	if saveErr != nil {
		return saveErr
	}

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return errors.WrapIO("read", s.basePath, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		if _, ok := keep[entry.Name()]; ok {
			continue
		}
		path := filepath.Join(s.basePath, entry.Name())
		if err := os.Remove(path); err != nil {
			return errors.WrapIO("delete", path, err)
		}
	}
	return nil
}
