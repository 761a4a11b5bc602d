// Package clipboard is the client's small local store: the day copy buffer
// (so `copy` in one invocation is visible to `paste` in the next) and a
// cache of the last week successfully loaded from the appliance, used for
// offline views. The appliance remains the source of truth for the program
// itself; nothing here is ever pushed back without an explicit save.
package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/nikolayco/zilctl/pkg/schedule"
)

const (
	dayKey  = "copied-day"
	weekKey = "cached-week"
)

var ErrEmpty = errors.New("clipboard: nothing stored")

type Store struct {
	d        *diskv.Diskv
	basePath string
}

// Open prepares the store rooted at basePath ("~" expands to the home
// directory).
func Open(basePath string) (*Store, error) {
	expanded, err := homedir.Expand(basePath)
	if err != nil {
		return nil, fmt.Errorf("clipboard: expand path: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     expanded,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: expanded,
	}, nil
}

// BasePath returns the resolved on-disk location.
func (s *Store) BasePath() string { return s.basePath }

// PutDay stores a copied day's activities.
func (s *Store) PutDay(acts []schedule.Activity) error {
	return s.write(dayKey, acts)
}

// Day returns the copied activities, or ErrEmpty when nothing was copied.
func (s *Store) Day() ([]schedule.Activity, error) {
	var acts []schedule.Activity
	if err := s.read(dayKey, &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

// PutWeek caches the last successfully loaded week.
func (s *Store) PutWeek(w schedule.Week) error {
	return s.write(weekKey, w)
}

// Week returns the cached week, or ErrEmpty when no load has succeeded yet.
func (s *Store) Week() (schedule.Week, error) {
	var w schedule.Week
	if err := s.read(weekKey, &w); err != nil {
		return nil, err
	}
	return schedule.Normalize(w), nil
}

func (s *Store) write(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("clipboard: encode %s: %w", key, err)
	}
	if err := s.d.Write(key, b); err != nil {
		return fmt.Errorf("clipboard: write %s: %w", key, err)
	}
	return nil
}

func (s *Store) read(key string, v any) error {
	if !s.d.Has(key) {
		return ErrEmpty
	}
	b, err := s.d.Read(key)
	if err != nil {
		return fmt.Errorf("clipboard: read %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("clipboard: decode %s: %w", key, err)
	}
	return nil
}
