// Package gallery provides the static catalog of image sets and loads their
// images off the UI goroutine.
package gallery

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"ColoringBoard/internal/state"
)

// Catalog is an ordered, immutable list of image sets.
type Catalog struct {
	sets []state.ImageSet
}

// NewCatalog validates sets and keeps a private copy.
func NewCatalog(sets []state.ImageSet) (*Catalog, error) {
	if err := validate(sets); err != nil {
		return nil, err
	}
	return &Catalog{sets: append([]state.ImageSet(nil), sets...)}, nil
}

// ParseCatalog reads a JSON array of image sets.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var sets []state.ImageSet
	if err := json.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(sets)
}

// LoadCatalog reads the catalog file name from fsys.
func LoadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ParseCatalog(f)
}

// Sets returns the image sets in catalog order.
func (c *Catalog) Sets() []state.ImageSet {
	return append([]state.ImageSet(nil), c.sets...)
}

func (c *Catalog) Len() int { return len(c.sets) }

func validate(sets []state.ImageSet) error {
	if len(sets) == 0 {
		return errors.New("catalog is empty")
	}
	var errs []error
	seen := make(map[int]bool, len(sets))
	for i, s := range sets {
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("entry %d: duplicate id %d", i, s.ID))
		}
		seen[s.ID] = true
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("entry %d: missing title", i))
		}
		if s.RevealedRef == "" {
			errs = append(errs, fmt.Errorf("entry %d: missing colorImage", i))
		}
		if s.OccludingRef == "" {
			errs = append(errs, fmt.Errorf("entry %d: missing monoImage", i))
		}
	}
	return errors.Join(errs...)
}
