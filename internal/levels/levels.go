// Package levels holds the ordered world-level catalog that gates progression.
// A Catalog is built once at startup, validated, and shared read-only.
package levels

import (
	"fmt"
	"math"
)

// Level is a single catalog row. ID doubles as the ordinal of the level.
type Level struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	DisplayName string  `yaml:"display_name"`
	Threshold   float64 `yaml:"threshold"` // Biomass required to enter this level
	Format      string  `yaml:"format"`    // Display-format tag for the host
	Description string  `yaml:"description"`
}

// Title returns the display name, falling back to Name.
func (l Level) Title() string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	return l.Name
}

// ValidationError describes a catalog definition defect.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Catalog is an immutable, id-ordered table of levels.
type Catalog struct {
	levels []Level
	byName map[string]int
}

// NewCatalog validates the rows and builds a catalog from a copy of them.
func NewCatalog(rows []Level) (*Catalog, error) {
	if err := Validate(rows); err != nil {
		return nil, err
	}

	c := &Catalog{
		levels: make([]Level, len(rows)),
		byName: make(map[string]int, len(rows)),
	}
	copy(c.levels, rows)
	for i, lvl := range c.levels {
		c.byName[lvl.Name] = i
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables; it panics on invalid rows.
func MustCatalog(rows []Level) *Catalog {
	c, err := NewCatalog(rows)
	if err != nil {
		panic(fmt.Sprintf("levels: invalid catalog: %v", err))
	}
	return c
}

// Validate checks the catalog invariants:
//   - at least one row
//   - ids are 0..n-1 in ascending order
//   - names are non-empty and unique
//   - thresholds are finite, non-negative, non-decreasing into the second
//     level and strictly increasing after it
func Validate(rows []Level) error {
	if len(rows) == 0 {
		return ValidationError{Code: "EMPTY_CATALOG", Message: "catalog has no levels"}
	}

	seen := make(map[string]bool, len(rows))
	for i, lvl := range rows {
		if lvl.ID != i {
			return ValidationError{
				Code:    "BAD_ID",
				Message: fmt.Sprintf("level at position %d has id %d", i, lvl.ID),
			}
		}
		if lvl.Name == "" {
			return ValidationError{
				Code:    "EMPTY_NAME",
				Message: fmt.Sprintf("level %d has no name", lvl.ID),
			}
		}
		if seen[lvl.Name] {
			return ValidationError{
				Code:    "DUPLICATE_NAME",
				Message: fmt.Sprintf("level name %q is used more than once", lvl.Name),
			}
		}
		seen[lvl.Name] = true

		if math.IsNaN(lvl.Threshold) || math.IsInf(lvl.Threshold, 0) || lvl.Threshold < 0 {
			return ValidationError{
				Code:    "BAD_THRESHOLD",
				Message: fmt.Sprintf("level %q has threshold %v", lvl.Name, lvl.Threshold),
			}
		}
		if i == 0 {
			continue
		}

		prev := rows[i-1].Threshold
		if i == 1 && lvl.Threshold < prev {
			return ValidationError{
				Code:    "BAD_THRESHOLD",
				Message: fmt.Sprintf("level %q threshold %v is below %v", lvl.Name, lvl.Threshold, prev),
			}
		}
		if i > 1 && lvl.Threshold <= prev {
			return ValidationError{
				Code:    "BAD_THRESHOLD",
				Message: fmt.Sprintf("level %q threshold %v must exceed %v", lvl.Name, lvl.Threshold, prev),
			}
		}
	}
	return nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// ByID returns the level with the given id.
func (c *Catalog) ByID(id int) (Level, bool) {
	if id < 0 || id >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[id], true
}

// ByName returns the level with the given unique name.
func (c *Catalog) ByName(name string) (Level, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Level{}, false
	}
	return c.levels[i], true
}

// OrdinalOf returns the ordinal index of the named level.
func (c *Catalog) OrdinalOf(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// Next returns the level after current, or false when current is the last one.
func (c *Catalog) Next(current Level) (Level, bool) {
	return c.ByID(current.ID + 1)
}

// First returns the initial level.
func (c *Catalog) First() Level {
	return c.levels[0]
}

// Last returns the terminal level.
func (c *Catalog) Last() Level {
	return c.levels[len(c.levels)-1]
}

// IsLast reports whether id is the terminal level.
func (c *Catalog) IsLast(id int) bool {
	return id == len(c.levels)-1
}

// All returns a copy of the catalog rows in id order.
func (c *Catalog) All() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Names returns the level names in id order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.levels))
	for i, lvl := range c.levels {
		names[i] = lvl.Name
	}
	return names
}
