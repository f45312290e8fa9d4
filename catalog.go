package fmsynth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrIndexOutOfRange is returned when a preset or melody selector falls
// outside the catalog bounds.
var ErrIndexOutOfRange = errors.New("index out of range")

// Catalog holds the preset and melody tables the engine is parameterized
// with. It is built once, validated, and read-only afterwards, so it can be
// shared freely between renders without locking. Presets and melodies are
// indexed 0-based internally and displayed 1-based.
type Catalog struct {
	Presets  []Preset `yaml:"presets"`
	Melodies []Melody `yaml:"melodies"`
}

// ParseCatalog unmarshals a yaml catalog and validates it as a whole, so a
// catalog that loaded successfully can never fail note resolution later.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("could not parse catalog yaml: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if len(c.Presets) == 0 {
		return errors.New("catalog should have at least one preset")
	}
	if len(c.Melodies) == 0 {
		return errors.New("catalog should have at least one melody")
	}
	for i := range c.Presets {
		if c.Presets[i].Name == "" {
			return fmt.Errorf("preset %v should have a name", i)
		}
		if err := c.Presets[i].Params.Validate(); err != nil {
			return fmt.Errorf("preset %q: %v", c.Presets[i].Name, err)
		}
	}
	for i := range c.Melodies {
		if c.Melodies[i].Name == "" {
			return fmt.Errorf("melody %v should have a name", i)
		}
		if err := c.Melodies[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Preset returns the preset at a 0-based index, checking bounds before any
// rendering work can begin.
func (c *Catalog) Preset(index int) (Preset, error) {
	if index < 0 || index >= len(c.Presets) {
		return Preset{}, fmt.Errorf("preset %w: %v not within 0-%v", ErrIndexOutOfRange, index, len(c.Presets)-1)
	}
	return c.Presets[index], nil
}

// Melody returns the melody at a 0-based index.
func (c *Catalog) Melody(index int) (Melody, error) {
	if index < 0 || index >= len(c.Melodies) {
		return Melody{}, fmt.Errorf("melody %w: %v not within 0-%v", ErrIndexOutOfRange, index, len(c.Melodies)-1)
	}
	return c.Melodies[index], nil
}

// PresetNames lists the preset display names in catalog order.
func (c *Catalog) PresetNames() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// MelodyNames lists the melody display names in catalog order.
func (c *Catalog) MelodyNames() []string {
	names := make([]string, len(c.Melodies))
	for i, m := range c.Melodies {
		names[i] = m.Name
	}
	return names
}

// FindPreset resolves a user-facing selector, either a 1-based number or a
// case-insensitive name, to a 0-based preset index.
func (c *Catalog) FindPreset(selector string) (int, error) {
	return findIndex(selector, "preset", c.PresetNames())
}

// FindMelody resolves a user-facing selector, either a 1-based number or a
// case-insensitive name, to a 0-based melody index.
func (c *Catalog) FindMelody(selector string) (int, error) {
	return findIndex(selector, "melody", c.MelodyNames())
}

func findIndex(selector, kind string, names []string) (int, error) {
	if number, err := strconv.Atoi(selector); err == nil {
		if number < 1 || number > len(names) {
			return 0, fmt.Errorf("%v %w: %v not within 1-%v", kind, ErrIndexOutOfRange, number, len(names))
		}
		return number - 1, nil
	}
	for i, name := range names {
		if strings.EqualFold(name, selector) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no %v named %q", kind, selector)
}
