package fmsynth

import (
	_ "embed"
)

//go:embed catalogs/default.yml
var defaultCatalogYaml []byte

// defaultCatalog is parsed once at process start and never mutated.
var defaultCatalog = func() *Catalog {
	c, err := ParseCatalog(defaultCatalogYaml)
	if err != nil {
		panic("built-in catalog is broken: " + err.Error())
	}
	return c
}()

// DefaultCatalog returns the built-in catalog of 12 presets and 10 melodies.
// The returned catalog is shared and read-only.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
