// Package data provides embedded game data and utilities for loading it.
package data

import "embed"

// dataFS embeds the entity templates, population tables and locale catalogs at build time.
//
//go:embed *.json locales/*.yaml
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
func FS() embed.FS {
	return dataFS
}
