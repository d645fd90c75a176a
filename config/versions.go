package config

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/ss-practice/game"
	"gopkg.in/yaml.v3"
)

//go:embed versions.yaml
var versionsYAML []byte

// ErrUnknownVersion is returned when no symbol table exists for a version
var ErrUnknownVersion = errors.New("unknown host version")

var versions map[string]game.Symbols

func init() {
	v, err := ParseVersions(versionsYAML)
	if err != nil {
		panic(err)
	}
	versions = v
}

// ParseVersions decodes a YAML document of symbol tables keyed by version
func ParseVersions(data []byte) (map[string]game.Symbols, error) {
	var out map[string]game.Symbols
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse versions: %w", err)
	}
	for name, sym := range out {
		if sym.LinkPtr == 0 || sym.PadPtr == 0 || sym.SceneflagManager == 0 {
			return nil, fmt.Errorf("version %s: missing pointer slot", name)
		}
	}
	return out, nil
}

// Lookup returns the symbol table for a host version
func Lookup(version string) (game.Symbols, error) {
	sym, ok := versions[version]
	if !ok {
		return game.Symbols{}, fmt.Errorf("%q: %w", version, ErrUnknownVersion)
	}
	return sym, nil
}

// Versions lists the known host versions in order
func Versions() []string {
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
