package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locale.*.toml
var localeFS embed.FS

// Match describes how a requested language code was resolved
type Match string

const (
	MatchExact    Match = "exact"
	MatchBase     Match = "base"
	MatchFallback Match = "fallback"
)

// Table maps language codes to dictionaries. It is built once at startup
// from the embedded locale files and never mutated afterwards, so lookups
// need no synchronization.
type Table struct {
	dicts    map[string]*Dictionary
	fallback string
}

// NewTable loads every embedded locale.<code>.toml file and designates
// defaultCode as the fallback. When defaultCode itself is not among the
// loaded locales, the first code in sorted order takes its place so the
// table always has a usable fallback.
func NewTable(defaultCode string) (*Table, error) {
	entries, err := fs.Glob(localeFS, "locale.*.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to list locale files: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no locale files embedded")
	}

	dicts := make(map[string]*Dictionary, len(entries))
	for _, name := range entries {
		code := strings.TrimSuffix(strings.TrimPrefix(name, "locale."), ".toml")

		raw, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var dict Dictionary
		if err := toml.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		dict.Normalize()
		dicts[code] = &dict
	}

	fallback := normalizeCode(defaultCode)
	if _, ok := dicts[fallback]; !ok {
		codes := make([]string, 0, len(dicts))
		for code := range dicts {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		fallback = codes[0]
	}

	return &Table{dicts: dicts, fallback: fallback}, nil
}

// Resolve returns the dictionary for code, falling back to the default
// dictionary for unknown or empty codes. It never returns nil and never
// errors; resolution is a pure lookup over immutable state.
func (t *Table) Resolve(code string) *Dictionary {
	_, dict, _ := t.Lookup(code)
	return dict
}

// Lookup resolves code and reports which registered code served it and how
// the match was made: an exact code match, a base-language match (e.g.
// "en-US" served by "en"), or the fallback dictionary.
func (t *Table) Lookup(code string) (string, *Dictionary, Match) {
	code = normalizeCode(code)
	if dict, ok := t.dicts[code]; ok {
		return code, dict, MatchExact
	}

	// "zh-Hant-TW" or "en_US" style codes are served by their base language
	if tag, err := language.Parse(code); err == nil {
		base, confidence := tag.Base()
		if confidence != language.No {
			if dict, ok := t.dicts[base.String()]; ok {
				return base.String(), dict, MatchBase
			}
		}
	}

	return t.fallback, t.dicts[t.fallback], MatchFallback
}

// IsReady reports whether the table holds at least one dictionary. Used by
// the healthcheck endpoint.
func (t *Table) IsReady() bool {
	return t != nil && len(t.dicts) > 0
}

// Default returns the fallback language code
func (t *Table) Default() string {
	return t.fallback
}

// Codes returns the supported language codes in sorted order
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.dicts))
	for code := range t.dicts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
