package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Names for runes that are awkward as bare TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keymapFile is the on-disk layout:
//
//	[keys]
//	x = "shoot"
//	space = "jump"
//
//	[special_keys]
//	"ctrl-c" = "quit"
//	"f1" = "toggle_debug"
type keymapFile struct {
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// keyByName indexes tcell's key names, lower-cased ("ctrl-x", "enter", "f1")
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig decodes a TOML keymap into a sparse override table for MergeKeyTable
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("decode keymap: %w", err)
	}

	runes, err := decodeSection("keys", raw.Keys, parseRuneKey)
	if err != nil {
		return nil, err
	}
	special, err := decodeSection("special_keys", raw.SpecialKeys, parseSpecialKey)
	if err != nil {
		return nil, err
	}
	return &KeyTable{Runes: runes, SpecialKeys: special}, nil
}

// decodeSection maps one [section] of key = "action" pairs; a missing section stays nil
func decodeSection[K comparable](section string, raw map[string]string, parseKey func(string) (K, error)) (map[K]KeyEntry, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[K]KeyEntry, len(raw))
	for name, action := range raw {
		k, err := parseKey(name)
		if err != nil {
			return nil, fmt.Errorf("[%s] %w", section, err)
		}
		entry, ok := ActionEntry(strings.ToLower(strings.TrimSpace(action)))
		if !ok {
			return nil, fmt.Errorf("[%s] %q: unknown action %q", section, name, action)
		}
		out[k] = entry
	}
	return out, nil
}

func parseRuneKey(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if r := []rune(s); len(r) == 1 {
		return r[0], nil
	}
	return 0, fmt.Errorf("%q is neither a single character nor a known alias", s)
}

func parseSpecialKey(s string) (tcell.Key, error) {
	k, ok := keyByName[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown key name %q", s)
	}
	return k, nil
}

// MergeKeyTable copies base and applies override on top
// An override bound to "none" unbinds the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	merged := base.Clone()
	if override == nil {
		return merged
	}
	mergeMap(merged.Runes, override.Runes)
	mergeMap(merged.SpecialKeys, override.SpecialKeys)
	return merged
}

func mergeMap[K comparable](dst, override map[K]KeyEntry) {
	for k, v := range override {
		if v.IntentType == IntentNone {
			delete(dst, k)
			continue
		}
		dst[k] = v
	}
}
