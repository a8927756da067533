// Package theme holds the editor color schemes. A Theme is an explicit
// value handed to whatever needs colors; selecting a theme returns the
// new value instead of mutating shared state.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Theme is a named color palette. Colors maps a role key (for example
// "keyword", "bg_primary", "error") to a hex color string.
type Theme struct {
	Name   string
	Colors map[string]string
}

// Color returns the color for a role key, falling back to white for
// unknown keys.
func (t Theme) Color(key string) string {
	if color, ok := t.Colors[key]; ok {
		return color
	}
	return "#ffffff"
}

// DefaultName is the theme used when no preference is stored.
const DefaultName = "xcode_dark"

// Default returns the default theme.
func Default() Theme {
	t, _ := Select(DefaultName)
	return t
}

// Names returns the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named theme, or an error for an unknown name.
func Select(name string) (Theme, error) {
	colors, ok := palettes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return Theme{Name: name, Colors: colors}, nil
}

// Cycle returns the theme following current in name order, wrapping
// around at the end.
func Cycle(current Theme) Theme {
	names := Names()
	for i, name := range names {
		if name == current.Name {
			next, _ := Select(names[(i+1)%len(names)])
			return next
		}
	}
	return Default()
}

type preferences struct {
	Theme string `json:"theme"`
}

// SavePreferences writes the chosen theme name to a JSON file, creating
// parent directories as needed.
func SavePreferences(path string, t Theme) error {
	data, err := json.Marshal(preferences{Theme: t.Name})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPreferences reads the stored theme choice, falling back to the
// default when the file is missing or names an unknown theme.
func LoadPreferences(path string) Theme {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var prefs preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Default()
	}
	t, err := Select(prefs.Theme)
	if err != nil {
		return Default()
	}
	return t
}
