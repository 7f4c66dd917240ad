// Package presets keeps named chart configurations. A few system presets are
// always present; user presets are stored in the fyne preferences and can be
// imported from JSON, YAML or TOML files.
package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/roffe/litechart/pkg/chart"
)

const preferenceKey = "presets"

var (
	ErrNotFound     = errors.New("preset not found")
	ErrSystemPreset = errors.New("system preset")
)

// Map holds every preset as its JSON encoded chart.Config.
var Map = map[string]string{}

var system = map[string]chart.Config{
	"Monthly sales": {Data: []float64{10, 20, 30, 40}, Type: "bar"},
	"Market share":  {Data: []float64{1, 1, 2}, Type: "pie"},
	"Daily visits":  {Data: []float64{12, 19, 3, 5, 2, 3, 9, 14, 21, 17}, Type: "line"},
	"Response time": {Data: []float64{120, 95, 143, 88, 101, 77, 130, 99}, Type: "point", Scheme: "Universal"},
}

func init() {
	setDefaults()
}

func isSystem(name string) bool {
	for n := range system {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func Names() []string {
	var names []string
	for name := range Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Set(name string, cfg chart.Config) error {
	if isSystem(name) {
		return fmt.Errorf("cannot replace %q: %w", name, ErrSystemPreset)
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	Map[name] = string(data)
	return nil
}

func Delete(name string) error {
	if isSystem(name) {
		return fmt.Errorf("cannot delete %q: %w", name, ErrSystemPreset)
	}
	delete(Map, name)
	return nil
}

func Get(name string) (chart.Config, error) {
	data, ok := Map[name]
	if !ok {
		return chart.Config{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	var cfg chart.Config
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		return chart.Config{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return cfg, nil
}

func Load(app fyne.App) error {
	presets := app.Preferences().String(preferenceKey)
	if presets == "" {
		setDefaults()
		return nil
	}
	if err := json.Unmarshal([]byte(presets), &Map); err != nil {
		return err
	}
	setDefaults()
	return nil
}

func setDefaults() {
	for name, cfg := range system {
		data, err := json.Marshal(cfg)
		if err != nil {
			panic(err)
		}
		Map[name] = string(data)
	}
}

func Save(app fyne.App) error {
	presets, err := json.Marshal(Map)
	if err != nil {
		return err
	}
	app.Preferences().SetString(preferenceKey, string(presets))
	return nil
}
