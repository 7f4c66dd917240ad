package presets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/roffe/litechart/pkg/chart"
	"gopkg.in/yaml.v3"
)

type decodeFunc func([]byte, any) error

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return func(b []byte, v any) error {
			dec := json.NewDecoder(bytes.NewReader(b))
			dec.DisallowUnknownFields()
			return dec.Decode(v)
		}, nil
	case ".yaml", ".yml":
		return func(b []byte, v any) error {
			dec := yaml.NewDecoder(bytes.NewReader(b))
			dec.KnownFields(true)
			return dec.Decode(v)
		}, nil
	case ".toml":
		return func(b []byte, v any) error {
			dec := toml.NewDecoder(bytes.NewReader(b))
			dec.DisallowUnknownFields()
			return dec.Decode(v)
		}, nil
	}
	return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
}

// LoadFile reads chart configurations from a .json, .yaml, .yml or .toml
// file. The file holds either one config, named after the file, or a table
// of named configs.
func LoadFile(path string) (map[string]chart.Config, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe map[string]any
	if err := decode(b, &probe); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, single := probe["data"]; single {
		var cfg chart.Config
		if err := decode(b, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return map[string]chart.Config{name: cfg}, nil
	}

	var named map[string]chart.Config
	if err := decode(b, &named); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return named, nil
}

// Import loads path and stores every config in it as a user preset. Either
// all configs are stored or none. It returns the imported names in sorted
// order.
func Import(path string) ([]string, error) {
	cfgs, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	encoded := make(map[string]string, len(cfgs))
	names := make([]string, 0, len(cfgs))
	for name, cfg := range cfgs {
		if isSystem(name) {
			return nil, fmt.Errorf("cannot import %q: %w", name, ErrSystemPreset)
		}
		data, err := json.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("cannot import %q: %w", name, err)
		}
		encoded[name] = string(data)
		names = append(names, name)
	}
	for name, data := range encoded {
		Map[name] = data
	}
	sort.Strings(names)
	return names, nil
}
