package config

import (
	_ "embed"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/rain.yaml
var defaultRainYAML []byte

//go:embed defaults/gentle.yaml
var presetGentleYAML []byte

//go:embed defaults/sparse.yaml
var presetSparseYAML []byte

//go:embed defaults/chaos.yaml
var presetChaosYAML []byte

var presetYAML = map[string][]byte{
	"gentle": presetGentleYAML,
	"sparse": presetSparseYAML,
	"chaos":  presetChaosYAML,
}

// Default returns the built-in default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultRainYAML, &cfg); err != nil {
		// Fallback to hardcoded values if the embed is unreadable.
		return Config{
			SpeedMs:        50,
			DensityPercent: 40,
			SpawnsPerFrame: 4,
			MinLength:      10,
			MaxLength:      30,
			MinSpeed:       2,
			MaxSpeed:       4,
			Color:          "green",
		}
	}
	return cfg
}

// Preset returns a built-in named preset layered over the defaults.
// ok is false for unknown names.
func Preset(name string) (Config, bool) {
	data, found := presetYAML[name]
	if !found {
		return Default(), false
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), false
	}
	return cfg, true
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presetYAML))
	for name := range presetYAML {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
