package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jessedye/matrix-rain/internal/config"
	"github.com/jessedye/matrix-rain/internal/rain"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in presets and color schemes",
	Long:  `Shows the built-in presets with their flag equivalents, and the color schemes bound to keys 1-6.`,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	fmt.Println("Built-in presets:")
	fmt.Println()

	for _, name := range config.PresetNames() {
		cfg, _ := config.Preset(name)
		fmt.Printf("  %-8s  -s %d -d %g -n %d -l %d -c %s\n",
			name, cfg.SpeedMs, cfg.DensityPercent, cfg.SpawnsPerFrame, cfg.MaxLength, cfg.Color)
	}

	fmt.Println()
	fmt.Println("Color schemes (keys 1-6):")
	for i, scheme := range rain.AllSchemes() {
		fmt.Printf("  %d  %s\n", i+1, scheme)
	}

	fmt.Println()
	fmt.Println("Run 'rain --preset <name>' to use a preset.")
}
