// rain is a Matrix-style falling-glyph screensaver for the terminal.
//
// Usage:
//
//	rain                 - Start the animation
//	rain presets         - List built-in presets and color schemes
//
// Flags:
//
//	-s, --speed <ms>     - Frame delay (default: 50, lower = faster)
//	-d, --density <0-100> - Spawn density percentage (default: 40)
//	-n, --spawns <N>     - Max spawns per frame (default: 4)
//	-l, --length <N>     - Max drop length (default: 30)
//	-c, --color <scheme> - green, blue, red, purple, cyan, rainbow
//	--config <path>      - Settings YAML (default: ~/.rain/rain.yaml)
//	--preset <name>      - Built-in preset: gentle, sparse, chaos
//	--seed <value>       - RNG seed for a reproducible animation
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jessedye/matrix-rain/internal/config"
	"github.com/jessedye/matrix-rain/internal/core"
	"github.com/jessedye/matrix-rain/internal/platform/tui"
)

var (
	// Numeric flags are strings on purpose: unparseable values fall
	// back to the configured defaults instead of failing the command.
	flagSpeed   string
	flagDensity string
	flagSpawns  string
	flagLength  string
	flagColor   string
	flagConfig  string
	flagPreset  string
	flagSeed    int64
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rain"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rain",
	Short: "Matrix-style rain for your terminal",
	Long: `Falling columns of glyphs with a fading color gradient, tunable
live from the keyboard.

Runtime controls:
  Up/Down       Adjust speed (faster/slower)
  Left/Right    Adjust density (fewer/more drops)
  +/-           Adjust drop length
  1-6           Color schemes (green/blue/red/purple/cyan/rainbow)
  q/Esc/Enter/Space/Ctrl+C  Quit

Presets:
  Gentle:  rain -s 40 -d 20 -n 3 -l 20
  Sparse:  rain -s 50 -d 10 -n 2 -l 15
  Chaos:   rain -s 5 -d 90 -n 15 -l 45 -c rainbow

Examples:
  rain
  rain -c rainbow
  rain --preset chaos
  rain -s 20 -d 60`,
	SilenceUsage: true,
	RunE:         runRain,
}

func init() {
	rootCmd.Flags().StringVarP(&flagSpeed, "speed", "s", "", "frame delay in ms (lower = faster)")
	rootCmd.Flags().StringVarP(&flagDensity, "density", "d", "", "spawn density percentage (0-100)")
	rootCmd.Flags().StringVarP(&flagSpawns, "spawns", "n", "", "max spawns per frame")
	rootCmd.Flags().StringVarP(&flagLength, "length", "l", "", "max drop length")
	rootCmd.Flags().StringVarP(&flagColor, "color", "c", "", "color scheme: green, blue, red, purple, cyan, rainbow")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a settings YAML file")
	rootCmd.Flags().StringVar(&flagPreset, "preset", "", "built-in preset: gentle, sparse, chaos")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(presetsCmd)
}

func runRain(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	applyFlagOverrides(&cfg)
	settings := cfg.ToSettings()

	// Probe the terminal size before raw mode; the animation keeps
	// tracking resizes once it runs.
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	printBanner()
	time.Sleep(1500 * time.Millisecond)

	rc := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}
	if err := tui.Run(settings, rc); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}
	return nil
}

// loadConfig resolves the settings sources: config file (or embedded
// defaults), optionally replaced by a named preset.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("falling back to default settings", "error", err)
	}

	if flagPreset != "" {
		preset, ok := config.Preset(flagPreset)
		if !ok {
			logger.Warn("unknown preset, ignoring", "preset", flagPreset, "known", strings.Join(config.PresetNames(), ", "))
		} else {
			cfg = preset
		}
	}

	return cfg
}

// applyFlagOverrides layers CLI flags over the loaded config. Bad
// numeric values are warned about and skipped; an unrecognized color
// name is silently ignored downstream.
func applyFlagOverrides(cfg *config.Config) {
	if v, ok := parseIntFlag("speed", flagSpeed); ok {
		cfg.SpeedMs = v
	}
	if v, ok := parseFloatFlag("density", flagDensity); ok {
		cfg.DensityPercent = v
	}
	if v, ok := parseIntFlag("spawns", flagSpawns); ok {
		cfg.SpawnsPerFrame = v
	}
	if v, ok := parseIntFlag("length", flagLength); ok {
		cfg.MaxLength = v
	}
	if flagColor != "" {
		cfg.Color = flagColor
	}
}

func parseIntFlag(name, raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		logger.Warn("ignoring unparseable flag value", "flag", name, "value", raw)
		return 0, false
	}
	return v, true
}

func parseFloatFlag(name, raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		logger.Warn("ignoring unparseable flag value", "flag", name, "value", raw)
		return 0, false
	}
	return v, true
}

// printBanner shows the controls in the normal screen buffer, so they
// reappear after the alternate screen is torn down.
func printBanner() {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10")).
		Render("Matrix Rain")
	fmt.Println(title)

	var parts []string
	for _, b := range tui.DefaultKeyMap().ShortHelp() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	controls := lipgloss.NewStyle().Faint(true).
		Render("Controls: " + strings.Join(parts, " | "))
	fmt.Println(controls)
}
