package config

import "time"

// CurrentConfigVersion is the config schema version this build writes.
const CurrentConfigVersion = 1

// Config is the on-disk dashboard configuration (.progressview.yaml).
type Config struct {
	// Version of the config schema.
	Version int `yaml:"version" mapstructure:"version"`

	// PreservePreviousScreen draws on the alternate screen so the shell
	// contents come back when the dashboard is torn down.
	PreservePreviousScreen bool `yaml:"preserve_previous_screen" mapstructure:"preserve_previous_screen"`

	Progress ProgressConfig `yaml:"progress" mapstructure:"progress"`

	// Stats lists the statistics panel lines top to bottom. Each line is a
	// list of fields drawn left to right.
	Stats [][]FieldConfig `yaml:"stats" mapstructure:"stats"`

	Log  LogConfig  `yaml:"log" mapstructure:"log"`
	Demo DemoConfig `yaml:"demo" mapstructure:"demo"`
}

// ProgressConfig controls the progress bar row.
type ProgressConfig struct {
	// Header is the caption centered in the separator above the bar.
	Header string `yaml:"header" mapstructure:"header"`

	// Symbol is the single-column glyph used for every bar cell.
	Symbol string `yaml:"symbol" mapstructure:"symbol"`

	// Type is "PERCENTAGE" or "NUMBER".
	Type string `yaml:"type" mapstructure:"type"`

	// Max is the NUMBER-mode maximum. Ignored for PERCENTAGE.
	Max float64 `yaml:"max" mapstructure:"max"`

	// Colour paints filled cells, Background paints the empty track.
	// Both accept colour names, ANSI codes and hex values.
	Colour     string `yaml:"colour" mapstructure:"colour"`
	Background string `yaml:"background" mapstructure:"background"`
}

// FieldConfig is one labeled value on a statistics line.
type FieldConfig struct {
	Name   string `yaml:"name" mapstructure:"name"`
	Digits int    `yaml:"digits" mapstructure:"digits"`

	// Style is "NONE", "SPARK" or "GAUGE".
	Style string `yaml:"style" mapstructure:"style"`

	// Colour is required for GAUGE fields and optional for SPARK fields.
	Colour string `yaml:"colour,omitempty" mapstructure:"colour"`
}

// LogConfig controls the diagnostic log. The dashboard owns the terminal,
// so diagnostics go to a file or nowhere.
type LogConfig struct {
	File  string `yaml:"file" mapstructure:"file"`
	Debug bool   `yaml:"debug" mapstructure:"debug"`
}

// DemoConfig tunes the simulation run by `progressview demo`.
type DemoConfig struct {
	// LogInterval is the pause between simulated log lines.
	LogInterval time.Duration `yaml:"log_interval" mapstructure:"log_interval"`

	// TickInterval is the pause between progress and statistics updates.
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`

	// Step is added to the progress value on every tick.
	Step float64 `yaml:"step" mapstructure:"step"`

	// PendingDelay is how long the simulated maximum lookup takes when the
	// demo runs with --pending.
	PendingDelay time.Duration `yaml:"pending_delay" mapstructure:"pending_delay"`

	// Linger keeps the finished dashboard on screen before tearing down.
	Linger time.Duration `yaml:"linger" mapstructure:"linger"`
}

// Default demo values.
const (
	DefaultProgressMax  = 1234567890
	DefaultStep         = 4000000
	DefaultLogInterval  = 100 * time.Millisecond
	DefaultTickInterval = 20 * time.Millisecond
	DefaultPendingDelay = 2 * time.Second
	DefaultLinger       = 1500 * time.Millisecond
)

// DefaultStats returns the five-line panel used by the demo: three counters
// with their rates and two queue gauges.
func DefaultStats() [][]FieldConfig {
	return [][]FieldConfig{
		{
			{Name: "     read:", Digits: 12, Style: "NONE"},
			{Name: "r_per_sec:", Digits: 5, Style: "SPARK"},
		},
		{
			{Name: "    write:", Digits: 12, Style: "NONE"},
			{Name: "w_per_sec:", Digits: 5, Style: "SPARK"},
		},
		{
			{Name: "     sync:", Digits: 12, Style: "NONE"},
			{Name: "s_per_sec:", Digits: 5, Style: "SPARK"},
		},
		{
			{Name: "  r_queue:", Digits: 5, Style: "GAUGE", Colour: "magenta"},
		},
		{
			{Name: "  w_queue:", Digits: 5, Style: "GAUGE", Colour: "#ff8800"},
		},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:                CurrentConfigVersion,
		PreservePreviousScreen: true,
		Progress: ProgressConfig{
			Header:     "Records",
			Symbol:     " ",
			Type:       "NUMBER",
			Max:        DefaultProgressMax,
			Colour:     "brightgreen",
			Background: "brightblack",
		},
		Stats: DefaultStats(),
		Demo: DemoConfig{
			LogInterval:  DefaultLogInterval,
			TickInterval: DefaultTickInterval,
			Step:         DefaultStep,
			PendingDelay: DefaultPendingDelay,
			Linger:       DefaultLinger,
		},
	}
}
