package progressview

import (
	"fmt"
	"math"
	"strings"

	"github.com/michaelrommel/progress-view/internal/errors"
	"github.com/michaelrommel/progress-view/internal/ui"
)

// Style paints a piece of text. lipgloss.Style satisfies it.
type Style interface {
	Render(strs ...string) string
}

// plainStyle leaves text untouched.
type plainStyle struct{}

func (plainStyle) Render(strs ...string) string { return strings.Join(strs, " ") }

// Plain is a Style that applies no styling.
var Plain Style = plainStyle{}

// ProgressType selects how the progress trailer is printed.
type ProgressType int

const (
	// Percentage treats values as 0-100 and prints "pct/100%".
	Percentage ProgressType = iota
	// Number prints "value/max" padded to the digit count of max.
	Number
)

func (t ProgressType) String() string {
	if t == Number {
		return "NUMBER"
	}
	return "PERCENTAGE"
}

// ParseProgressType maps "NUMBER" (any case) to Number and everything else
// to Percentage.
func ParseProgressType(s string) ProgressType {
	if strings.EqualFold(strings.TrimSpace(s), "number") {
		return Number
	}
	return Percentage
}

// FieldStyle selects the graphic drawn after a statistics value.
type FieldStyle int

const (
	StyleNone FieldStyle = iota
	StyleSpark
	StyleGauge
)

func (s FieldStyle) String() string {
	switch s {
	case StyleSpark:
		return "SPARK"
	case StyleGauge:
		return "GAUGE"
	default:
		return "NONE"
	}
}

// ParseFieldStyle maps "SPARK" and "GAUGE" (any case) to their styles.
// Unknown names become StyleNone.
func ParseFieldStyle(s string) FieldStyle {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SPARK":
		return StyleSpark
	case "GAUGE":
		return StyleGauge
	default:
		return StyleNone
	}
}

// FieldConfig describes one labeled value on a statistics line.
type FieldConfig struct {
	Name   string
	Digits int
	Style  FieldStyle
	// Colour paints the sparkline or the filled gauge cells. Required for
	// gauges, optional for sparklines.
	Colour Style
}

// Config is fixed at Init.
type Config struct {
	// PreservePreviousScreen draws on the alternate screen so the shell
	// contents reappear after Reset.
	PreservePreviousScreen bool

	ProgressHeader     string
	ProgressSymbol     string
	ProgressType       ProgressType
	ProgressMax        float64
	ProgressColour     Style
	ProgressBackground Style

	// Stats holds the statistics panel, one slice of fields per line.
	Stats [][]FieldConfig
}

// Defaults used when the corresponding Config field is empty.
const (
	DefaultHeader = "Progress"
	DefaultSymbol = "="
	DefaultMax    = 100
)

// withDefaults returns a copy of c with empty fields filled in and
// out-of-range values normalized.
func (c Config) withDefaults() Config {
	if c.ProgressHeader == "" {
		c.ProgressHeader = DefaultHeader
	}
	if c.ProgressSymbol == "" {
		c.ProgressSymbol = DefaultSymbol
	}
	if c.ProgressType != Number {
		c.ProgressType = Percentage
	}
	if math.IsNaN(c.ProgressMax) || c.ProgressMax <= 0 {
		c.ProgressMax = DefaultMax
	}
	if c.ProgressColour == nil {
		c.ProgressColour = ui.BarStyle()
	}
	if c.ProgressBackground == nil {
		c.ProgressBackground = ui.TrackStyle()
	}

	stats := make([][]FieldConfig, len(c.Stats))
	for i, line := range c.Stats {
		stats[i] = make([]FieldConfig, len(line))
		for j, f := range line {
			if f.Style < StyleNone || f.Style > StyleGauge {
				f.Style = StyleNone
			}
			stats[i][j] = f
		}
	}
	c.Stats = stats
	return c
}

// Validate reports the first configuration problem that would make the
// dashboard unrenderable.
func (c Config) Validate() error {
	c = c.withDefaults()

	if w := ui.DisplayWidth(c.ProgressSymbol); w != 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Progress symbol %q is %d columns wide", c.ProgressSymbol, w),
			"Use a single-column glyph such as '=' or '█'")
	}

	for i, line := range c.Stats {
		if len(line) == 0 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Statistics line %d has no fields", i+1),
				"Add at least one field to every line or remove the line")
		}
		for j, f := range line {
			where := fmt.Sprintf("line %d field %d", i+1, j+1)
			if strings.TrimSpace(f.Name) == "" {
				return errors.New(errors.ErrConfig,
					fmt.Sprintf("Statistics %s has no name", where),
					"Every field needs a label")
			}
			if f.Digits < 1 {
				return errors.New(errors.ErrConfig,
					fmt.Sprintf("Statistics field %q has digits %d", f.Name, f.Digits),
					"Digits must be at least 1")
			}
			if f.Style == StyleGauge && f.Colour == nil {
				return errors.New(errors.ErrConfig,
					fmt.Sprintf("Gauge field %q has no colour", f.Name),
					"Gauges need a colour for their filled cells")
			}
		}
	}
	return nil
}
