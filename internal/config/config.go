package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/snipshot/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
	Scan bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Notify: Notify{
			Save: false,
			Copy: false,
			Scan: false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "scan = %v\n", c.Notify.Scan)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Mask: %s\n", toHex(t.Mask))
		fmt.Fprintf(&sb, "IdleMask: %s\n", toHex(t.IdleMask))
		fmt.Fprintf(&sb, "Border: %s\n", toHex(t.Border))
		fmt.Fprintf(&sb, "MenuBackground: %s\n", toHex(t.MenuBackground))
		fmt.Fprintf(&sb, "MenuHover: %s\n", toHex(t.MenuHover))
		fmt.Fprintf(&sb, "MenuText: %s\n", toHex(t.MenuText))
		fmt.Fprintf(&sb, "MenuBorder: %s\n", toHex(t.MenuBorder))
		fmt.Fprintf(&sb, "MessageBackground: %s\n", toHex(t.MessageBackground))
		fmt.Fprintf(&sb, "MessageText: %s\n", toHex(t.MessageText))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
