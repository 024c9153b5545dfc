package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/example/snipshot/internal/action"
	"github.com/example/snipshot/internal/appstate"
	"github.com/example/snipshot/internal/capture"
	"github.com/example/snipshot/internal/config"
	"github.com/example/snipshot/internal/notify"
	"github.com/example/snipshot/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

func main() {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	fs := flag.NewFlagSet("snipshot", flag.ExitOnError)
	display := fs.String("display", "", "target display selector (primary, #N, or a name substring)")
	output := fs.String("output", "", "write the selection to this exact file path instead of a timestamped one")
	saveDir := fs.String("save-dir", cfg.SaveDir, "directory timestamped save files are written to")
	saveAlerts := fs.Bool("notify-save", cfg.Notify.Save, "show a desktop notification after saving the selection")
	copyAlerts := fs.Bool("notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	scanAlerts := fs.Bool("notify-scan", cfg.Notify.Scan, "show a desktop notification after decoding a QR code")
	showVersion := fs.Bool("version", false, "print version information and exit")

	// Precedence: CLI > Env > Config > Default. The flag default stays empty
	// so an unset flag falls through to the environment and config.
	themeName := fs.String("theme", "", "color theme to use")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if *showVersion {
		fmt.Printf("snipshot %s", version)
		if commit != "" {
			fmt.Printf(" (%s)", commit)
		}
		if date != "" {
			fmt.Printf(" built %s", date)
		}
		fmt.Println()
		return
	}

	name := *themeName
	if name == "" {
		name = os.Getenv("SNIPSHOT_THEME")
	}
	if name == "" {
		name = cfg.Theme
	}
	th := resolveTheme(cfg, name)

	notifier := notify.New(prefs)
	notifier.Enable(notify.EventSave, *saveAlerts)
	notifier.Enable(notify.EventCopy, *copyAlerts)
	notifier.Enable(notify.EventScan, *scanAlerts)

	img, err := capture.CaptureDisplay(*display)
	if err != nil {
		if errors.Is(err, capture.ErrNoDisplay) {
			log.Fatalf("capture: no display found for %q", *display)
		}
		log.Fatalf("capture: %v", err)
	}

	dispatcher := action.NewDispatcher(*saveDir, *output, notifier)
	state := appstate.New(
		appstate.WithImage(img),
		appstate.WithTheme(th),
		appstate.WithDispatcher(dispatcher),
	)
	state.Run()
}

// resolveTheme looks the name up in the config's inline themes first, then
// falls back to the file loader, then to the built-in default.
func resolveTheme(cfg *config.Config, name string) *theme.Theme {
	if t, ok := cfg.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme %q: %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}
