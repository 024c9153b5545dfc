package capture

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// MonitorInfo describes an individual monitor in the display layout.
type MonitorInfo struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// ListMonitors retrieves all connected monitors using the platform backend.
func ListMonitors() ([]MonitorInfo, error) {
	return listMonitors()
}

// FindMonitor resolves a monitor selector against the provided list. The
// selector may be "primary", an index (optionally prefixed with '#'), or a
// case-insensitive substring of the output name.
func FindMonitor(monitors []MonitorInfo, selector string) (MonitorInfo, error) {
	if len(monitors) == 0 {
		return MonitorInfo{}, ErrNoDisplay
	}
	sel := strings.TrimSpace(selector)
	if sel == "" {
		return monitors[0], nil
	}
	lower := strings.ToLower(sel)
	if lower == "primary" {
		for _, mon := range monitors {
			if mon.Primary {
				return mon, nil
			}
		}
		return monitors[0], nil
	}
	if strings.HasPrefix(lower, "#") {
		lower = lower[1:]
	}
	if idx, err := strconv.Atoi(lower); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return MonitorInfo{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, mon := range monitors {
		if strings.Contains(strings.ToLower(mon.Name), lower) {
			return mon, nil
		}
	}
	return MonitorInfo{}, fmt.Errorf("monitor %q not found", selector)
}
