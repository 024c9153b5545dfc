// Package capture grabs the display pixels the overlay session works on.
// The capture happens exactly once, at startup; everything after that
// operates on the in-memory image.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// ErrNoDisplay reports that no monitor is available to capture. It is fatal
// at startup, before any window is shown.
var ErrNoDisplay = errors.New("no display available")

// CaptureDisplay captures the desktop once. Wayland sessions go through the
// screenshot portal; X11 sessions read the root window pixels directly and
// fall back to the portal if the server refuses. When a display selector is
// provided the result is cropped to the matching monitor.
func CaptureDisplay(selector string) (*image.RGBA, error) {
	img, err := captureFrame()
	if err != nil {
		return nil, fmt.Errorf("capture display: %w", err)
	}
	if selector == "" {
		return img, nil
	}
	monitors, err := ListMonitors()
	if err != nil {
		return nil, err
	}
	monitor, err := FindMonitor(monitors, selector)
	if err != nil {
		return nil, err
	}
	return cropToRect(img, monitor.Rect)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested monitor outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}

// captureFrame and the monitor backend are implemented per platform.
