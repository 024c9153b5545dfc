package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func testMonitors() []MonitorInfo {
	return []MonitorInfo{
		{Index: 0, Name: "eDP-1", Rect: image.Rect(0, 0, 1920, 1080), Primary: false},
		{Index: 1, Name: "DP-2", Rect: image.Rect(1920, 0, 4480, 1440), Primary: true},
	}
}

func TestFindMonitorEmptySelectorPicksFirst(t *testing.T) {
	mon, err := FindMonitor(testMonitors(), "")
	if err != nil {
		t.Fatalf("FindMonitor: %v", err)
	}
	if mon.Name != "eDP-1" {
		t.Fatalf("expected first monitor, got %q", mon.Name)
	}
}

func TestFindMonitorPrimary(t *testing.T) {
	mon, err := FindMonitor(testMonitors(), "primary")
	if err != nil {
		t.Fatalf("FindMonitor: %v", err)
	}
	if mon.Name != "DP-2" {
		t.Fatalf("expected primary monitor, got %q", mon.Name)
	}
}

func TestFindMonitorByIndex(t *testing.T) {
	mon, err := FindMonitor(testMonitors(), "#1")
	if err != nil {
		t.Fatalf("FindMonitor: %v", err)
	}
	if mon.Index != 1 {
		t.Fatalf("expected index 1, got %d", mon.Index)
	}
	if _, err := FindMonitor(testMonitors(), "5"); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestFindMonitorByName(t *testing.T) {
	mon, err := FindMonitor(testMonitors(), "dp-2")
	if err != nil {
		t.Fatalf("FindMonitor: %v", err)
	}
	if mon.Name != "DP-2" {
		t.Fatalf("expected DP-2, got %q", mon.Name)
	}
	if _, err := FindMonitor(testMonitors(), "HDMI"); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestFindMonitorNoMonitors(t *testing.T) {
	_, err := FindMonitor(nil, "primary")
	if !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
}

func TestCropToRect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	src.SetRGBA(60, 70, color.RGBA{R: 255, A: 255})
	out, err := cropToRect(src, image.Rect(50, 50, 100, 100))
	if err != nil {
		t.Fatalf("cropToRect: %v", err)
	}
	if got := out.Bounds(); got.Dx() != 50 || got.Dy() != 50 {
		t.Fatalf("unexpected size %v", got)
	}
	if got := out.RGBAAt(10, 20); got.R != 255 {
		t.Fatalf("expected marker pixel at (10,20), got %+v", got)
	}
}

func TestCropToRectOutsideBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if _, err := cropToRect(src, image.Rect(50, 50, 60, 60)); err == nil {
		t.Fatal("expected error for rect outside bounds")
	}
}
