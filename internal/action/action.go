package action

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/example/snipshot/internal/clipboard"
	"github.com/example/snipshot/internal/notify"
	"github.com/example/snipshot/internal/qrcode"
)

// Action identifies an operation performed on a committed selection.
type Action int

const (
	// ActionCopy copies the selection to the system clipboard.
	ActionCopy Action = iota
	// ActionSave writes the selection to a PNG file.
	ActionSave
	// ActionScan decodes a QR code from the selection.
	ActionScan
	// ActionQuit dismisses the overlay without doing anything.
	ActionQuit
)

// ErrNoQRCode reports that a scan found no decodable QR code in the selection.
var ErrNoQRCode = errors.New("no QR code found")

var actionLabels = map[Action]string{
	ActionCopy: "Copy",
	ActionSave: "Save",
	ActionScan: "Scan QR",
	ActionQuit: "Quit",
}

// Label returns the menu label for the action.
func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Dispatcher executes actions against cropped selection images.
type Dispatcher struct {
	// SaveDir is the directory timestamped save files are written to.
	SaveDir string
	// Output, when non-empty, overrides SaveDir with an exact output path.
	Output string

	Notifier *notify.Notifier

	writeImage func(image.Image) error
	writeText  func(string) error
	decode     func(image.Image) (string, bool, error)
	now        func() time.Time
}

// NewDispatcher creates a dispatcher wired to the clipboard and QR decoder.
func NewDispatcher(saveDir, output string, notifier *notify.Notifier) *Dispatcher {
	return &Dispatcher{
		SaveDir:    saveDir,
		Output:     output,
		Notifier:   notifier,
		writeImage: clipboard.WriteImage,
		writeText:  clipboard.WriteText,
		decode:     qrcode.Decode,
		now:        time.Now,
	}
}

// Do performs the action on the cropped selection. It reports whether the
// overlay should close afterwards. A scan that finds no QR code returns
// ErrNoQRCode and keeps the overlay open so the user can adjust the selection.
func (d *Dispatcher) Do(a Action, img image.Image) (bool, error) {
	switch a {
	case ActionCopy:
		if err := d.writeImage(img); err != nil {
			return false, fmt.Errorf("copy selection: %w", err)
		}
		d.Notifier.Copy("selection", img)
		return true, nil
	case ActionSave:
		path, err := d.save(img)
		if err != nil {
			return false, fmt.Errorf("save selection: %w", err)
		}
		d.Notifier.Save(path)
		return true, nil
	case ActionScan:
		text, found, err := d.decode(img)
		if err != nil {
			return false, fmt.Errorf("scan selection: %w", err)
		}
		if !found {
			return false, ErrNoQRCode
		}
		if err := d.writeText(text); err != nil {
			return false, fmt.Errorf("copy scanned text: %w", err)
		}
		d.Notifier.Scan(text)
		return true, nil
	case ActionQuit:
		return true, nil
	}
	return false, fmt.Errorf("unknown action %d", int(a))
}

func (d *Dispatcher) save(img image.Image) (string, error) {
	path := d.Output
	if path == "" {
		name := fmt.Sprintf("snipshot-%s.png", d.now().Format("20060102-150405"))
		path = filepath.Join(d.SaveDir, name)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
