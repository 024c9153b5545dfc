// Package qrcode scans the cropped pixels for an embedded QR code.
package qrcode

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
)

// Decode looks for a QR code in img and returns its text content. A clean
// image with no recognizable code reports found == false with a nil error;
// err is reserved for images that contain a code the decoder cannot read.
func Decode(img image.Image) (text string, found bool, err error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false, err
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		if _, ok := err.(gozxing.NotFoundException); ok {
			return "", false, nil
		}
		return "", false, err
	}
	return result.GetText(), true, nil
}
