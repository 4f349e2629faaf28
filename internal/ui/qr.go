package ui

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// renderQR draws url as a QR code using half-block characters, two modules
// per character row
func renderQR(url string) (string, error) {
	q, err := qrcode.New(url, qrcode.Low)
	if err != nil {
		return "", err
	}
	bitmap := q.Bitmap()

	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < len(bitmap) {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
