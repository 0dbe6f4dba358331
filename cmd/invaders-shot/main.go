// main.go - rasterises a .snapshot dumped by `invaders run --dump-on-exit`
// into a PNG, grounded on the teacher's tools/font2rgba.go (same
// image/png encode-to-stdlib-image approach), reusing this module's own
// bit-packed column-major decode for the unpacking step.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/colornames"
)

const (
	videoColumns     = 224
	videoBitRows     = 256
	videoBytesPerCol = videoBitRows / 8
	snapshotSize     = videoColumns * videoBytesPerCol
)

var phosphorGreen = colornames.Springgreen

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: invaders-shot snapshot.bin out.png")
		os.Exit(1)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if len(raw) != snapshotSize {
		fmt.Fprintf(os.Stderr, "error: expected %d byte snapshot, got %d\n", snapshotSize, len(raw))
		os.Exit(1)
	}

	img := rasterise(raw)

	out, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// rasterise unpacks the stored column-major video RAM and rotates it 90
// degrees counter-clockwise into a landscape image, the same
// transformation decodeFramebuffer applies for live display.
func rasterise(vram []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, videoBitRows, videoColumns))

	for col := 0; col < videoColumns; col++ {
		for byteIdx := 0; byteIdx < videoBytesPerCol; byteIdx++ {
			b := vram[col*videoBytesPerCol+byteIdx]
			for bit := 0; bit < 8; bit++ {
				y := byteIdx*8 + bit
				pixel := (b >> uint(bit)) & 1

				rx := y
				ry := videoColumns - 1 - col

				c := color.Color(color.Black)
				if pixel != 0 {
					c = phosphorGreen
				}
				img.Set(rx, ry, c)
			}
		}
	}
	return img
}
