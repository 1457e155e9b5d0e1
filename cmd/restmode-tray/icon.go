package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

var iconOnce struct {
	sync.Once
	data []byte
}

// iconData renders the tray icon: a filled circle on a transparent square.
// Rendering at runtime avoids shipping binary assets in the repo.
func iconData() []byte {
	iconOnce.Do(func() {
		const size = 22
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		center := float64(size-1) / 2
		radius := center - 1

		fill := color.RGBA{R: 0x00, G: 0x96, B: 0xFF, A: 0xFF}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx := float64(x) - center
				dy := float64(y) - center
				if dx*dx+dy*dy <= radius*radius {
					img.SetRGBA(x, y, fill)
				}
			}
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return
		}
		iconOnce.data = buf.Bytes()
	})
	return iconOnce.data
}
