package render

import (
	"image"
	"image/color"
)

// FallbackSheet builds a procedurally drawn 4x4 sprite sheet used when a
// character sheet asset is missing. Each frame contains a solid figure whose
// outline shifts with the frame column and leans with the direction row, so
// alpha-bounds extraction still produces distinct per-frame boxes and the
// simulation behaves the same as with real art.
func FallbackSheet(frameW, frameH int, body color.NRGBA) image.Image {
	if frameW <= 0 {
		frameW = 64
	}
	if frameH <= 0 {
		frameH = 64
	}
	img := image.NewNRGBA(image.Rect(0, 0, frameW*SheetCols, frameH*SheetRows))

	for row := 0; row < SheetRows; row++ {
		for col := 0; col < SheetCols; col++ {
			ox := col * frameW
			oy := row * frameH

			// torso: roughly half the frame width, bottom aligned,
			// nudged sideways per frame for a walk bob
			tw := frameW / 2
			th := frameH * 3 / 4
			tx := (frameW-tw)/2 + (col%2)*2 - 1
			ty := frameH - th
			fillRect(img, ox+tx, oy+ty, tw, th, body)

			// head: smaller box above the torso, leaning with the row
			hw := frameW / 3
			hh := frameH / 4
			hx := (frameW-hw)/2 + (row-1)*2
			hy := ty - hh + 2
			fillRect(img, ox+hx, oy+hy, hw, hh, body)
		}
	}
	return img
}

// FallbackBackdrop builds a sky-and-clouds backdrop used when the background
// image asset is missing.
func FallbackBackdrop(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	sky := color.NRGBA{R: 100, G: 150, B: 255, A: 255}
	fillRect(img, 0, 0, w, h, sky)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < w/200; i++ {
		cx := i*200 + 50
		cy := 50 + (i%3)*40
		r := 30 + (i%3)*10
		fillCircle(img, cx, cy, r, white)
		fillCircle(img, cx+40, cy+10, r-5, white)
		fillCircle(img, cx+20, cy-10, r-10, white)
	}
	return img
}

// FallbackForeground builds a translucent hills strip used when the
// foreground image asset is missing.
func FallbackForeground(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	dirt := color.NRGBA{R: 100, G: 80, B: 60, A: 180}
	fillRect(img, 0, h-100, w, 100, dirt)

	hill := color.NRGBA{R: 120, G: 100, B: 80, A: 180}
	for i := 0; i < w/100; i++ {
		hx := i * 100
		hh := 50 + (i%5)*20
		fillEllipse(img, hx, h-hh, 200, hh*2, hill)
	}
	return img
}

func fillRect(img *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	b := img.Bounds()
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if px >= b.Min.X && px < b.Max.X && py >= b.Min.Y && py < b.Max.Y {
				img.SetNRGBA(px, py, c)
			}
		}
	}
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx := px - cx
			dy := py - cy
			if dx*dx+dy*dy <= r*r {
				if image.Pt(px, py).In(img.Bounds()) {
					img.SetNRGBA(px, py, c)
				}
			}
		}
	}
}

func fillEllipse(img *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	rx := float64(w) / 2
	ry := float64(h) / 2
	cx := float64(x) + rx
	cy := float64(y) + ry
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				if image.Pt(px, py).In(img.Bounds()) {
					img.SetNRGBA(px, py, c)
				}
			}
		}
	}
}
