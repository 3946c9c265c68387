package timerwindow

import (
	"image"
	"image/color"
	"math"
)

// RingColors defines the two ring colours.
type RingColors struct {
	Filled color.NRGBA
	Track  color.NRGBA
}

const ringThicknessFraction = 0.08

// RingImage draws a ring that is filled clockwise from twelve o'clock for
// the given fraction of its circumference.
func RingImage(width, height int, fraction float64, colors RingColors) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	fraction = math.Max(0, math.Min(1, fraction))
	centerX := float64(width) / 2
	centerY := float64(height) / 2
	outer := math.Min(centerX, centerY) - 1
	thickness := math.Max(2, outer*ringThicknessFraction)
	inner := outer - thickness
	sweep := fraction * 2 * math.Pi

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			distance := math.Hypot(dx, dy)
			if distance < inner || distance > outer {
				continue
			}
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle < sweep {
				img.SetNRGBA(x, y, colors.Filled)
			} else {
				img.SetNRGBA(x, y, colors.Track)
			}
		}
	}
	return img
}
