package window

import (
	"image"
	"image/color"

	"github.com/vovakirdan/roadcross/internal/core"
)

// rgba maps core colours to the X11 colours of the same name.
var rgba = map[core.Color]color.RGBA{
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorBlue:    {0, 0, 255, 255},
	core.ColorMagenta: {255, 0, 255, 255},
	core.ColorCyan:    {0, 255, 255, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorOrange:  {255, 165, 0, 255},
	core.ColorPurple:  {160, 32, 240, 255},
	core.ColorPink:    {255, 192, 203, 255},
	core.ColorGray:    {190, 190, 190, 255},
}

// toRGBA returns the colour for c, white when unmapped.
func toRGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorWhite]
}

// circleMask returns a white disc of the given radius.
func circleMask(radius int) *image.RGBA {
	size := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r2 := float64(radius) * float64(radius)
	for y := range size {
		for x := range size {
			dx := float64(x) + 0.5 - float64(radius)
			dy := float64(y) + 0.5 - float64(radius)
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

// arrowMask returns a white triangle pointing up.
func arrowMask(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := range size {
		// Row y spans a width growing linearly from the tip
		span := half * float64(y+1) / float64(size)
		for x := range size {
			if d := float64(x) + 0.5 - half; d >= -span && d <= span {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}
