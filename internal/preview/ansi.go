// Package preview renders sheet images as truecolor ANSI art.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Render converts img to ANSI art width characters wide and height lines
// tall. Each character is an upper half block whose foreground is the upper
// pixel pair and background the lower pair. Transparent areas come out black.
func Render(img image.Image, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)
	origin := resized.Bounds().Min

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			c1 := colorAt(resized, origin.X+x, origin.Y+y)
			c2 := colorAt(resized, origin.X+x+1, origin.Y+y)
			c3 := colorAt(resized, origin.X+x, origin.Y+y+1)
			c4 := colorAt(resized, origin.X+x+1, origin.Y+y+1)

			fg := average(c1, c2)
			bg := average(c3, c4)
			buffer.WriteString(halfBlock(fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String(), nil
}

// Size picks a character grid that keeps the aspect ratio of a w x h image
// at the given character width. Terminal cells are about twice as tall as
// wide, which the half blocks compensate for.
func Size(w, h, width int) (int, int) {
	if w <= 0 || h <= 0 || width <= 0 {
		return 0, 0
	}
	height := (h*width + w - 1) / w / 2
	if height < 1 {
		height = 1
	}
	return width, height
}

// colorAt returns the pixel at (x, y) composited onto black, or black when
// the point is out of bounds.
func colorAt(img image.Image, x, y int) colorful.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return colorful.Color{}
	}
	// RGBA is premultiplied, so dividing out nothing composites onto black.
	r, g, b, _ := img.At(x, y).RGBA()
	return colorful.Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}.Clamped()
}

func halfBlock(fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m", r1, g1, b1, r2, g2, b2)
}

// StripANSI removes ANSI escape sequences from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// ToColor converts a colorful colour to an opaque RGBA colour.
func ToColor(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
