// Package theme holds the palette and the font of the graphical client.
package theme

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

func (c GameColor) Color(alpha float64) color.Color {
	return color.NRGBA{
		R: uint8(c.r * 255),
		G: uint8(c.g * 255),
		B: uint8(c.b * 255),
		A: uint8(alpha * 255),
	}
}

var COLOR_NONE = HexToF32(0x000000)
var COLOR_WALL = HexToF32(0x2121de)
var COLOR_DOT = HexToF32(0xffb8ae)
var COLOR_PLAYER = HexToF32(0xffff00)
var COLOR_TEXT = HexToF32(0xffffff)

var GHOST_COLORS = []GameColor{
	HexToF32(0xfa3636),
	HexToF32(0xffb8ff),
	HexToF32(0x34fbf6),
	HexToF32(0xffb852),
	HexToF32(0xcb18dd),
}

// GhostColor picks the colour of the i-th ghost, wrapping around the palette.
func GhostColor(i int) GameColor {
	return GHOST_COLORS[i%len(GHOST_COLORS)]
}

// LoadFont parses the bundled Go font into a face of the given size.
func LoadFont(points float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:       points,
		DPI:        dpi,
		SubPixelsX: 100,
		Hinting:    font.HintingFull,
	}), nil
}
