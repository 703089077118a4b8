// SPDX-License-Identifier: MIT
// Package: rmmcurve/render
//
// design.go — colour palettes and element styling vocabulary.
//
// Each chromatic family has PaletteSize slots ordered light → dark;
// MainColorSlot is the family's reference shade. Black and White are
// single colours and ignore the slot.

package render

import (
	"fmt"
	"image/color"
)

// PaletteSize is the number of shades per chromatic family.
const PaletteSize = 10

// MainColorSlot is the default shade of every family.
const MainColorSlot = 5

// regionAlpha is the fill opacity of shaded regions (0xAA of 0xFF).
const regionAlpha = 0xAA

// Color names a palette family.
type Color int

// Palette families.
const (
	Green Color = iota
	Blue
	Purple
	Grey
	Black
	White
)

var colorNames = map[Color]string{
	Green:  "green",
	Blue:   "blue",
	Purple: "purple",
	Grey:   "grey",
	Black:  "black",
	White:  "white",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Color(%d)", int(c))
}

var (
	primitiveBlack = rgb(0x0d0d0d)
	primitiveWhite = rgb(0xfafafa)
)

// rgb unpacks an opaque 0xRRGGBB literal.
func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var palettes = map[Color][PaletteSize]color.RGBA{
	Green: {
		rgb(0xe9fbf0), rgb(0xc8f4d9), rgb(0x9debbd),
		rgb(0x6bdf9c), rgb(0x3fd17e), rgb(0x1fbf67),
		rgb(0x179c54), rgb(0x137a43), rgb(0x0f5932),
		rgb(0x0a3a21),
	},
	Blue: {
		rgb(0xeaf3ff), rgb(0xc9e0ff), rgb(0x9ec6ff),
		rgb(0x6ca7fb), rgb(0x4389f5), rgb(0x246deb),
		rgb(0x1a57c4), rgb(0x15449b), rgb(0x113272),
		rgb(0x0b214b),
	},
	Purple: {
		rgb(0xf4eeff), rgb(0xe4d6ff), rgb(0xcdb5fd),
		rgb(0xb28ef9), rgb(0x986af2), rgb(0x804be8),
		rgb(0x6838c9), rgb(0x522ba1), rgb(0x3d2078),
		rgb(0x28154f),
	},
	Grey: {
		rgb(0xf5f5f6), rgb(0xe4e5e8), rgb(0xcbcdd2),
		rgb(0xadb0b7), rgb(0x8f939c), rgb(0x737781),
		rgb(0x5b5e67), rgb(0x45484f), rgb(0x313338),
		rgb(0x1e1f23),
	},
}

// Shade returns the RGBA of slot in family c.
// Returns ErrBadChart for an unknown family or a slot outside [0, PaletteSize).
func (c Color) Shade(slot int) (color.RGBA, error) {
	switch c {
	case Black:
		return primitiveBlack, nil
	case White:
		return primitiveWhite, nil
	}

	palette, ok := palettes[c]
	if !ok {
		return color.RGBA{}, chartErrorf("unknown color %v", c)
	}
	if slot < 0 || slot >= PaletteSize {
		return color.RGBA{}, chartErrorf("%v slot %d outside [0, %d)", c, slot, PaletteSize)
	}

	return palette[slot], nil
}

// Style selects how a curve is drawn.
type Style int

// Curve styles.
const (
	Lines Style = iota
	Markers
)

// Emphasis selects line weight and dashing, or marker size.
type Emphasis int

// Emphasis levels.
const (
	Light Emphasis = iota
	Heavy
	Dashed
)

// CurveDesign styles one curve.
type CurveDesign struct {
	Color    Color
	Slot     int
	Style    Style
	Emphasis Emphasis
}

// RegionDesign styles one shaded region.
type RegionDesign struct {
	Color Color
	Slot  int
}

// DisplayMode picks the foreground/background scheme.
type DisplayMode int

// Display modes.
const (
	LightMode DisplayMode = iota
	DarkMode
)

// Display controls the page a chart is drawn on.
type Display struct {
	Transparent bool
	Mode        DisplayMode
}

// palette returns (foreground, background) for the display.
func (d Display) palette() (fg, bg color.Color) {
	fg, bg = primitiveBlack, primitiveWhite
	if d.Mode == DarkMode {
		fg, bg = primitiveWhite, primitiveBlack
	}
	if d.Transparent {
		bg = color.Transparent
	}

	return fg, bg
}
