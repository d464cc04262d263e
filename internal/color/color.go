// Package color implements the palette colour value.
//
// A Color is stored as three sRGB bytes so that hex text survives any number of
// round trips. Two families of adjustment operate on it and must not be mixed:
//
//   - AdjustChannel works on the raw bytes and clamps each channel to [0, 255].
//   - AdjustHue, AdjustLightness and AdjustChroma convert to OkLch, change one
//     coordinate there (hue wraps, lightness and chroma clamp) and convert back.
//     Results outside sRGB keep their lightness and hue and lose chroma. A step
//     too small to change any byte is repeated until one changes or the
//     coordinate runs out of range.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned when text is not exactly six hex digits.
var ErrInvalidFormat = errors.New("invalid hex color")

// MaxChroma is the upper bound applied to OkLch chroma adjustments. Nothing in
// sRGB exceeds roughly 0.37.
const MaxChroma = 0.4

// HexLen is the length of the textual form.
const HexLen = 6

// gamutSearchSteps bounds the chroma bisection in FromOkLch.
const gamutSearchSteps = 32

// Channel selects one byte channel of a Color.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Color is an immutable sRGB value.
type Color struct {
	R, G, B uint8
}

// Default is the colour given to newly created cells.
var Default = Color{}

// FromHex parses exactly six hex digits without a prefix, e.g. "ff8800".
func FromHex(s string) (Color, error) {
	if len(s) != HexLen {
		return Color{}, fmt.Errorf("%w: %q: want %d hex digits", ErrInvalidFormat, s, HexLen)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Hex returns six lowercase, zero-padded hex digits.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Channel returns the byte value of ch.
func (c Color) Channel(ch Channel) uint8 {
	switch ch {
	case Green:
		return c.G
	case Blue:
		return c.B
	default:
		return c.R
	}
}

// AdjustChannel adds delta to one byte channel, saturating at 0 and 255.
func (c Color) AdjustChannel(ch Channel, delta int) Color {
	v := int(c.Channel(ch)) + delta
	if v < 0 {
		v = 0
	}
	if v > math.MaxUint8 {
		v = math.MaxUint8
	}
	switch ch {
	case Red:
		c.R = uint8(v)
	case Green:
		c.G = uint8(v)
	case Blue:
		c.B = uint8(v)
	}
	return c
}

// OkLch returns the colour in OkLch: lightness in [0,1], chroma >= 0 and hue in
// degrees [0,360).
func (c Color) OkLch() (l, chroma, hue float64) {
	return c.colorful().OkLch()
}

// FromOkLch converts an OkLch triple to bytes. Lightness and hue are kept;
// chroma is reduced until the colour fits in sRGB.
func FromOkLch(l, chroma, hue float64) Color {
	switch {
	case l <= 0:
		return Color{}
	case l >= 1:
		return Color{R: math.MaxUint8, G: math.MaxUint8, B: math.MaxUint8}
	}
	if cf := colorful.OkLch(l, chroma, hue); inGamut(cf) {
		return fromColorful(cf)
	}
	lo, hi := 0.0, chroma
	for _i := 0; _i < gamutSearchSteps; _i++ {
		mid := (lo + hi) / 2
		if inGamut(colorful.OkLch(l, mid, hue)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return fromColorful(colorful.OkLch(l, lo, hue))
}

// AdjustHue rotates the OkLch hue by deg degrees. Whole turns are the identity.
func (c Color) AdjustHue(deg float64) Color {
	deg = math.Mod(deg, 360)
	if deg == 0 {
		return c
	}
	l, chroma, hue := c.OkLch()
	tries := max(int(math.Ceil(360/math.Abs(deg)))-1, 1)
	return c.nudge(tries, func(k float64) Color {
		return FromOkLch(l, chroma, wrapDegrees(hue+k*deg))
	})
}

// AdjustLightness shifts OkLch lightness by delta, clamped to [0,1].
func (c Color) AdjustLightness(delta float64) Color {
	if delta == 0 {
		return c
	}
	l, chroma, hue := c.OkLch()
	tries := int(math.Ceil(1/math.Abs(delta))) + 1
	return c.nudge(tries, func(k float64) Color {
		return FromOkLch(clampFloat(l+k*delta, 0, 1), chroma, hue)
	})
}

// AdjustChroma shifts OkLch chroma by delta, clamped to [0,MaxChroma].
func (c Color) AdjustChroma(delta float64) Color {
	if delta == 0 {
		return c
	}
	l, chroma, hue := c.OkLch()
	tries := int(math.Ceil(MaxChroma/math.Abs(delta))) + 1
	return c.nudge(tries, func(k float64) Color {
		return FromOkLch(l, adjustedChroma(chroma, k*delta), hue)
	})
}

// nudge returns the first of at(1) .. at(n) that differs from c, or c.
func (c Color) nudge(n int, at func(k float64) Color) Color {
	for k := 1; k <= n; k++ {
		if next := at(float64(k)); next != c {
			return next
		}
	}
	return c
}

func adjustedChroma(chroma, delta float64) float64 {
	return clampFloat(chroma+delta, 0, MaxChroma)
}

// Contrast returns a label colour readable on top of c: the same colour with
// its Lab lightness pushed 0.3 away from the swatch's luminance.
func (c Color) Contrast() Color {
	cf := c.colorful()
	l, a, b := cf.Lab()
	_, y, _ := cf.Xyz()
	shift := 0.3
	if y > 0.5 {
		shift = -0.3
	}
	return fromColorful(colorful.Lab(l+shift, a, b))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// inGamut accepts channels that round into [0, 255].
func inGamut(cf colorful.Color) bool {
	const tol = 0.5 / math.MaxUint8
	for _, v := range [...]float64{cf.R, cf.G, cf.B} {
		if math.IsNaN(v) || v < -tol || v > 1+tol {
			return false
		}
	}
	return true
}

// fromColorful rounds to bytes. Callers map to the gamut first; Clamped only
// absorbs float error and Contrast's Lab overshoot.
func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func wrapDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
