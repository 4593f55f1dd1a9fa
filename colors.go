package geokml

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/godeepar/geokml/settings"
)

// ColorMatch is the outcome of a single color-form detector. An invalid
// match is an expected result, not an error; callers try the next detector
// in priority order and escalate only when every detector fails.
type ColorMatch struct {
	Valid    bool
	Sequence bool
	Hex      string
	HexList  []string
}

// colorDetectors are tried in fixed priority order; the first success wins.
// A value whose shape happens to satisfy several detectors is resolved by
// this order, not by content.
var colorDetectors = []func(interface{}) ColorMatch{
	MatchColorName,
	MatchRGB,
	MatchHexCode,
}

// MatchColorName recognizes a named color, or a flat sequence of named
// colors, resolving each against the settings.NamedColors table.
func MatchColorName(value interface{}) ColorMatch {
	switch DimensionalCount(value) {
	case 0:
		name, ok := normalizePrimitive(value).(string)
		if !ok {
			return ColorMatch{}
		}
		hex, ok := settings.NamedColors[name]
		if !ok {
			return ColorMatch{}
		}
		return ColorMatch{Valid: true, Hex: hex}
	case 1:
		items, _ := asSlice(value)
		hexes := make([]string, 0, len(items))
		for _, item := range items {
			name, ok := normalizePrimitive(item).(string)
			if !ok {
				return ColorMatch{}
			}
			hex, ok := settings.NamedColors[name]
			if !ok {
				return ColorMatch{}
			}
			hexes = append(hexes, hex)
		}
		return ColorMatch{Valid: true, Sequence: true, HexList: hexes}
	}
	return ColorMatch{}
}

// MatchRGB recognizes a single (r, g, b) integer triple or a sequence of
// triples, each channel in the byte range, and converts them to #rrggbb.
func MatchRGB(value interface{}) ColorMatch {
	switch DimensionalCount(value) {
	case 1:
		hex, ok := rgbTripleToHex(value)
		if !ok {
			return ColorMatch{}
		}
		return ColorMatch{Valid: true, Hex: hex}
	case 2:
		items, _ := asSlice(value)
		hexes := make([]string, 0, len(items))
		for _, item := range items {
			hex, ok := rgbTripleToHex(item)
			if !ok {
				return ColorMatch{}
			}
			hexes = append(hexes, hex)
		}
		return ColorMatch{Valid: true, Sequence: true, HexList: hexes}
	}
	return ColorMatch{}
}

// rgbTripleToHex converts one triple to its hex code, rejecting anything
// that is not exactly three integers in the byte range.
func rgbTripleToHex(value interface{}) (string, bool) {
	if !IterableSpecificType(value, KindInt) {
		return "", false
	}
	items, _ := asSlice(value)
	if len(items) != 3 {
		return "", false
	}
	channels := make([]int, 3)
	for i, item := range items {
		n, _ := normalizePrimitive(item).(int)
		if !ValueRange8Bit(float64(n)) {
			return "", false
		}
		channels[i] = n
	}
	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]), true
}

// MatchHexCode recognizes a 6-digit hex code, with or without its leading
// marker, or a flat sequence of such codes. Accepted values are stored
// unchanged.
func MatchHexCode(value interface{}) ColorMatch {
	switch DimensionalCount(value) {
	case 0:
		s, ok := normalizePrimitive(value).(string)
		if !ok || !isHexShape(s) {
			return ColorMatch{}
		}
		return ColorMatch{Valid: true, Hex: s}
	case 1:
		items, _ := asSlice(value)
		hexes := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := normalizePrimitive(item).(string)
			if !ok || !isHexShape(s) {
				return ColorMatch{}
			}
			hexes = append(hexes, s)
		}
		return ColorMatch{Valid: true, Sequence: true, HexList: hexes}
	}
	return ColorMatch{}
}

// isHexShape accepts six hex digits, case-insensitive, with an optional
// leading '#'.
func isHexShape(s string) bool {
	if len(s) == 7 {
		if s[0] != '#' {
			return false
		}
		s = s[1:]
	}
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// HexAlphaToHexABGR composites an alpha channel onto a 6-digit RGB hex code
// and reorders the channels into the KML ABGR order. The alpha channel is
// truncated, not rounded: alpha 0.5 maps to 0x7f.
func HexAlphaToHexABGR(value string, alpha float64) (string, error) {
	code := strings.ReplaceAll(value, "#", "")
	if !isHexShape(code) || len(code) != 6 {
		return "", errors.New(Formatter("The value must be a 6-digit hexadecimal code." +
			backWord("value", value)))
	}
	if !ValueRange1(alpha) {
		return "", errors.New(Formatter("The alpha value must be between 0 and 1." +
			backWord("alpha", alpha)))
	}
	r, g, b := code[0:2], code[2:4], code[4:6]
	return fmt.Sprintf("#%02x%s%s%s", int(alpha*255), b, g, r), nil
}

// NormalizedColor is the result of color normalization: premultiplied KML
// ABGR code(s) ready for style elements. Valid is false when no detector
// recognized the input; the caller decides whether that is an error.
type NormalizedColor struct {
	Valid    bool
	Sequence bool
	KMLHex   string
	KMLHexes []string
}

// NormalizeColor validates a color specification in any supported form
// (named color, RGB triple or hex code, singly or as a homogeneous
// sequence), composites the alpha channel and reorders to the KML ABGR
// channel order.
//
// A scalar color pairs only with a scalar alpha. A sequence color takes
// either a scalar alpha, broadcast to every color, or an alpha sequence of
// exactly the same length.
func NormalizeColor(value interface{}, alpha interface{}) (NormalizedColor, error) {
	var match ColorMatch
	for _, detect := range colorDetectors {
		if match = detect(value); match.Valid {
			break
		}
	}
	if !match.Valid {
		return NormalizedColor{}, nil
	}

	if match.Sequence {
		alphas, err := broadcastAlpha(alpha, len(match.HexList))
		if err != nil {
			return NormalizedColor{}, err
		}
		hexes := make([]string, len(match.HexList))
		for i, h := range match.HexList {
			abgr, err := HexAlphaToHexABGR(h, alphas[i])
			if err != nil {
				return NormalizedColor{}, err
			}
			hexes[i] = abgr
		}
		return NormalizedColor{Valid: true, Sequence: true, KMLHexes: hexes}, nil
	}

	a, ok := alphaScalar(alpha)
	if !ok {
		if DimensionalCount(alpha) > 0 {
			return NormalizedColor{}, errors.New(Formatter("HexCode and alpha types do not match." +
				backWord("alpha", truncateValue(alpha))))
		}
		return NormalizedColor{}, errors.New(Formatter("The alpha value must be a float or a list of floats." +
			backWord("alpha", alpha)))
	}
	abgr, err := HexAlphaToHexABGR(match.Hex, a)
	if err != nil {
		return NormalizedColor{}, err
	}
	return NormalizedColor{Valid: true, KMLHex: abgr}, nil
}

// Codes returns one KML color code per row, broadcasting a scalar color
// across the whole dataset.
func (c NormalizedColor) Codes(n int) ([]string, error) {
	if !c.Sequence {
		out := make([]string, n)
		for i := range out {
			out[i] = c.KMLHex
		}
		return out, nil
	}
	if len(c.KMLHexes) != n {
		return nil, errors.New(Formatter("The length of ``color`` must be the same as the length of the geometry column." +
			backWord("color", len(c.KMLHexes))))
	}
	return c.KMLHexes, nil
}

// alphaScalar admits float alphas only; integers are not a valid alpha.
func alphaScalar(alpha interface{}) (float64, bool) {
	f, ok := normalizePrimitive(alpha).(float64)
	return f, ok
}

// broadcastAlpha expands a scalar alpha to length n, or checks that a
// sequence alpha has exactly length n.
func broadcastAlpha(alpha interface{}, n int) ([]float64, error) {
	if f, ok := alphaScalar(alpha); ok {
		out := make([]float64, n)
		for i := range out {
			out[i] = f
		}
		return out, nil
	}
	if DimensionalCount(alpha) == 1 && IterableSpecificType(alpha, KindFloat) {
		items, _ := asSlice(alpha)
		if len(items) != n {
			return nil, errors.New(Formatter("The length of the hex code and alpha value must be the same." +
				backWord("alpha", fmt.Sprintf("len %d, want %d", len(items), n))))
		}
		out := make([]float64, len(items))
		for i, item := range items {
			out[i], _ = normalizePrimitive(item).(float64)
		}
		return out, nil
	}
	return nil, errors.New(Formatter("The alpha value must be a float or a list of floats." +
		backWord("alpha", truncateValue(alpha))))
}

// KMLHexToColor parses a normalized #aabbggrr code into the color.RGBA the
// document builder consumes.
func KMLHexToColor(code string) (color.RGBA, error) {
	s := strings.TrimPrefix(code, "#")
	if len(s) != 8 {
		return color.RGBA{}, errors.New(Formatter("The value must be an 8-digit KML color code." +
			backWord("value", code)))
	}
	channels := make([]uint8, 4)
	for i := 0; i < 4; i++ {
		n, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, errors.New(Formatter("The value must be an 8-digit KML color code." +
				backWord("value", code)))
		}
		channels[i] = uint8(n)
	}
	// channels are a, b, g, r
	return color.RGBA{R: channels[3], G: channels[2], B: channels[1], A: channels[0]}, nil
}
