package geokml

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchColorName(t *testing.T) {
	m := MatchColorName("red")
	assert.True(t, m.Valid)
	assert.False(t, m.Sequence)
	assert.Equal(t, "#ff0000", m.Hex)

	m = MatchColorName([]string{"red", "blue"})
	assert.True(t, m.Valid)
	assert.True(t, m.Sequence)
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, m.HexList)

	assert.False(t, MatchColorName("notacolor").Valid)
	assert.False(t, MatchColorName(3).Valid)
	assert.False(t, MatchColorName([]string{"red", "notacolor"}).Valid)
	assert.False(t, MatchColorName([][]string{{"red"}}).Valid)
}

func TestMatchRGB(t *testing.T) {
	m := MatchRGB([]int{255, 0, 0})
	assert.True(t, m.Valid)
	assert.False(t, m.Sequence)
	assert.Equal(t, "#ff0000", m.Hex)

	// out of byte range fails the detector, it does not raise
	assert.False(t, MatchRGB([]int{256, 0, 0}).Valid)
	assert.False(t, MatchRGB([]int{255, 0}).Valid)
	assert.False(t, MatchRGB([]float64{255, 0, 0}).Valid)
	assert.False(t, MatchRGB("red").Valid)

	m = MatchRGB([][]int{{255, 0, 0}, {0, 0, 255}})
	assert.True(t, m.Valid)
	assert.True(t, m.Sequence)
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, m.HexList)

	// fixed width channels normalize before the check
	assert.True(t, MatchRGB([]int64{18, 52, 86}).Valid)
	assert.Equal(t, "#123456", MatchRGB([]int64{18, 52, 86}).Hex)
}

func TestMatchHexCode(t *testing.T) {
	for _, value := range []string{"#ffffff", "ffffff", "#FFFFFF", "123abc"} {
		m := MatchHexCode(value)
		assert.True(t, m.Valid, value)
		assert.Equal(t, value, m.Hex, "stored value must be unchanged")
	}

	assert.False(t, MatchHexCode("zzzzzz").Valid)
	assert.False(t, MatchHexCode("#fffff").Valid)
	assert.False(t, MatchHexCode("fffffff").Valid)
	assert.False(t, MatchHexCode(255).Valid)

	m := MatchHexCode([]string{"#ffffff", "000000"})
	assert.True(t, m.Valid)
	assert.True(t, m.Sequence)
	assert.Equal(t, []string{"#ffffff", "000000"}, m.HexList)
}

func TestMatchHexCodeIdempotent(t *testing.T) {
	first := MatchHexCode("#abcdef")
	require.True(t, first.Valid)
	second := MatchHexCode(first.Hex)
	require.True(t, second.Valid)
	assert.Equal(t, first.Hex, second.Hex)
}

func TestHexAlphaToHexABGR(t *testing.T) {
	// channel order pinned byte for byte: red + alpha 0.5 -> a, b, g, r
	got, err := HexAlphaToHexABGR("#ff0000", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "#7f0000ff", got)

	got, err = HexAlphaToHexABGR("0000ff", 1.0)
	require.NoError(t, err)
	assert.Equal(t, "#ffff0000", got)

	_, err = HexAlphaToHexABGR("xyzxyz", 1.0)
	assert.Error(t, err)
	_, err = HexAlphaToHexABGR("#ff0000", 1.5)
	assert.Error(t, err)
	_, err = HexAlphaToHexABGR("#ff00", 1.0)
	assert.Error(t, err)
}

func TestNormalizeColorScalar(t *testing.T) {
	got, err := NormalizeColor("red", 0.5)
	require.NoError(t, err)
	require.True(t, got.Valid)
	assert.False(t, got.Sequence)
	assert.Equal(t, "#7f0000ff", got.KMLHex)

	// detector priority resolves the form, first success wins
	got, err = NormalizeColor([]int{255, 0, 0}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000ff", got.KMLHex)

	got, err = NormalizeColor("#ff0000", 1.0)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000ff", got.KMLHex)
}

func TestNormalizeColorSequence(t *testing.T) {
	// scalar alpha broadcasts to every color
	got, err := NormalizeColor([]string{"red", "blue"}, 1.0)
	require.NoError(t, err)
	require.True(t, got.Valid)
	require.True(t, got.Sequence)
	assert.Equal(t, []string{"#ff0000ff", "#ffff0000"}, got.KMLHexes)

	// paired alphas convert independently
	got, err = NormalizeColor([]string{"red", "blue"}, []float64{0.5, 1.0})
	require.NoError(t, err)
	assert.Equal(t, []string{"#7f0000ff", "#ffff0000"}, got.KMLHexes)
}

func TestNormalizeColorFailures(t *testing.T) {
	// no detector succeeds: not an error, just not valid
	got, err := NormalizeColor("notacolor", 1.0)
	require.NoError(t, err)
	assert.False(t, got.Valid)

	// mismatched lengths raise
	_, err = NormalizeColor([]string{"red", "blue"}, []float64{1.0})
	assert.Error(t, err)

	// a scalar color may only pair with a scalar alpha
	_, err = NormalizeColor("red", []float64{1.0})
	assert.Error(t, err)

	// integer alpha is not a float
	_, err = NormalizeColor("red", 1)
	assert.Error(t, err)

	// alpha out of the unit interval
	_, err = NormalizeColor("red", 1.5)
	assert.Error(t, err)

	// mixed form sequences fail every detector
	got, err = NormalizeColor([]interface{}{"red", "#ffffff"}, 1.0)
	require.NoError(t, err)
	assert.False(t, got.Valid)
}

func TestNormalizedColorCodes(t *testing.T) {
	scalar := NormalizedColor{Valid: true, KMLHex: "#ff0000ff"}
	codes, err := scalar.Codes(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000ff", "#ff0000ff", "#ff0000ff"}, codes)

	seq := NormalizedColor{Valid: true, Sequence: true, KMLHexes: []string{"#ff0000ff"}}
	_, err = seq.Codes(2)
	assert.Error(t, err)
}

func TestKMLHexToColor(t *testing.T) {
	c, err := KMLHexToColor("#7f0000ff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0, B: 0, A: 0x7f}, c)

	_, err = KMLHexToColor("#ff0000")
	assert.Error(t, err)
	_, err = KMLHexToColor("#zzzzzzzz")
	assert.Error(t, err)
}
