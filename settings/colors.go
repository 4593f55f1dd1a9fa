package settings

// NamedColors maps the recognized color names to their RGB hex codes.
// The table is read-only, process-wide data; color validation treats a
// string as a named color only if it is a key here.
var NamedColors = map[string]string{
	"tomato":      "#ff6347",
	"teal":        "#008b8b",
	"royalblue":   "#4169e1",
	"firebrick":   "#b22222",
	"seagreen":    "#2e8b57",
	"dodgerblue":  "#1e90ff",
	"red":         "#ff0000",
	"green":       "#00ff00",
	"blue":        "#0000ff",
	"gold":        "#ffa500",
	"lime":        "#00ff00",
	"cyan":        "#00ffff",
	"maroon":      "#800000",
	"olive":       "#808000",
	"indigo":      "#4b0082",
	"crimson":     "#dc143c",
	"yellowgreen": "#9acd32",
	"navy":        "#000080",
	"pink":        "#ffc0cb",
	"skyblue":     "#87ceeb",
	"springgreen": "#00ff7f",
	"magenta":     "#ff00ff",
	"yellow":      "#ffff00",
	"brown":       "#a52a2a",
	"steelblue":   "#4682b4",
	"violet":      "#ee82ee",
	"white":       "#ffffff",
	"gray":        "#808080",
	"black":       "#000000",
}
