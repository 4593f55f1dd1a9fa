package geokml

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	kml "github.com/twpayne/go-kml"

	"github.com/godeepar/geokml/settings"
)

// KMLAccessor attaches the KML conversion methods to a GeoDataFrame.
type KMLAccessor struct {
	gdf *GeoDataFrame
}

// DocumentOptions control the produced document. The zero value yields a
// white, fully opaque document with circle icons, extruded and tessellated
// geometries clamped to the ground.
type DocumentOptions struct {
	// Name names the document; empty picks a generated one.
	Name string

	// NameColumn is the attribute column used for placemark names; empty
	// leaves placemarks unnamed.
	NameColumn string

	// DisplayNames are the ExtendedData labels, one per attribute column.
	DisplayNames []string

	// Color is a named color, an RGB triple or a hex code, singly or as a
	// per-row sequence. Alpha is a unit-interval float, scalar or per-row.
	Color interface{}
	Alpha interface{}

	// Icon is the href used for point styles; see settings.Icons.
	Icon      string
	IconScale float64
	LineWidth float64

	// Extrude, Tessellate and AltitudeMode take scalars, broadcast to every
	// row, or per-row sequences of matching length.
	Extrude      interface{}
	Tessellate   interface{}
	AltitudeMode interface{}
}

// withDefaults fills in the option defaults without touching the caller's
// struct.
func (o DocumentOptions) withDefaults() DocumentOptions {
	if o.Name == "" {
		o.Name = "geokml_" + GenerateID(10)
	}
	if o.Color == nil {
		o.Color = "white"
	}
	if o.Alpha == nil {
		o.Alpha = 1.0
	}
	if o.Icon == "" {
		o.Icon = settings.Icons.Circle
	}
	if o.IconScale == 0 {
		o.IconScale = 1.0
	}
	if o.LineWidth == 0 {
		o.LineWidth = 2.0
	}
	if o.Extrude == nil {
		o.Extrude = true
	}
	if o.Tessellate == nil {
		o.Tessellate = true
	}
	if o.AltitudeMode == nil {
		o.AltitudeMode = "clamp_to_ground"
	}
	return o
}

// Document converts the frame into a complete KML document: shared styles
// colored from the normalized color specification, one placemark per row
// carrying its name, ExtendedData records and encoded geometry, a LookAt
// over the dataset extent, and the s2 tokens covering it.
func (a *KMLAccessor) Document(opts DocumentOptions) (*kml.CompoundElement, error) {
	gdf := a.gdf
	opts = opts.withDefaults()
	n := gdf.Len()

	normalized, err := NormalizeColor(opts.Color, opts.Alpha)
	if err != nil {
		return nil, err
	}
	if !normalized.Valid {
		return nil, errors.New(Formatter("``color`` is not a named color, an RGB triple or a hex code." +
			backWord("color", truncateValue(opts.Color))))
	}
	codes, err := normalized.Codes(n)
	if err != nil {
		return nil, err
	}

	styles, styleIDs, err := sharedStyles(codes, opts)
	if err != nil {
		return nil, err
	}

	container := initExtentContainer()
	for _, g := range gdf.Geometry {
		container.observe(g)
	}
	bound := container.Close()

	geometries, err := GeoSeriesToKML(gdf.Geometry, opts.Extrude, opts.Tessellate, opts.AltitudeMode)
	if err != nil {
		return nil, err
	}
	extended, err := ExtendedDataByRow(gdf, opts.DisplayNames)
	if err != nil {
		return nil, err
	}
	names, err := placemarkNames(gdf, opts.NameColumn)
	if err != nil {
		return nil, err
	}

	doc := kml.Document(kml.Name(opts.Name))
	if bound != nil {
		doc.Add(lookAt(bound))
	}
	if tokens := s2Covering(bound); len(tokens) > 0 {
		doc.Add(kml.ExtendedData(
			kml.Data(kml.Name("s2_covering"), kml.Value(strings.Join(tokens, " "))),
		))
	}
	doc.Add(styles...)

	for i := 0; i < n; i++ {
		children := make([]kml.Element, 0, 4)
		if names[i] != "" {
			children = append(children, kml.Name(names[i]))
		}
		children = append(children,
			kml.StyleURL("#"+styleIDs[i]),
			extended[i],
			geometries[i],
		)
		doc.Add(kml.Placemark(children...))
	}

	return kml.KML(doc), nil
}

// Write renders the document as indented XML to w.
func (a *KMLAccessor) Write(w io.Writer, opts DocumentOptions) error {
	doc, err := a.Document(opts)
	if err != nil {
		return err
	}
	return doc.WriteIndent(w, "", "  ")
}

// sharedStyles builds one shared style per distinct color code and maps
// every row to its style id.
func sharedStyles(codes []string, opts DocumentOptions) ([]kml.Element, []string, error) {
	var styles []kml.Element
	styleIDs := make([]string, len(codes))
	byCode := make(map[string]string)
	for i, code := range codes {
		id, ok := byCode[code]
		if !ok {
			c, err := KMLHexToColor(code)
			if err != nil {
				return nil, nil, err
			}
			id = "style" + GenerateID(10)
			byCode[code] = id
			styles = append(styles, kml.SharedStyle(id,
				kml.IconStyle(
					kml.Scale(opts.IconScale),
					kml.Color(c),
					kml.Icon(kml.Href(opts.Icon)),
				),
				kml.LineStyle(
					kml.Color(c),
					kml.Width(opts.LineWidth),
				),
				kml.PolyStyle(
					kml.Color(c),
				),
			))
		}
		styleIDs[i] = id
	}
	return styles, styleIDs, nil
}

// placemarkNames resolves the per-row placemark names from the name column;
// empty column name leaves every placemark unnamed.
func placemarkNames(gdf *GeoDataFrame, column string) ([]string, error) {
	names := make([]string, gdf.Len())
	if column == "" {
		return names, nil
	}
	values, ok := gdf.Data[column]
	if !ok {
		return nil, errors.New(Formatter("``name_column`` must be one of the attribute columns." +
			backWord("name_column", column)))
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		names[i] = fmt.Sprintf("%v", v)
	}
	return names, nil
}
