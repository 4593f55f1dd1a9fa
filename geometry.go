package geokml

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
	kml "github.com/twpayne/go-kml"
)

// altitudeModes maps the accepted mode names, compared case-insensitively,
// to their canonical KML values.
var altitudeModes = map[string]kml.AltitudeModeEnum{
	"clamp_to_ground":    kml.AltitudeModeClampToGround,
	"relative_to_ground": kml.AltitudeModeRelativeToGround,
	"absolute":           kml.AltitudeModeAbsolute,
}

const altitudeModeNames = "'clamp_to_ground', 'relative_to_ground', 'absolute'."

// Geometry is a validated geometry with its KML placement flags resolved.
type Geometry struct {
	Geometry     orb.Geometry
	Extrude      bool
	Tessellate   bool
	AltitudeMode kml.AltitudeModeEnum
}

// ValidateGeometry coerces a geometry-like value and its loosely-typed flags
// into a Geometry. Topologically invalid but repairable geometries (open
// rings, reversed winding) are fixed silently; any other input type is
// rejected.
func ValidateGeometry(geometry, extrude, tessellate, altitudeMode interface{}) (*Geometry, error) {
	g, ok := geometry.(orb.Geometry)
	if !ok {
		return nil, errors.New(Formatter("``geometry`` must be an orb geometry." +
			backWord("geometry", geometry)))
	}
	ex, err := CoerceBool("extrude", extrude)
	if err != nil {
		return nil, err
	}
	te, err := CoerceBool("tessellate", tessellate)
	if err != nil {
		return nil, err
	}
	mode, err := CoerceAltitudeMode(altitudeMode)
	if err != nil {
		return nil, err
	}
	return &Geometry{
		Geometry:     repairGeometry(g),
		Extrude:      ex,
		Tessellate:   te,
		AltitudeMode: mode,
	}, nil
}

// CoerceBool validates a boolean-like flag. True booleans pass through;
// numeric input is accepted only when it converts to exactly 0 or 1.
func CoerceBool(kward string, value interface{}) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	if f, ok := asFloat(value); ok && (f == 0 || f == 1) {
		return f == 1, nil
	}
	return false, errors.New(Formatter("``"+kward+"`` must be a boolean or coercible to 0/1." +
		backWord(kward, value)))
}

// CoerceAltitudeMode canonicalizes an altitude mode name. Input is
// case-insensitive; anything outside the three recognized modes is rejected
// with the accepted set spelled out.
func CoerceAltitudeMode(value interface{}) (kml.AltitudeModeEnum, error) {
	s, ok := normalizePrimitive(value).(string)
	if !ok {
		return "", errors.New(Formatter("``altitude_mode`` must be a string. Must be one of: "+altitudeModeNames+
			backWord("altitude_mode", value)))
	}
	mode, ok := altitudeModes[strings.ToLower(s)]
	if !ok {
		return "", errors.New(Formatter("``altitude_mode`` must be one of: "+altitudeModeNames+
			backWord("altitude_mode", value)))
	}
	return mode, nil
}

// KMLGeometry encodes the validated geometry as a KML element, applying the
// extrude, tessellate and altitude mode flags to every leaf geometry.
func (g *Geometry) KMLGeometry() kml.Element {
	return g.encode(g.Geometry)
}

func (g *Geometry) encode(geometry orb.Geometry) kml.Element {
	switch v := geometry.(type) {
	case orb.Point:
		return kml.Point(append(g.pointFlags(), kml.Coordinates(coordinate(v)))...)
	case orb.LineString:
		return kml.LineString(append(g.lineFlags(), kml.Coordinates(coordinates(v)...))...)
	case orb.Ring:
		return kml.LinearRing(append(g.lineFlags(), kml.Coordinates(coordinates(orb.LineString(v))...))...)
	case orb.Polygon:
		return g.encodePolygon(v)
	case orb.MultiPoint:
		elements := make([]kml.Element, len(v))
		for i, p := range v {
			elements[i] = g.encode(p)
		}
		return kml.MultiGeometry(elements...)
	case orb.MultiLineString:
		elements := make([]kml.Element, len(v))
		for i, ls := range v {
			elements[i] = g.encode(ls)
		}
		return kml.MultiGeometry(elements...)
	case orb.MultiPolygon:
		elements := make([]kml.Element, len(v))
		for i, p := range v {
			elements[i] = g.encodePolygon(p)
		}
		return kml.MultiGeometry(elements...)
	case orb.Collection:
		elements := make([]kml.Element, len(v))
		for i, member := range v {
			elements[i] = g.encode(member)
		}
		return kml.MultiGeometry(elements...)
	}
	// unreachable: orb.Geometry is implemented by exactly the types above
	return nil
}

func (g *Geometry) encodePolygon(p orb.Polygon) kml.Element {
	children := g.lineFlags()
	for i, ring := range p {
		linearRing := kml.LinearRing(kml.Coordinates(coordinates(orb.LineString(ring))...))
		if i == 0 {
			children = append(children, kml.OuterBoundaryIs(linearRing))
		} else {
			children = append(children, kml.InnerBoundaryIs(linearRing))
		}
	}
	return kml.Polygon(children...)
}

// pointFlags are the placement children of a Point; tessellate does not
// apply to points.
func (g *Geometry) pointFlags() []kml.Element {
	return []kml.Element{
		kml.Extrude(g.Extrude),
		kml.AltitudeMode(g.AltitudeMode),
	}
}

func (g *Geometry) lineFlags() []kml.Element {
	return []kml.Element{
		kml.Extrude(g.Extrude),
		kml.Tessellate(g.Tessellate),
		kml.AltitudeMode(g.AltitudeMode),
	}
}

func coordinate(p orb.Point) kml.Coordinate {
	return kml.Coordinate{Lon: p[0], Lat: p[1]}
}

func coordinates(ls orb.LineString) []kml.Coordinate {
	out := make([]kml.Coordinate, len(ls))
	for i, p := range ls {
		out[i] = coordinate(p)
	}
	return out
}

// repairGeometry closes open rings and normalizes ring winding: exterior
// rings counterclockwise, holes clockwise. Geometries without rings are
// returned untouched.
func repairGeometry(g orb.Geometry) orb.Geometry {
	switch v := g.(type) {
	case orb.Ring:
		return repairRing(v, true)
	case orb.Polygon:
		return repairPolygon(v)
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(v))
		for i, p := range v {
			out[i] = repairPolygon(p)
		}
		return out
	case orb.Collection:
		out := make(orb.Collection, len(v))
		for i, member := range v {
			out[i] = repairGeometry(member)
		}
		return out
	}
	return g
}

func repairPolygon(p orb.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		out[i] = repairRing(r, i == 0)
	}
	return out
}

func repairRing(r orb.Ring, exterior bool) orb.Ring {
	if len(r) == 0 {
		return r
	}
	fixed := make(orb.Ring, len(r))
	copy(fixed, r)
	if !fixed.Closed() {
		fixed = append(fixed, fixed[0])
	}
	_, area := planar.CentroidArea(fixed)
	if (exterior && area < 0) || (!exterior && area > 0) {
		fixed.Reverse()
	}
	return fixed
}

// GeoSeriesToKML validates a series of geometries with scalar-broadcast or
// per-geometry flags and encodes each one as a KML element. A sequence flag
// must have exactly one entry per geometry; a scalar flag applies to all.
func GeoSeriesToKML(geoseries, extrude, tessellate, altitudeMode interface{}) ([]kml.Element, error) {
	geometries, err := validateGeoSeries(geoseries)
	if err != nil {
		return nil, err
	}
	extrudes, err := broadcastFlag("extrude", extrude, len(geometries))
	if err != nil {
		return nil, err
	}
	tessellates, err := broadcastFlag("tessellate", tessellate, len(geometries))
	if err != nil {
		return nil, err
	}
	modes, err := broadcastFlag("altitude_mode", altitudeMode, len(geometries))
	if err != nil {
		return nil, err
	}
	elements := make([]kml.Element, len(geometries))
	for i, g := range geometries {
		validated, err := ValidateGeometry(g, extrudes[i], tessellates[i], modes[i])
		if err != nil {
			return nil, err
		}
		elements[i] = validated.KMLGeometry()
	}
	return elements, nil
}

// validateGeoSeries admits a geometry collection or any sequence made up
// entirely of recognized geometry types.
func validateGeoSeries(geoseries interface{}) ([]orb.Geometry, error) {
	if c, ok := geoseries.(orb.Collection); ok {
		return []orb.Geometry(c), nil
	}
	if DimensionalCount(geoseries) == 1 && IterableSpecificType(geoseries, KindGeometry) {
		items, _ := asSlice(geoseries)
		out := make([]orb.Geometry, len(items))
		for i, item := range items {
			out[i] = item.(orb.Geometry)
		}
		return out, nil
	}
	return nil, errors.New(Formatter("``geoseries`` must be a geometry collection or an iterable of orb geometries." +
		backWord("geoseries", truncateValue(geoseries))))
}

// broadcastFlag expands a scalar flag to every geometry, or checks that a
// sequence flag matches the geometry count. Per-element coercion happens
// later, one geometry at a time.
func broadcastFlag(kward string, value interface{}, n int) ([]interface{}, error) {
	if DimensionalCount(value) == 0 {
		out := make([]interface{}, n)
		for i := range out {
			out[i] = value
		}
		return out, nil
	}
	items, _ := asSlice(value)
	if len(items) != n {
		return nil, errors.New(Formatter("The length of ``"+kward+"`` must be the same as the length of ``geoseries``." +
			backWord(kward, len(items))))
	}
	return items, nil
}
