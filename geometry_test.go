package geokml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kml "github.com/twpayne/go-kml"
)

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    bool
		wantErr bool
	}{
		{"true", true, true, false},
		{"false", false, false, false},
		{"one", 1, true, false},
		{"zero", 0, false, false},
		{"float one", 1.0, true, false},
		{"float zero", 0.0, false, false},
		{"int64 one", int64(1), true, false},
		{"two", 2, false, true},
		{"half", 0.5, false, true},
		{"yes", "yes", false, true},
		{"nil", nil, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceBool("extrude", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "extrude")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceAltitudeMode(t *testing.T) {
	mode, err := CoerceAltitudeMode("clamp_to_ground")
	require.NoError(t, err)
	assert.Equal(t, kml.AltitudeModeClampToGround, mode)

	// input is case-insensitive, output canonical
	mode, err = CoerceAltitudeMode("Clamp_To_Ground")
	require.NoError(t, err)
	assert.Equal(t, kml.AltitudeModeClampToGround, mode)

	mode, err = CoerceAltitudeMode("RELATIVE_TO_GROUND")
	require.NoError(t, err)
	assert.Equal(t, kml.AltitudeModeRelativeToGround, mode)

	mode, err = CoerceAltitudeMode("absolute")
	require.NoError(t, err)
	assert.Equal(t, kml.AltitudeModeAbsolute, mode)

	_, err = CoerceAltitudeMode("space")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clamp_to_ground")
	assert.Contains(t, err.Error(), "relative_to_ground")
	assert.Contains(t, err.Error(), "absolute")

	_, err = CoerceAltitudeMode(3)
	assert.Error(t, err)
}

func TestValidateGeometry(t *testing.T) {
	g, err := ValidateGeometry(orb.Point{140.0, 40.0}, true, true, "clamp_to_ground")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{140.0, 40.0}, g.Geometry)
	assert.True(t, g.Extrude)
	assert.True(t, g.Tessellate)
	assert.Equal(t, kml.AltitudeModeClampToGround, g.AltitudeMode)

	// flags coerce from 0/1
	g, err = ValidateGeometry(orb.Point{0, 0}, 1, 0, "absolute")
	require.NoError(t, err)
	assert.True(t, g.Extrude)
	assert.False(t, g.Tessellate)

	_, err = ValidateGeometry("not a geometry", true, true, "absolute")
	assert.Error(t, err)
	_, err = ValidateGeometry(orb.Point{0, 0}, 2, true, "absolute")
	assert.Error(t, err)
	_, err = ValidateGeometry(orb.Point{0, 0}, true, true, "space")
	assert.Error(t, err)
}

func TestValidateGeometryRepairsRings(t *testing.T) {
	// open, clockwise exterior ring: closed and rewound silently
	broken := orb.Polygon{
		{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
	}
	g, err := ValidateGeometry(broken, true, true, "clamp_to_ground")
	require.NoError(t, err)

	repaired, ok := g.Geometry.(orb.Polygon)
	require.True(t, ok)
	ring := repaired[0]
	assert.True(t, ring.Closed())
	_, area := planar.CentroidArea(ring)
	assert.True(t, area > 0, "exterior ring must be counterclockwise")

	// the input is left untouched
	assert.Len(t, broken[0], 4)
}

func TestKMLGeometryEncoding(t *testing.T) {
	g, err := ValidateGeometry(orb.Point{140.0, 40.0}, true, true, "clamp_to_ground")
	require.NoError(t, err)
	out, err := xml.Marshal(g.KMLGeometry())
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<Point>")
	assert.Contains(t, s, "<extrude>1</extrude>")
	assert.Contains(t, s, "<altitudeMode>clampToGround</altitudeMode>")
	assert.Contains(t, s, "<coordinates>140,40</coordinates>")
	assert.NotContains(t, s, "<tessellate>", "tessellate does not apply to points")

	line, err := ValidateGeometry(orb.LineString{{0, 0}, {1, 1}}, false, true, "absolute")
	require.NoError(t, err)
	out, err = xml.Marshal(line.KMLGeometry())
	require.NoError(t, err)
	s = string(out)
	assert.Contains(t, s, "<LineString>")
	assert.Contains(t, s, "<tessellate>1</tessellate>")
	assert.Contains(t, s, "<altitudeMode>absolute</altitudeMode>")

	polygon, err := ValidateGeometry(orb.Polygon{
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		{{0.25, 0.25}, {0.25, 0.75}, {0.75, 0.75}, {0.75, 0.25}, {0.25, 0.25}},
	}, true, true, "clamp_to_ground")
	require.NoError(t, err)
	out, err = xml.Marshal(polygon.KMLGeometry())
	require.NoError(t, err)
	s = string(out)
	assert.Contains(t, s, "<Polygon>")
	assert.Contains(t, s, "<outerBoundaryIs>")
	assert.Contains(t, s, "<innerBoundaryIs>")

	multi, err := ValidateGeometry(orb.MultiPoint{{0, 0}, {1, 1}}, true, true, "clamp_to_ground")
	require.NoError(t, err)
	out, err = xml.Marshal(multi.KMLGeometry())
	require.NoError(t, err)
	assert.Contains(t, string(out), "<MultiGeometry>")

	collection, err := ValidateGeometry(orb.Collection{
		orb.Point{0, 0},
		orb.LineString{{0, 0}, {1, 1}},
	}, true, true, "clamp_to_ground")
	require.NoError(t, err)
	out, err = xml.Marshal(collection.KMLGeometry())
	require.NoError(t, err)
	s = string(out)
	assert.Contains(t, s, "<MultiGeometry>")
	assert.Contains(t, s, "<Point>")
	assert.Contains(t, s, "<LineString>")
}

func TestGeoSeriesToKML(t *testing.T) {
	series := []orb.Geometry{
		orb.Point{140.0, 40.0},
		orb.Point{140.1, 40.1},
	}

	// scalar flags broadcast to every geometry
	elements, err := GeoSeriesToKML(series, true, true, "clamp_to_ground")
	require.NoError(t, err)
	assert.Len(t, elements, 2)

	// per-geometry flags of matching length
	elements, err = GeoSeriesToKML(series, []bool{true, false}, false, []string{"absolute", "relative_to_ground"})
	require.NoError(t, err)
	require.Len(t, elements, 2)
	out, err := xml.Marshal(elements[1])
	require.NoError(t, err)
	assert.Contains(t, string(out), "relativeToGround")

	// a geometry collection is a recognized container
	elements, err = GeoSeriesToKML(orb.Collection{orb.Point{0, 0}}, true, true, "absolute")
	require.NoError(t, err)
	assert.Len(t, elements, 1)
}

func TestGeoSeriesToKMLFailures(t *testing.T) {
	series := []orb.Geometry{orb.Point{0, 0}, orb.Point{1, 1}}

	// sequence flag length must equal the geometry count
	_, err := GeoSeriesToKML(series, []bool{true}, true, "clamp_to_ground")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extrude")

	_, err = GeoSeriesToKML(series, true, true, []string{"absolute"})
	assert.Error(t, err)

	// not a geometry series
	_, err = GeoSeriesToKML("geoseries", true, true, "clamp_to_ground")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geoseries")

	_, err = GeoSeriesToKML([]interface{}{orb.Point{0, 0}, "x"}, true, true, "clamp_to_ground")
	assert.Error(t, err)

	// long offending values are truncated in the message
	_, err = GeoSeriesToKML([]int{1, 2, 3, 4, 5, 6, 7, 8}, true, true, "clamp_to_ground")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(8 items)")
	assert.False(t, strings.Contains(err.Error(), "8]"), "tail of the sequence must not appear")
}
