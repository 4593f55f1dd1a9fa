package geokml

import (
	"sort"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// FromGeoJSON builds a GeoDataFrame from a GeoJSON feature collection.
// Feature properties become attribute columns, in first-seen order with the
// keys of each feature visited alphabetically; a feature missing a property
// gets a null value in that column.
func FromGeoJSON(raw []byte) (*GeoDataFrame, error) {
	collection, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal feature collection")
	}
	if len(collection.Features) == 0 {
		return nil, errors.New("no features to parse")
	}

	var columns []string
	seen := make(map[string]bool)
	for _, feature := range collection.Features {
		keys := make([]string, 0, len(feature.Properties))
		for k := range feature.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}

	data := make(map[string][]interface{}, len(columns))
	geometry := make([]orb.Geometry, 0, len(collection.Features))
	for _, feature := range collection.Features {
		if feature.Geometry == nil {
			return nil, errors.New("feature has no geometry")
		}
		g, err := geojsonGeometry(feature.Geometry)
		if err != nil {
			return nil, err
		}
		geometry = append(geometry, g)
		for _, column := range columns {
			data[column] = append(data[column], feature.Properties[column])
		}
	}
	return NewGeoDataFrame(columns, data, geometry)
}

// geojsonGeometry converts one go.geojson geometry to its orb counterpart.
func geojsonGeometry(g *geojson.Geometry) (orb.Geometry, error) {
	switch {
	case g.IsPoint():
		return orbPoint(g.Point)
	case g.IsMultiPoint():
		points := make(orb.MultiPoint, len(g.MultiPoint))
		for i, c := range g.MultiPoint {
			p, err := orbPoint(c)
			if err != nil {
				return nil, err
			}
			points[i] = p
		}
		return points, nil
	case g.IsLineString():
		return orbLineString(g.LineString)
	case g.IsMultiLineString():
		lines := make(orb.MultiLineString, len(g.MultiLineString))
		for i, coords := range g.MultiLineString {
			ls, err := orbLineString(coords)
			if err != nil {
				return nil, err
			}
			lines[i] = ls
		}
		return lines, nil
	case g.IsPolygon():
		return orbPolygon(g.Polygon)
	case g.IsMultiPolygon():
		polygons := make(orb.MultiPolygon, len(g.MultiPolygon))
		for i, coords := range g.MultiPolygon {
			p, err := orbPolygon(coords)
			if err != nil {
				return nil, err
			}
			polygons[i] = p
		}
		return polygons, nil
	case g.IsCollection():
		members := make(orb.Collection, len(g.Geometries))
		for i, member := range g.Geometries {
			converted, err := geojsonGeometry(member)
			if err != nil {
				return nil, err
			}
			members[i] = converted
		}
		return members, nil
	}
	return nil, errors.Errorf("unsupported geometry of type %v", g.Type)
}

func orbPoint(c []float64) (orb.Point, error) {
	if len(c) < 2 {
		return orb.Point{}, errors.New("missing x, y")
	}
	return orb.Point{c[0], c[1]}, nil
}

func orbLineString(coords [][]float64) (orb.LineString, error) {
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		p, err := orbPoint(c)
		if err != nil {
			return nil, err
		}
		ls[i] = p
	}
	return ls, nil
}

func orbPolygon(coords [][][]float64) (orb.Polygon, error) {
	polygon := make(orb.Polygon, len(coords))
	for i, ring := range coords {
		ls, err := orbLineString(ring)
		if err != nil {
			return nil, err
		}
		polygon[i] = orb.Ring(ls)
	}
	return polygon, nil
}
