// Package geokml converts tables of geometries and attributes into KML
// documents. It validates and normalizes loosely-typed input (color
// specifications, geometry flags, attribute values) into the strict records
// the KML builder consumes; document tree construction and XML rendering
// are delegated to github.com/twpayne/go-kml, geometry representation to
// github.com/paulmach/orb.
package geokml

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// GeoDataFrame is a table of attribute columns plus one geometry column.
// Columns fixes the attribute order; every column in Data holds one value
// per geometry.
type GeoDataFrame struct {
	Columns  []string
	Data     map[string][]interface{}
	Geometry []orb.Geometry

	// accessor cached on first use; a frame is single-owner, no locking
	kml *KMLAccessor
}

// NewGeoDataFrame builds a table from ordered column names, their values and
// a parallel geometry column.
func NewGeoDataFrame(columns []string, data map[string][]interface{}, geometry []orb.Geometry) (*GeoDataFrame, error) {
	if len(geometry) == 0 {
		return nil, errors.New("no valid features in dataset")
	}
	for i, g := range geometry {
		if g == nil {
			return nil, errors.Errorf("geometry column holds a nil geometry at row %d", i)
		}
	}
	for _, name := range columns {
		column, ok := data[name]
		if !ok {
			return nil, errors.Errorf("column %q missing from data", name)
		}
		if len(column) != len(geometry) {
			return nil, errors.New(Formatter("The length of column ``"+name+"`` must be the same as the length of the geometry column." +
				backWord(name, len(column))))
		}
	}
	return &GeoDataFrame{Columns: columns, Data: data, Geometry: geometry}, nil
}

// Len returns the number of rows.
func (gdf *GeoDataFrame) Len() int {
	return len(gdf.Geometry)
}

// KML returns the KML accessor for this frame, created on first access and
// cached for the lifetime of the frame.
func (gdf *GeoDataFrame) KML() *KMLAccessor {
	if gdf.kml == nil {
		gdf.kml = &KMLAccessor{gdf: gdf}
	}
	return gdf.kml
}
