package geokml

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	kml "github.com/twpayne/go-kml"
)

// Data is a single ExtendedData record: a field name, its stringified value
// and an optional display label. A nil Value stays null instead of becoming
// the string "<nil>". Records live only for the duration of one conversion.
type Data struct {
	Name        string
	Value       *string
	DisplayName string
}

// NewData stringifies one field value into a Data record. Functions and
// channels have no sensible string form and are rejected; everything else
// formats with %v.
func NewData(name string, value interface{}, displayName string) (Data, error) {
	if value == nil {
		return Data{Name: name, DisplayName: displayName}, nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Func, reflect.Chan:
		return Data{}, errors.New(Formatter("Failed to parse the fields." +
			backWord(name, value)))
	}
	s := fmt.Sprintf("%v", value)
	return Data{Name: name, Value: &s, DisplayName: displayName}, nil
}

// KMLData encodes the record as a Data element.
func (d Data) KMLData() kml.Element {
	children := []kml.Element{kml.Name(d.Name)}
	if d.DisplayName != "" {
		children = append(children, kml.DisplayName(d.DisplayName))
	}
	if d.Value != nil {
		children = append(children, kml.Value(*d.Value))
	}
	return kml.Data(children...)
}

// ExtendedDataByRow converts every attribute row of the table into an
// ExtendedData element, one per row in row order. displayNames, when given,
// must carry exactly one label per attribute column; the length is checked
// before any record is built.
func ExtendedDataByRow(gdf *GeoDataFrame, displayNames []string) ([]kml.Element, error) {
	if displayNames != nil && len(displayNames) != len(gdf.Columns) {
		return nil, errors.New(Formatter("The length of the fields must be the same as the number of columns in the DataFrame." +
			backWord("display_names", displayNames)))
	}
	if displayNames == nil {
		displayNames = make([]string, len(gdf.Columns))
	}
	out := make([]kml.Element, gdf.Len())
	for i := 0; i < gdf.Len(); i++ {
		records := make([]kml.Element, 0, len(gdf.Columns))
		for j, column := range gdf.Columns {
			record, err := NewData(column, gdf.Data[column][i], displayNames[j])
			if err != nil {
				return nil, err
			}
			records = append(records, record.KMLData())
		}
		out[i] = kml.ExtendedData(records...)
	}
	return out, nil
}
