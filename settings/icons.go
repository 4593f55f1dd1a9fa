// Package settings holds the read-only constant tables used to style KML
// documents: the named color table and the Google Earth icon hrefs.
package settings

import "github.com/twpayne/go-kml/icon"

// IconSet lists icon hrefs usable in IconStyle elements.
// See https://kml4earth.appspot.com/icons.html for the full gallery.
type IconSet struct {
	Airports           string
	Arrows             string
	Bus                string
	Cabs               string
	Camera             string
	Caution            string
	Coffee             string
	Cycling            string
	Dining             string
	Dollar             string
	FireDept           string
	Forbidden          string
	GasStation         string
	HomeGardenBusiness string
	Hospitals          string
	Info               string
	Lodging            string
	Man                string
	Parking            string
	Parks              string
	Phone              string
	Circle             string
	Square             string
	Rail               string
	Shopping           string
	SnackBar           string
	Toilets            string
	Truck              string
	Yen                string
	BluePushpin        string
	GreenPushpin       string
	LightBluePushpin   string
	PinkPushpin        string
	PurplePushpin      string
	RedPushpin         string
	WhitePushpin       string
	YellowPushpin      string
	Church             string
	Tree               string
	Building           string
	RedCross           string
	Hazard             string
	Home               string
	CameraColor        string
	Search             string
	Signal             string
}

// Icons is the default Google Earth icon table.
var Icons = IconSet{
	Airports:           "http://maps.google.com/mapfiles/kml/shapes/airports.png",
	Arrows:             "http://maps.google.com/mapfiles/kml/shapes/arrow.png",
	Bus:                "http://maps.google.com/mapfiles/kml/shapes/bus.png",
	Cabs:               "http://maps.google.com/mapfiles/kml/shapes/cabs.png",
	Camera:             "http://maps.google.com/mapfiles/kml/shapes/camera.png",
	Caution:            "http://maps.google.com/mapfiles/kml/shapes/caution.png",
	Coffee:             "http://maps.google.com/mapfiles/kml/shapes/coffee.png",
	Cycling:            "http://maps.google.com/mapfiles/kml/shapes/cycling.png",
	Dining:             "http://maps.google.com/mapfiles/kml/shapes/dining.png",
	Dollar:             "http://maps.google.com/mapfiles/kml/shapes/dollar.png",
	FireDept:           "http://maps.google.com/mapfiles/kml/shapes/firedept.png",
	Forbidden:          "http://maps.google.com/mapfiles/kml/shapes/forbidden.png",
	GasStation:         "http://maps.google.com/mapfiles/kml/shapes/gas_stations.png",
	HomeGardenBusiness: "http://maps.google.com/mapfiles/kml/shapes/homegardenbusiness.png",
	Hospitals:          "http://maps.google.com/mapfiles/kml/shapes/hospitals.png",
	Info:               "http://maps.google.com/mapfiles/kml/shapes/info-i.png",
	Lodging:            "http://maps.google.com/mapfiles/kml/shapes/lodging.png",
	Man:                "http://maps.google.com/mapfiles/kml/shapes/man.png",
	Parking:            "http://maps.google.com/mapfiles/kml/shapes/parking_lot.png",
	Parks:              "http://maps.google.com/mapfiles/kml/shapes/parks.png",
	Phone:              "http://maps.google.com/mapfiles/kml/shapes/phone.png",
	Circle:             "http://maps.google.com/mapfiles/kml/shapes/placemark_circle.png",
	Square:             "http://maps.google.com/mapfiles/kml/shapes/placemark_square.png",
	Rail:               "http://maps.google.com/mapfiles/kml/shapes/rail.png",
	Shopping:           "http://maps.google.com/mapfiles/kml/shapes/shopping.png",
	SnackBar:           "http://maps.google.com/mapfiles/kml/shapes/snack_bar.png",
	Toilets:            "http://maps.google.com/mapfiles/kml/shapes/toilets.png",
	Truck:              "http://maps.google.com/mapfiles/kml/shapes/truck.png",
	Yen:                "http://maps.google.com/mapfiles/kml/shapes/yen.png",
	BluePushpin:        "http://maps.google.com/mapfiles/kml/pushpin/blue-pushpin.png",
	GreenPushpin:       "http://maps.google.com/mapfiles/kml/pushpin/grn-pushpin.png",
	LightBluePushpin:   "http://maps.google.com/mapfiles/kml/pushpin/ltblu-pushpin.png",
	PinkPushpin:        "http://maps.google.com/mapfiles/kml/pushpin/pink-pushpin.png",
	PurplePushpin:      "http://maps.google.com/mapfiles/kml/pushpin/purple-pushpin.png",
	RedPushpin:         "http://maps.google.com/mapfiles/kml/pushpin/red-pushpin.png",
	WhitePushpin:       "http://maps.google.com/mapfiles/kml/pushpin/wht-pushpin.png",
	YellowPushpin:      "http://maps.google.com/mapfiles/kml/pushpin/ylw-pushpin.png",
	Church:             icon.PaletteHref(2, 11),
	Tree:               icon.PaletteHref(2, 12),
	Building:           icon.PaletteHref(3, 21),
	RedCross:           icon.PaletteHref(3, 46),
	Hazard:             icon.PaletteHref(3, 47),
	Home:               icon.PaletteHref(3, 56),
	CameraColor:        icon.PaletteHref(4, 46),
	Search:             icon.PaletteHref(4, 0),
	Signal:             "http://www.google.com/mapfiles/traffic.png",
}
