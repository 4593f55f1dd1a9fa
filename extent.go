package geokml

import (
	"github.com/golang/geo/s2"
	geo "github.com/paulmach/go.geo"
	"github.com/paulmach/orb"
	kml "github.com/twpayne/go-kml"
)

// The fxtns below derive dataset-level attributes from the coordinates of a
// dataset: the bound of its extent, the center used for the document LookAt,
// and the s2 cell tokens covering the extent.

// ExtentContainer observes coordinates on a channel and retains the growing
// bound of the dataset.
type ExtentContainer struct {
	bound *geo.Bound
	ch    chan orb.Point
	done  chan struct{}
}

// initExtentContainer sets up the container and its bound listener.
func initExtentContainer() *ExtentContainer {
	container := &ExtentContainer{
		ch:   make(chan orb.Point),
		done: make(chan struct{}),
	}
	go container.listen()
	return container
}

// listen grows the bound with every coordinate on the channel until the
// channel closes.
func (c *ExtentContainer) listen() {
	defer close(c.done)
	for pt := range c.ch {
		if c.bound == nil {
			c.bound = geo.NewBound(pt[0], pt[0], pt[1], pt[1])
			continue
		}
		c.bound.Extend(geo.NewPoint(pt[0], pt[1]))
	}
}

// observe feeds the corner coordinates of a geometry's bound to the
// listener; the corners are enough to grow the dataset extent.
func (c *ExtentContainer) observe(g orb.Geometry) {
	b := g.Bound()
	c.ch <- b.Min
	c.ch <- b.Max
}

// Close stops the listener and returns the final bound; nil means the
// dataset carried no coordinates.
func (c *ExtentContainer) Close() *geo.Bound {
	close(c.ch)
	<-c.done
	return c.bound
}

// lookAt builds the document LookAt from the dataset bound, centered on the
// extent with enough range to take the whole dataset in.
func lookAt(bound *geo.Bound) kml.Element {
	sw := bound.SouthWest()
	ne := bound.NorthEast()

	// center of the bound extent
	cx := ne.Lng() - (ne.Lng()-sw.Lng())/2
	cy := ne.Lat() - (ne.Lat()-sw.Lat())/2

	rng := sw.GeoDistanceFrom(ne, true)
	if rng < 1000 {
		rng = 1000
	}
	return kml.LookAt(
		kml.Longitude(cx),
		kml.Latitude(cy),
		kml.Range(rng),
	)
}

// s2Covering finds the s2 tokens that represent the geographic coverage of
// the dataset bound. Tokens are truncated to eight characters, trading
// precision for stable, indexable keys.
func s2Covering(bound *geo.Bound) []string {
	var tokens []string
	if bound == nil {
		return tokens
	}

	sw := bound.SouthWest()
	ne := bound.NorthEast()
	pts := []s2.Point{
		s2.PointFromLatLng(s2.LatLngFromDegrees(ne.Lat(), ne.Lng())),
		s2.PointFromLatLng(s2.LatLngFromDegrees(ne.Lat(), sw.Lng())),
		s2.PointFromLatLng(s2.LatLngFromDegrees(sw.Lat(), sw.Lng())),
		s2.PointFromLatLng(s2.LatLngFromDegrees(sw.Lat(), ne.Lng())),
	}

	loop := s2.LoopFromPoints(pts)
	for _, cellid := range loop.CellUnionBound() {
		token := cellid.ToToken()
		if len(token) > 8 {
			token = token[:8]
		}
		tokens = append(tokens, token)
	}
	return tokens
}
