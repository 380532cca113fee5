package presenter

import (
	"fmt"

	"meetup/internal/domain/entity"
	"meetup/internal/usecase"
	"meetup/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Marker colours of the map view.
const (
	ColorOriginA = "#1f77b4"
	ColorOriginB = "#2ca02c"
	ColorVenue   = "#d62728"

	KindOrigin = "origin"
	KindVenue  = "venue"
)

// NewMatchFeatureCollection renders both origins and every match as points.
// The collection carries a bbox and a "center" member so a map client can
// frame all markers without computing anything.
func NewMatchFeatureCollection(result *usecase.MatchResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	points := make(orb.MultiPoint, 0, len(result.Matches)+2)

	fc.Append(originFeature("A", result.OriginA, ColorOriginA))
	fc.Append(originFeature("B", result.OriginB, ColorOriginB))
	points = append(points, result.OriginA.Point, result.OriginB.Point)

	for _, m := range result.Matches {
		fc.Append(venueFeature(m))
		points = append(points, m.Point)
	}

	bound := points.Bound()
	center := bound.Center()
	fc.BBox = geojson.NewBBox(bound)
	fc.ExtraMembers = geojson.Properties{
		"center": []float64{center.Lon(), center.Lat()},
	}

	return fc
}

func originFeature(label string, loc entity.Location, color string) *geojson.Feature {
	f := geojson.NewFeature(loc.Point)
	f.Properties["kind"] = KindOrigin
	f.Properties["label"] = label
	f.Properties["name"] = loc.DisplayName()
	f.Properties["color"] = color
	f.Properties["tooltip"] = fmt.Sprintf("Location %s: %s", label, loc.DisplayName())

	return f
}

func venueFeature(m entity.Match) *geojson.Feature {
	fromA := util.RoundTo(m.MinutesFromA, minutesDecimals)
	fromB := util.RoundTo(m.MinutesFromB, minutesDecimals)

	f := geojson.NewFeature(m.Point)
	f.ID = m.PlaceID
	f.Properties["kind"] = KindVenue
	f.Properties["name"] = m.Name
	f.Properties["rating"] = m.Rating
	f.Properties["minutes_from_a"] = fromA
	f.Properties["minutes_from_b"] = fromB
	f.Properties["maps_url"] = m.MapsURL
	f.Properties["color"] = ColorVenue
	f.Properties["tooltip"] = fmt.Sprintf("%s (%.1f) A: %.1f min, B: %.1f min", m.Name, m.Rating, fromA, fromB)

	return f
}
