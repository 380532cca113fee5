package entity

import (
	"net/url"
	"strings"

	"github.com/paulmach/orb"
)

// Match is a venue reachable on foot from both origins.
type Match struct {
	PlaceID      string
	Name         string
	Rating       float64
	MinutesFromA float64
	MinutesFromB float64
	Point        orb.Point
	Vicinity     string
	MapsURL      string // Deep link that opens the venue in the maps app.
}

// NewMatch builds a Match for v with the given walking times.
func NewMatch(v Venue, fromA, fromB TravelTime, mapsHost string) Match {
	return Match{
		PlaceID:      v.PlaceID,
		Name:         v.Name,
		Rating:       v.Rating,
		MinutesFromA: fromA.Minutes(),
		MinutesFromB: fromB.Minutes(),
		Point:        v.Point,
		Vicinity:     v.Vicinity,
		MapsURL:      BuildMapsLink(mapsHost, v.Name, v.PlaceID),
	}
}

// BuildMapsLink returns a search URL that resolves to exactly one place:
// https://<host>/maps/search/?api=1&query=<name>&query_place_id=<id>
// Name and id are percent-encoded as query values: spaces become %20 and
// a slash becomes %2F.
func BuildMapsLink(host, name, placeID string) string {
	host = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://"), "/")

	var b strings.Builder
	b.WriteString("https://")
	b.WriteString(host)
	b.WriteString("/maps/search/?api=1&query=")
	b.WriteString(strings.ReplaceAll(url.QueryEscape(name), "+", "%20"))
	b.WriteString("&query_place_id=")
	b.WriteString(url.QueryEscape(placeID))

	return b.String()
}
