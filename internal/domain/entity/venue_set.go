package entity

// VenueSet is an insertion-ordered set of venues keyed by PlaceID.
// Adding a venue whose PlaceID is already present replaces its fields but
// keeps the position of the first occurrence.
type VenueSet struct {
	index  map[string]int
	venues []Venue
}

// NewVenueSet creates an empty set.
func NewVenueSet() *VenueSet {
	return &VenueSet{index: make(map[string]int)}
}

// Add inserts v, or overwrites the venue already stored under v.PlaceID.
// It reports whether v was new.
func (s *VenueSet) Add(v Venue) bool {
	if i, ok := s.index[v.PlaceID]; ok {
		s.venues[i] = v

		return false
	}

	s.index[v.PlaceID] = len(s.venues)
	s.venues = append(s.venues, v)

	return true
}

// Len returns the number of distinct venues.
func (s *VenueSet) Len() int {
	return len(s.venues)
}

// Venues returns a copy of the venues in first-occurrence order.
func (s *VenueSet) Venues() []Venue {
	out := make([]Venue, len(s.venues))
	copy(out, s.venues)

	return out
}

// Filter returns the venues, in order, for which keep returns true.
func (s *VenueSet) Filter(keep func(Venue) bool) []Venue {
	out := make([]Venue, 0, len(s.venues))
	for _, v := range s.venues {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

// MergeVenues folds any number of venue lists into one set.
// Later duplicates win on fields, the first occurrence wins on order.
func MergeVenues(lists ...[]Venue) *VenueSet {
	set := NewVenueSet()
	for _, list := range lists {
		for _, v := range list {
			set.Add(v)
		}
	}

	return set
}
