package main

import (
	"bytes"
	"strings"
	"testing"

	"meetup/internal/domain/entity"
	"meetup/internal/usecase"

	"golang.org/x/crypto/bcrypt"
)

func TestSplitCuisines(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: nil},
		{raw: "  ", want: nil},
		{raw: "Thai", want: []string{"Thai"}},
		{raw: "Thai, Pizza ,,Middle Eastern", want: []string{"Thai", "Pizza", "Middle Eastern"}},
	}

	for _, tt := range tests {
		got := splitCuisines(tt.raw)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Fatalf("splitCuisines(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestSearchOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		rating  int
		wantErr bool
	}{
		{name: "lower bound", minutes: 5, rating: 0},
		{name: "upper bound", minutes: 30, rating: 5},
		{name: "minutes too small", minutes: 4, rating: 4, wantErr: true},
		{name: "minutes too large", minutes: 200, rating: 4, wantErr: true},
		{name: "rating too large", minutes: 15, rating: 6, wantErr: true},
		{name: "negative rating", minutes: 15, rating: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := searchOptions{OriginA: "A", OriginB: "B", MaxMinutes: tt.minutes, MinRating: tt.rating}.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrintMatches(t *testing.T) {
	result := &usecase.MatchResult{
		OriginA: *entity.NewLocation("Union Square", 40.7359, -73.9911, "Union Square, New York"),
		OriginB: *entity.NewLocation("Madison Square Park", 40.742, -73.988, ""),
		Matches: []entity.Match{
			{Name: "Cafe Uno", Rating: 4.5, MinutesFromA: 6, MinutesFromB: 9.5, MapsURL: "https://www.google.com/maps/search/?api=1&query=Cafe%20Uno&query_place_id=p1"},
		},
	}

	var buf bytes.Buffer
	if err := printMatches(&buf, result, 15); err != nil {
		t.Fatalf("printMatches returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"A: Union Square, New York", "B: Madison Square Park", "MINS FROM A", "Cafe Uno", "4.5", "9.5", "query_place_id=p1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMatches_NoMatches(t *testing.T) {
	result := &usecase.MatchResult{RatedCount: 7}

	var buf bytes.Buffer
	if err := printMatches(&buf, result, 10); err != nil {
		t.Fatalf("printMatches returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "No venues within 10 walking minutes") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "NAME") {
		t.Fatalf("no-match output must not print a table header:\n%s", buf.String())
	}
}

func TestRunHashPassword(t *testing.T) {
	var buf bytes.Buffer
	if err := runHashPassword(&buf, "open sesame"); err != nil {
		t.Fatalf("runHashPassword returned error: %v", err)
	}

	hash := strings.TrimSpace(buf.String())
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("open sesame")); err != nil {
		t.Fatalf("printed hash does not verify: %v", err)
	}
}
