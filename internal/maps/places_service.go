package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// ResolvedPlace is a simplified Find Place result used to enrich a
// recommendation with a canonical name and address.
type ResolvedPlace struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Resolve looks up a free-text place name and returns the best candidate.
// Callers treat failures as non-fatal: a recommendation is still shown even
// when the lookup yields nothing.
func (s *PlacesService) Resolve(ctx context.Context, query string) (*ResolvedPlace, error) {
	r := &maps.FindPlaceFromTextRequest{
		Input:     query,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields: []maps.PlaceSearchFieldMask{
			maps.PlaceSearchFieldMaskName,
			maps.PlaceSearchFieldMaskFormattedAddress,
			maps.PlaceSearchFieldMaskGeometry,
		},
	}

	resp, err := s.client.FindPlaceFromText(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no place candidates for %q", query)
	}

	best := resp.Candidates[0]
	return &ResolvedPlace{
		Name:    best.Name,
		Address: best.FormattedAddress,
		Lat:     best.Geometry.Location.Lat,
		Lng:     best.Geometry.Location.Lng,
	}, nil
}
