package cache

import (
	"context"
	"slices"
	"sync"

	"github.com/mobil-koeln/irail-cli/internal/models"
)

// StationFetcher loads the full station list from the API
type StationFetcher interface {
	FetchStations(ctx context.Context, lang models.Language) ([]models.Station, error)
}

// Stations holds the station list for the lifetime of the process.
//
// The cache is keyed only by whether it is populated. Once warm it keeps
// returning the language it was first fetched in, even when a different
// language is requested; callers wanting another language pass
// useCache=false.
type Stations struct {
	fetcher StationFetcher

	mu        sync.Mutex
	populated bool
	lang      models.Language
	stations  []models.Station
}

// NewStations creates an empty station cache backed by f
func NewStations(f StationFetcher) *Stations {
	return &Stations{fetcher: f}
}

// Get returns the cached stations when useCache is set and the cache is
// populated. Otherwise it fetches, replaces the cached value, and returns it.
// A failed fetch leaves the previous value in place. Callers get their
// own copy of the list.
func (s *Stations) Get(ctx context.Context, useCache bool, lang models.Language) ([]models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if useCache && s.populated {
		return slices.Clone(s.stations), nil
	}

	stations, err := s.fetcher.FetchStations(ctx, lang)
	if err != nil {
		return nil, err
	}

	if lang == "" {
		lang = models.DefaultLanguage
	}
	s.stations = stations
	s.lang = lang
	s.populated = true

	return slices.Clone(stations), nil
}

// Populated reports whether a fetch has succeeded
func (s *Stations) Populated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.populated
}

// Language returns the language of the cached list, empty when not populated
func (s *Stations) Language() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Names returns the display names of the cached stations
func (s *Stations) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.StationNames(s.stations)
}
