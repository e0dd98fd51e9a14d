package service

import (
	"context"
	"log/slog"

	"github.com/tripforge/tripforge/internal/metrics"
	"github.com/tripforge/tripforge/internal/model"
)

// SuggestionProvider generates itinerary suggestions for a destination.
// Implementations may fail (network, timeout, quota); callers degrade to
// the fallback set instead of propagating the error.
type SuggestionProvider interface {
	Suggest(ctx context.Context, destination string, dates model.DateRange, preferences string) ([]model.Suggestion, error)
}

// fallbackSuggestions is served whenever the provider is unavailable or
// returns an error. Locations are suffixed with the destination and dated
// to the trip start.
var fallbackSuggestions = []model.Suggestion{
	{Name: "City Walking Tour", Location: "Downtown Area", EstimatedCost: 0},
	{Name: "Local Museum Visit", Location: "Central Museum", EstimatedCost: 25},
	{Name: "Scenic Park Exploration", Location: "Central Park", EstimatedCost: 0},
	{Name: "Historic Landmark Tour", Location: "Old Town", EstimatedCost: 15},
	{Name: "Local Cuisine Experience", Location: "Popular Restaurant District", EstimatedCost: 40},
}

// SuggestionService wraps a provider with the degrade-to-fallback policy.
type SuggestionService struct {
	provider SuggestionProvider
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// NewSuggestionService creates a SuggestionService.
// provider may be nil, in which case only the fallback set is served.
func NewSuggestionService(provider SuggestionProvider, logger *slog.Logger, recorder metrics.Recorder) *SuggestionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &SuggestionService{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
	}
}

// Suggest returns itinerary suggestions for a destination. Provider
// failures are logged and replaced with the generic fallback set; this
// method never returns an error to the caller.
func (s *SuggestionService) Suggest(ctx context.Context, destination string, dates model.DateRange, preferences string) []model.Suggestion {
	if s.provider != nil {
		suggestions, err := s.provider.Suggest(ctx, destination, dates, preferences)
		if err == nil && len(suggestions) > 0 {
			s.metrics.IncSuggestionServed("provider")
			return suggestions
		}
		if err != nil {
			s.logger.Warn("suggestion provider failed, serving fallback",
				slog.String("destination", destination),
				slog.String("error", err.Error()),
			)
		}
	}

	s.metrics.IncSuggestionServed("fallback")
	return s.fallback(destination, dates)
}

func (s *SuggestionService) fallback(destination string, dates model.DateRange) []model.Suggestion {
	out := make([]model.Suggestion, len(fallbackSuggestions))
	copy(out, fallbackSuggestions)
	for i := range out {
		if destination != "" {
			out[i].Location = out[i].Location + ", " + destination
		}
		out[i].Date = dates.Start
	}
	return out
}
