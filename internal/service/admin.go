package service

import (
	"context"
	"fmt"

	"github.com/tripforge/tripforge/internal/model"
	"github.com/tripforge/tripforge/internal/store"
)

// AdminService serves the admin-only read endpoints.
type AdminService struct {
	users store.UserStore
	trips store.TripStore
}

// NewAdminService creates an AdminService.
func NewAdminService(users store.UserStore, trips store.TripStore) *AdminService {
	return &AdminService{users: users, trips: trips}
}

// Stats is the usage summary for the admin dashboard.
type Stats struct {
	TotalUsers         int64    `json:"totalUsers"`
	TotalTrips         int64    `json:"totalTrips"`
	CommonDestinations []string `json:"commonDestinations"`
}

// Stats returns counts plus the three most common destinations.
func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	trips, err := s.trips.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count trips: %w", err)
	}

	destinations, err := s.trips.TopDestinations(ctx, 3)
	if err != nil {
		return nil, fmt.Errorf("top destinations: %w", err)
	}

	return &Stats{
		TotalUsers:         users,
		TotalTrips:         trips,
		CommonDestinations: destinations,
	}, nil
}

// ListUsers returns all users. Password hashes are excluded from JSON via
// the model's tags; nothing further to strip here.
func (s *AdminService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.users.List(ctx)
}

// ListTrips returns every trip, newest first.
func (s *AdminService) ListTrips(ctx context.Context) ([]*model.Trip, error) {
	return s.trips.ListAll(ctx)
}
