package guests

import (
	"context"
	"errors"
	"fmt"

	"seatwise/internal/shared/constants"
	"seatwise/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGuestNotFound = errors.New("guest not found")

// Service exposes read-only guest lookups to the seating features.
type Service interface {
	GetByWedding(ctx context.Context, weddingID uuid.UUID) ([]Guest, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Guest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Guest, error)

	// KnownIDs reports which of the given ids exist in the guest list
	KnownIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

// SetCacheService enables guest-list caching when Redis is available
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetByWedding(ctx context.Context, weddingID uuid.UUID) ([]Guest, error) {
	if s.cacheService != nil {
		var cached []Guest
		key := constants.GuestsKey(weddingID.String())
		err := s.cacheService.GetOrSet(ctx, key, constants.TTL_GUEST_LIST, func() (interface{}, error) {
			return s.repo.GetByWedding(ctx, weddingID)
		}, &cached)
		if err == nil {
			return cached, nil
		}
		// fall through to the repository on cache failure
	}

	return s.repo.GetByWedding(ctx, weddingID)
}

func (s *service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Guest, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Guest, error) {
	guest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest: %w", err)
	}
	return guest, nil
}

func (s *service) KnownIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	found, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve guest ids: %w", err)
	}

	known := make(map[uuid.UUID]bool, len(found))
	for _, g := range found {
		known[g.ID] = true
	}
	return known, nil
}
