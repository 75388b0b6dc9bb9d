package exclusion

import (
	"context"
	"fmt"

	"github.com/umputun/exclude-pages/pkg/domain"
)

// Service filters page listings and maintains the excluded set in the store
type Service struct {
	store Store
}

// NewService makes a service on top of the store
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Filter returns pages not in excluded, keeping their order. For admin listings pages are returned unchanged.
// The input slice is never modified.
func Filter(pages []domain.Page, excluded Set, admin bool) []domain.Page {
	if admin {
		return pages
	}
	res := make([]domain.Page, 0, len(pages))
	for _, p := range pages {
		if excluded.Has(p.ID) {
			continue
		}
		res = append(res, p)
	}
	return res
}

// FilterPages applies Filter with the currently stored set. Admin listings don't touch the store.
func (s *Service) FilterPages(ctx context.Context, pages []domain.Page, admin bool) ([]domain.Page, error) {
	if admin {
		return pages, nil
	}
	excluded, err := s.store.GetExcluded(ctx)
	if err != nil {
		return nil, fmt.Errorf("filter pages: %w", err)
	}
	return Filter(pages, excluded, false), nil
}

// Excluded returns the currently stored set
func (s *Service) Excluded(ctx context.Context) (Set, error) {
	return s.store.GetExcluded(ctx)
}

// IsExcluded checks if the page is excluded, pageID 0 (not created yet) is never excluded
func (s *Service) IsExcluded(ctx context.Context, pageID int64) (bool, error) {
	if pageID == 0 {
		return false, nil
	}
	excluded, err := s.store.GetExcluded(ctx)
	if err != nil {
		return false, err
	}
	return excluded.Has(pageID), nil
}

// SetPageExcluded adds or removes the page in the stored set. The set is written back even if nothing changed.
// Read and write are not atomic, concurrent updates of different pages may lose one of them.
func (s *Service) SetPageExcluded(ctx context.Context, pageID int64, exclude bool) error {
	excluded, err := s.store.GetExcluded(ctx)
	if err != nil {
		return fmt.Errorf("update page %d exclusion: %w", pageID, err)
	}

	if exclude {
		excluded.Add(pageID)
	} else {
		excluded.Remove(pageID)
	}

	if err := s.store.SetExcluded(ctx, excluded); err != nil {
		return fmt.Errorf("update page %d exclusion: %w", pageID, err)
	}
	return nil
}
