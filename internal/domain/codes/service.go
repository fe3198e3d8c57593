package codes

import (
	"context"

	"github.com/recordbook/recordbook/internal/platform/api"
)

// Service provides code-option lookups and display-name resolution.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListOptions returns the active options for a category ordered by display order.
func (s *Service) ListOptions(ctx context.Context, category string) ([]*Option, error) {
	if category == "" {
		return nil, api.Validation("category")
	}
	return s.repo.ListByCategory(ctx, category)
}

// ResolveName translates a raw code into its configured display name. An empty
// code resolves to the empty string; a code with no active option resolves to
// the code itself. Lookup misses are never errors.
func (s *Service) ResolveName(ctx context.Context, category, code string) string {
	if code == "" {
		return ""
	}
	o, err := s.repo.GetActive(ctx, category, code)
	if err != nil {
		return code
	}
	return o.Name
}

// Resolver caches ResolveName results for the duration of one request so that
// repeated lookups of the same {category, code} pair hit the store once.
type Resolver struct {
	svc   *Service
	cache map[string]string
}

func (s *Service) NewResolver() *Resolver {
	return &Resolver{svc: s, cache: make(map[string]string)}
}

func (r *Resolver) ResolveName(ctx context.Context, category, code string) string {
	if code == "" {
		return ""
	}
	key := category + "/" + code
	if name, ok := r.cache[key]; ok {
		return name
	}
	name := r.svc.ResolveName(ctx, category, code)
	r.cache[key] = name
	return name
}
