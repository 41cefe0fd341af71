package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bookcatalog/internal/logger"
)

// ErrNotLoaded is returned before the dataset has been loaded.
var ErrNotLoaded = errors.New("catalog not loaded")

// Service loads the dataset once from a Source and hands out controllers over it.
type Service struct {
	src      Source
	pageSize int

	mu      sync.RWMutex
	catalog *Catalog
}

func NewService(src Source, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{src: src, pageSize: pageSize}
}

// Load reads the dataset. Calling it again replaces the dataset for
// controllers created afterwards; existing controllers keep theirs.
func (s *Service) Load(ctx context.Context) error {
	defer logger.Track(ctx, "catalog load")()

	c, err := s.src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()

	logger.For(ctx).WithField("items", c.Len()).Info("catalog loaded")
	return nil
}

func (s *Service) Catalog() (*Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, ErrNotLoaded
	}
	return s.catalog, nil
}

func (s *Service) Ready() bool {
	_, err := s.Catalog()
	return err == nil
}

func (s *Service) PageSize() int {
	return s.pageSize
}

func (s *Service) NewController() (*Controller, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return NewController(c, s.pageSize), nil
}
