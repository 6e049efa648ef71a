package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"paperflow/internal/paper/models"
	"paperflow/pkg/platform/sentinel"
)

// InMemory keeps papers in a map guarded by a RWMutex. It favors clarity over
// performance and backs unit tests and DSN-less development runs.
type InMemory struct {
	mu      sync.RWMutex
	papers  map[string]*models.Paper
	byPaper map[string]string // paperId -> id
}

func NewInMemory() *InMemory {
	return &InMemory{
		papers:  make(map[string]*models.Paper),
		byPaper: make(map[string]string),
	}
}

func (s *InMemory) Create(_ context.Context, p *models.Paper) (*models.Paper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byPaper[p.PaperID]; taken {
		return nil, sentinel.ErrConflict
	}

	stored := p.Clone()
	stored.ID = uuid.NewString()
	s.papers[stored.ID] = stored
	s.byPaper[stored.PaperID] = stored.ID
	return stored.Clone(), nil
}

func (s *InMemory) FindByID(_ context.Context, id string) (*models.Paper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.papers[id]; ok {
		return p.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) FindByPaperID(_ context.Context, paperID string) (*models.Paper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byPaper[paperID]; ok {
		return s.papers[id].Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) List(_ context.Context) ([]*models.Paper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(func(*models.Paper) bool { return true }), nil
}

func (s *InMemory) ListFullySlotted(_ context.Context) ([]*models.Paper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot((*models.Paper).FullySlotted), nil
}

func (s *InMemory) Save(_ context.Context, p *models.Paper) (*models.Paper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.papers[p.ID]; !ok {
		return nil, sentinel.ErrNotFound
	}
	stored := p.Clone()
	s.papers[stored.ID] = stored
	return stored.Clone(), nil
}

// snapshot copies matching papers ordered by paperId so listings are stable
// across runs. Callers must hold at least a read lock.
func (s *InMemory) snapshot(match func(*models.Paper) bool) []*models.Paper {
	out := make([]*models.Paper, 0, len(s.papers))
	for _, p := range s.papers {
		if match(p) {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaperID < out[j].PaperID })
	return out
}
