package store

import (
	"sync"

	"go-dayflow-hrms/internal/model"
)

type SalaryStore interface {
	FindByUser(userID string) (*model.SalaryStructure, error)
	FindAll() (map[string]model.SalaryStructure, error)
	Update(userID string, s model.SalaryStructure) error
}

type salaryStore struct {
	mu       sync.RWMutex
	salaries map[string]model.SalaryStructure
}

func NewSalaryStore(seed map[string]model.SalaryStructure) SalaryStore {
	s := &salaryStore{salaries: make(map[string]model.SalaryStructure, len(seed))}
	for id, sal := range seed {
		s.salaries[id] = sal
	}
	return s
}

func (s *salaryStore) FindByUser(userID string) (*model.SalaryStructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sal, ok := s.salaries[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &sal, nil
}

func (s *salaryStore) FindAll() (map[string]model.SalaryStructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]model.SalaryStructure, len(s.salaries))
	for id, sal := range s.salaries {
		out[id] = sal
	}
	return out, nil
}

// Update upserts; callers gate on user existence.
func (s *salaryStore) Update(userID string, sal model.SalaryStructure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.salaries[userID] = sal
	return nil
}
