package store

import (
	"strings"
	"sync"

	"go-dayflow-hrms/internal/model"
)

type UserStore interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id string) (*model.User, error)
	Create(user *model.User) error
	FindAll() ([]model.User, error)
}

type userStore struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserStore(seed []model.User) UserStore {
	s := &userStore{}
	s.users = append(s.users, seed...)
	return s
}

// FindByEmail matches case-insensitively.
func (s *userStore) FindByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *userStore) FindByID(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *userStore) Create(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *user)
	return nil
}

// FindAll returns users in insertion order.
func (s *userStore) FindAll() ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}
