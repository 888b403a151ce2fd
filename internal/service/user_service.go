package service

import (
	"go-dayflow-hrms/internal/model"
	"go-dayflow-hrms/internal/store"
)

type UserService interface {
	Directory() ([]model.User, error)
	ProfileOf(userID string) (*model.User, error)
}

type userService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

// Directory lists every employee in seed order.
func (s *userService) Directory() ([]model.User, error) {
	return s.users.FindAll()
}

func (s *userService) ProfileOf(userID string) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
