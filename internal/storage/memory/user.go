package memory

import (
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
)

func (s *Storage) CreateUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usersByEmail[user.Email]; ok {
		return &errors.ConflictError{Message: "User with this email already exists"}
	}
	s.users[user.Id] = cloneUser(user)
	s.usersByEmail[user.Email] = user.Id
	return nil
}

func (s *Storage) UserByEmail(email domain.Email) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, &errors.NotFoundError{Message: "User not found"}
	}
	return cloneUser(s.users[id]), nil
}

func (s *Storage) UserById(id domain.UserId) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, &errors.NotFoundError{Message: "User not found"}
	}
	return cloneUser(user), nil
}
