package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"techwritehub/app/models"
	"techwritehub/app/repo"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService struct {
	users *repo.UserRepository
	cost  int
}

func NewUserService(users *repo.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, cost: bcryptCost}
}

// Register validates the identity fields, rejects taken usernames/emails and
// stores the new user with a hashed password. A hashing failure aborts before
// anything is written.
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if n := utf8.RuneCountInString(username); n < 3 || n > 32 {
		return nil, fmt.Errorf("%w: username must be between 3 and 32 characters", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password must not be empty", ErrValidation)
	}

	if count, err := s.users.CountByUsername(username); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, fmt.Errorf("%w: username %q is already taken", ErrValidation, username)
	}
	if count, err := s.users.CountByEmail(email); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, fmt.Errorf("%w: email %q is already registered", ErrValidation, email)
	}

	hash, err := hashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, Email: email, PasswordHash: hash, Progress: datatypes.JSONMap{}}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Verify resolves the identifier as a username first, then as an email, and
// compares the password against the stored hash.
func (s *UserService) Verify(identifier, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.users.FindByEmail(identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown user", ErrAuth)
		}
		return nil, err
	}
	if !checkPassword(password, u.PasswordHash) {
		return nil, fmt.Errorf("%w: password mismatch", ErrAuth)
	}
	return u, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return u, err
}

// UpdatePassword re-hashes exactly once and replaces the stored digest.
// Previously issued tokens stay valid until they expire.
func (s *UserService) UpdatePassword(id uint, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password must not be empty", ErrValidation)
	}
	if _, err := s.Get(id); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword, s.cost)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(id, hash)
}

// UpdateProgress replaces the stored progress map verbatim; its contents are
// never interpreted.
func (s *UserService) UpdateProgress(id uint, progress map[string]interface{}) (*models.User, error) {
	u, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = map[string]interface{}{}
	}
	if err := s.users.UpdateProgress(id, datatypes.JSONMap(progress)); err != nil {
		return nil, err
	}
	u.Progress = datatypes.JSONMap(progress)
	return u, nil
}

// Delete removes the account and cascades to every owned tutorial and
// glossary entry.
func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.users.DeleteCascade(id)
}
