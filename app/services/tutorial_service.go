package services

import (
	"errors"
	"fmt"
	"strings"

	"techwritehub/app/models"
	"techwritehub/app/repo"

	"gorm.io/gorm"
)

type TutorialService struct{ tutorials *repo.TutorialRepository }

func NewTutorialService(tutorials *repo.TutorialRepository) *TutorialService {
	return &TutorialService{tutorials: tutorials}
}

// TutorialUpdate carries a partial update; nil fields are left unchanged.
type TutorialUpdate struct {
	Title     *string
	Content   *string
	Completed *bool
}

func (s *TutorialService) Create(ownerID uint, title, content string, completed bool) (*models.Tutorial, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	t := &models.Tutorial{Title: title, Content: content, Completed: completed, UserID: ownerID}
	if err := s.tutorials.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TutorialService) List(ownerID uint) ([]models.Tutorial, error) {
	return s.tutorials.ListByOwner(ownerID)
}

func (s *TutorialService) Get(ownerID, id uint) (*models.Tutorial, error) {
	t, err := s.tutorials.FindOwned(ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: tutorial %d", ErrNotFound, id)
	}
	return t, err
}

func (s *TutorialService) Update(ownerID, id uint, upd TutorialUpdate) (*models.Tutorial, error) {
	t, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		t.Title = *upd.Title
	}
	if upd.Content != nil {
		if strings.TrimSpace(*upd.Content) == "" {
			return nil, fmt.Errorf("%w: content must not be empty", ErrValidation)
		}
		t.Content = *upd.Content
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	if err := s.tutorials.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TutorialService) Delete(ownerID, id uint) error {
	affected, err := s.tutorials.DeleteOwned(ownerID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: tutorial %d", ErrNotFound, id)
	}
	return nil
}
