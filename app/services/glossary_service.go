package services

import (
	"errors"
	"fmt"
	"strings"

	"techwritehub/app/models"
	"techwritehub/app/repo"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GlossaryService struct{ entries *repo.GlossaryRepository }

func NewGlossaryService(entries *repo.GlossaryRepository) *GlossaryService {
	return &GlossaryService{entries: entries}
}

type GlossaryUpdate struct {
	Term       *string
	Definition *string
	Tags       *[]string
}

func (s *GlossaryService) Create(ownerID uint, term, definition string, tags []string) (*models.Glossary, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("%w: term must not be empty", ErrValidation)
	}
	if strings.TrimSpace(definition) == "" {
		return nil, fmt.Errorf("%w: definition must not be empty", ErrValidation)
	}
	if count, err := s.entries.CountByTerm(term); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, fmt.Errorf("%w: term %q already exists", ErrValidation, term)
	}
	if tags == nil {
		tags = []string{}
	}
	g := &models.Glossary{Term: term, Definition: definition, Tags: datatypes.NewJSONSlice(tags), UserID: ownerID}
	if err := s.entries.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GlossaryService) List(ownerID uint) ([]models.Glossary, error) {
	return s.entries.ListByOwner(ownerID)
}

func (s *GlossaryService) Get(ownerID, id uint) (*models.Glossary, error) {
	g, err := s.entries.FindOwned(ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: glossary entry %d", ErrNotFound, id)
	}
	return g, err
}

func (s *GlossaryService) Update(ownerID, id uint, upd GlossaryUpdate) (*models.Glossary, error) {
	g, err := s.Get(ownerID, id)
	if err != nil {
		return nil, err
	}
	if upd.Term != nil && *upd.Term != g.Term {
		if strings.TrimSpace(*upd.Term) == "" {
			return nil, fmt.Errorf("%w: term must not be empty", ErrValidation)
		}
		if count, err := s.entries.CountByTerm(*upd.Term); err != nil {
			return nil, err
		} else if count > 0 {
			return nil, fmt.Errorf("%w: term %q already exists", ErrValidation, *upd.Term)
		}
		g.Term = *upd.Term
	}
	if upd.Definition != nil {
		if strings.TrimSpace(*upd.Definition) == "" {
			return nil, fmt.Errorf("%w: definition must not be empty", ErrValidation)
		}
		g.Definition = *upd.Definition
	}
	if upd.Tags != nil {
		g.Tags = datatypes.NewJSONSlice(*upd.Tags)
	}
	if err := s.entries.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GlossaryService) Delete(ownerID, id uint) error {
	affected, err := s.entries.DeleteOwned(ownerID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: glossary entry %d", ErrNotFound, id)
	}
	return nil
}
