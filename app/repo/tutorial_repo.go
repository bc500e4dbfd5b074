package repo

import (
	"techwritehub/app/models"

	"gorm.io/gorm"
)

type TutorialRepository struct{ db *gorm.DB }

func NewTutorialRepository(db *gorm.DB) *TutorialRepository { return &TutorialRepository{db: db} }

func (r *TutorialRepository) Create(t *models.Tutorial) error { return r.db.Create(t).Error }

// ListByOwner returns the owner's tutorials ordered by id ascending, which is
// insertion order for auto-increment keys.
func (r *TutorialRepository) ListByOwner(ownerID uint) ([]models.Tutorial, error) {
	list := []models.Tutorial{}
	return list, r.db.Where("user_id = ?", ownerID).Order("id ASC").Find(&list).Error
}

func (r *TutorialRepository) FindOwned(ownerID, id uint) (*models.Tutorial, error) {
	var t models.Tutorial
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TutorialRepository) Save(t *models.Tutorial) error { return r.db.Save(t).Error }

// DeleteOwned reports how many rows were removed; zero means the record does
// not exist or belongs to someone else.
func (r *TutorialRepository) DeleteOwned(ownerID, id uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Tutorial{})
	return res.RowsAffected, res.Error
}
