package repo

import (
	"techwritehub/app/models"

	"gorm.io/gorm"
)

type GlossaryRepository struct{ db *gorm.DB }

func NewGlossaryRepository(db *gorm.DB) *GlossaryRepository { return &GlossaryRepository{db: db} }

func (r *GlossaryRepository) Create(g *models.Glossary) error { return r.db.Create(g).Error }

func (r *GlossaryRepository) ListByOwner(ownerID uint) ([]models.Glossary, error) {
	list := []models.Glossary{}
	return list, r.db.Where("user_id = ?", ownerID).Order("id ASC").Find(&list).Error
}

func (r *GlossaryRepository) FindOwned(ownerID, id uint) (*models.Glossary, error) {
	var g models.Glossary
	if err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// CountByTerm counts across all owners; glossary terms are unique globally.
func (r *GlossaryRepository) CountByTerm(term string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Glossary{}).Where("term = ?", term).Count(&count).Error
}

func (r *GlossaryRepository) Save(g *models.Glossary) error { return r.db.Save(g).Error }

func (r *GlossaryRepository) DeleteOwned(ownerID, id uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Glossary{})
	return res.RowsAffected, res.Error
}
