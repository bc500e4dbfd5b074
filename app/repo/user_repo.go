package repo

import (
	"techwritehub/app/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
}

func (r *UserRepository) UpdatePasswordHash(id uint, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func (r *UserRepository) UpdateProgress(id uint, progress datatypes.JSONMap) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("progress", progress).Error
}

// DeleteCascade removes the user together with every owned tutorial and
// glossary row in a single transaction, so no orphans survive a partial
// failure.
func (r *UserRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Tutorial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Glossary{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
