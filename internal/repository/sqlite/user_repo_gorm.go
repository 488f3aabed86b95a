package sqlite

import (
	"log"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(user *domain.User) error {
	result := r.db.Create(user)
	if result.Error != nil {
		log.Printf("usuarios: create error: %v", result.Error)
		return result.Error
	}
	return nil
}

func (r *userRepo) FindAll() ([]domain.User, error) {
	var out []domain.User
	if err := r.db.Order("id").Find(&out).Error; err != nil {
		log.Printf("usuarios: find error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *userRepo) Update(id uint64, fields *domain.User) (int64, error) {
	result := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(map[string]any{
		"usuario": fields.Username,
		"pwd":     fields.Password,
		"tipo":    fields.Role,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *userRepo) Delete(id uint64) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&domain.User{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
