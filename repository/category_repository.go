package repository

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// List optionally narrows to one restaurant's categories.
func (r *CategoryRepository) List(restaurantID *uint) ([]entity.Category, error) {
	var out []entity.Category
	q := r.DB.Preload("Restaurant").Order("id")
	if restaurantID != nil {
		q = q.Where("restaurant_id = ?", *restaurantID)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *CategoryRepository) Get(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Preload("Restaurant").First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
