package repository

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ProductFilter mirrors the query params the clients send.
type ProductFilter struct {
	CategoryID   *uint
	RestaurantID *uint
	Search       string
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, error) {
	var out []entity.Product
	q := r.DB.Preload("Restaurant").Order("id")
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.RestaurantID != nil {
		q = q.Where("restaurant_id = ?", *f.RestaurantID)
	}
	if f.Search != "" {
		// sqlite LIKE is case-insensitive for ASCII, matching the legacy
		// icontains filter
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Preload("Restaurant").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetMany loads the products referenced by an order payload, preserving
// lookup of each id.
func (r *ProductRepository) GetMany(ids []uint) (map[uint]*entity.Product, error) {
	var rows []entity.Product
	if err := r.DB.Preload("Restaurant").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]*entity.Product, len(rows))
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
