package repository

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Preload("Items.Product").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns the user's orders newest first.
func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ListAll is the staff view across every user.
func (r *OrderRepository) ListAll(limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 200
	}
	var out []entity.Order
	err := r.DB.Preload("Items").Preload("Items.Product").
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// Latest returns the user's most recent order, if any.
func (r *OrderRepository) Latest(userID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only when the row still holds the expected
// value, so two concurrent updates cannot double-apply a transition. The
// affected-row count tells the caller whether it won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
