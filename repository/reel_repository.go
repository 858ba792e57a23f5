package repository

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"gorm.io/gorm"
)

type ReelRepository struct {
	DB *gorm.DB
}

func NewReelRepository(db *gorm.DB) *ReelRepository {
	return &ReelRepository{DB: db}
}

// List orders highlights first, then newest. Optionally narrowed to one
// restaurant.
func (r *ReelRepository) List(restaurantID *uint) ([]entity.Reel, error) {
	var out []entity.Reel
	q := r.DB.Preload("Product").Preload("Product.Restaurant").Preload("Restaurant").
		Order("is_highlight DESC, created_at DESC")
	if restaurantID != nil {
		q = q.Where("restaurant_id = ?", *restaurantID)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ReelRepository) Get(id uint) (*entity.Reel, error) {
	var reel entity.Reel
	if err := r.DB.Preload("Product").Preload("Restaurant").First(&reel, id).Error; err != nil {
		return nil, err
	}
	return &reel, nil
}

func (r *ReelRepository) Create(reel *entity.Reel) error {
	return r.DB.Create(reel).Error
}

func (r *ReelRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Reel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ReelRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Reel{}, id).Error
}

// IncrementViews bumps the counter atomically in SQL.
func (r *ReelRepository) IncrementViews(id uint) error {
	return r.DB.Model(&entity.Reel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *ReelRepository) Save(userID, reelID uint) error {
	var exist entity.SavedReel
	err := r.DB.Where("user_id = ? AND reel_id = ?", userID, reelID).First(&exist).Error
	if err == nil {
		return nil // already saved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.Create(&entity.SavedReel{UserID: userID, ReelID: reelID}).Error
}

func (r *ReelRepository) Unsave(userID, reelID uint) error {
	return r.DB.Where("user_id = ? AND reel_id = ?", userID, reelID).
		Delete(&entity.SavedReel{}).Error
}

func (r *ReelRepository) ListSaved(userID uint) ([]entity.SavedReel, error) {
	var out []entity.SavedReel
	err := r.DB.Preload("Reel").Preload("Reel.Product").Preload("Reel.Restaurant").
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&out).Error
	return out, err
}

// SavedSet returns the reel ids the user has saved, for flagging a feed.
func (r *ReelRepository) SavedSet(userID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.DB.Model(&entity.SavedReel{}).Where("user_id = ?", userID).
		Pluck("reel_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
