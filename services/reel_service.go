package services

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
)

type ReelService struct {
	Repo *repository.ReelRepository
}

func NewReelService(repo *repository.ReelRepository) *ReelService {
	return &ReelService{Repo: repo}
}

// List returns the feed, flagging is_saved for an authenticated viewer
// (viewerID 0 means anonymous).
func (s *ReelService) List(restaurantID *uint, viewerID uint) ([]entity.Reel, error) {
	reels, err := s.Repo.List(restaurantID)
	if err != nil {
		return nil, err
	}
	if viewerID != 0 {
		saved, err := s.Repo.SavedSet(viewerID)
		if err != nil {
			return nil, err
		}
		for i := range reels {
			reels[i].IsSaved = saved[reels[i].ID]
		}
	}
	return reels, nil
}

// View counts a playback and returns the fresh count.
func (s *ReelService) View(reelID uint) (*entity.Reel, error) {
	if err := s.Repo.IncrementViews(reelID); err != nil {
		return nil, err
	}
	return s.Repo.Get(reelID)
}

func (s *ReelService) Save(userID, reelID uint) error {
	if _, err := s.Repo.Get(reelID); err != nil {
		return err
	}
	return s.Repo.Save(userID, reelID)
}

func (s *ReelService) Unsave(userID, reelID uint) error {
	return s.Repo.Unsave(userID, reelID)
}

func (s *ReelService) Saved(userID uint) ([]entity.SavedReel, error) {
	return s.Repo.ListSaved(userID)
}
