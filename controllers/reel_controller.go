package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/services"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReelController struct{ Svc *services.ReelService }

func NewReelController(s *services.ReelService) *ReelController { return &ReelController{Svc: s} }

// GET /reels/ (?restaurant=)
// Works for anonymous viewers too; is_saved is only filled when logged in.
func (h *ReelController) List(c *gin.Context) {
	reels, err := h.Svc.List(queryUint(c, "restaurant"), utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reels)
}

// POST /reels/:id/view/
func (h *ReelController) View(c *gin.Context) {
	reel, err := h.Svc.View(paramID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "reel not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": reel.ID, "views": reel.Views})
}

// POST /reels/:id/save/
func (h *ReelController) Save(c *gin.Context) {
	if err := h.Svc.Save(utils.CurrentUserID(c), paramID(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "reel not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"saved": true})
}

// DELETE /reels/:id/save/
func (h *ReelController) Unsave(c *gin.Context) {
	if err := h.Svc.Unsave(utils.CurrentUserID(c), paramID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"saved": false})
}

// GET /reels/saved/
func (h *ReelController) Saved(c *gin.Context) {
	saved, err := h.Svc.Saved(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, saved)
}

type ReelIn struct {
	Video        string `json:"video" binding:"required"`
	Caption      string `json:"caption"`
	IsHighlight  bool   `json:"is_highlight"`
	ProductID    *uint  `json:"product"`
	RestaurantID *uint  `json:"restaurant"`
}

// POST /reels/ (staff)
func (h *ReelController) Create(c *gin.Context) {
	var req ReelIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	reel := entity.Reel{
		Video:        req.Video,
		Caption:      req.Caption,
		IsHighlight:  req.IsHighlight,
		ProductID:    req.ProductID,
		RestaurantID: req.RestaurantID,
	}
	if err := h.Svc.Repo.Create(&reel); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, reel)
}

// PATCH /reels/:id (staff)
func (h *ReelController) Update(c *gin.Context) {
	id := paramID(c)
	if _, err := h.Svc.Repo.Get(id); err != nil {
		resp.NotFound(c, "reel not found")
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(updates, "id")
	delete(updates, "views")

	if err := h.Svc.Repo.Update(id, updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	reel, err := h.Svc.Repo.Get(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reel)
}

// DELETE /reels/:id (staff)
func (h *ReelController) Delete(c *gin.Context) {
	if err := h.Svc.Repo.Delete(paramID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
