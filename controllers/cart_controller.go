package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/services"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartController exposes the session cart. Quantity operations never fail:
// unknown product ids are no-ops, so they all answer 200.
type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.Svc.Get(utils.CurrentUserID(c)))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		ProductID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUserID(c)
	if err := h.Svc.Add(uid, body.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, h.Svc.Get(uid))
}

// POST /cart/items/:id/increment
func (h *CartController) Increment(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	h.Svc.Increment(uid, paramID(c))
	resp.OK(c, h.Svc.Get(uid))
}

// POST /cart/items/:id/decrement
func (h *CartController) Decrement(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	h.Svc.Decrement(uid, paramID(c))
	resp.OK(c, h.Svc.Get(uid))
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	h.Svc.Remove(uid, paramID(c))
	resp.OK(c, h.Svc.Get(uid))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	h.Svc.Clear(uid)
	resp.OK(c, h.Svc.Get(uid))
}
