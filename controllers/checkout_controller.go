package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/checkout"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/services"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/utils"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout/whatsapp
// Validation failures (empty cart, missing restaurant contact) come back
// inline before any link is built.
func (h *CheckoutController) WhatsApp(c *gin.Context) {
	var body struct {
		Location string `json:"location"`
	}
	// body is optional; the composer falls back to the default location
	_ = c.ShouldBindJSON(&body)

	out, err := h.Svc.WhatsApp(utils.CurrentUserID(c), body.Location)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) || errors.Is(err, checkout.ErrNoContact) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
