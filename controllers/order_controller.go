package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/services"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders/
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /orders/
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Svc.ListForUser(utils.CurrentUserID(c), utils.IsStaff(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.Svc.Detail(utils.CurrentUserID(c), paramID(c), utils.IsStaff(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status (staff)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.UpdateStatus(paramID(c), body.Status)
	if err != nil {
		if errors.Is(err, services.ErrBadTransition) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
