package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantController(r *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: r}
}

// GET /restaurants/
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	rest, err := ctl.Repo.Get(paramID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

type RestaurantIn struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	Logo               string `json:"logo"`
	CoverImage         string `json:"cover_image"`
	WhatsappNumber     string `json:"whatsapp_number"`
	TillNumber         string `json:"till_number"`
	PaybillNumber      string `json:"paybill_number"`
	BankName           string `json:"bank_name"`
	BankAccountNumber  string `json:"bank_account_number"`
	DeliveryNote       string `json:"delivery_note"`
	IsVerified         bool   `json:"is_verified"`
	IsFeaturedCampaign bool   `json:"is_featured_campaign"`
	DiscountPercentage int    `json:"discount_percentage"`
}

// POST /restaurants/ (staff)
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest := entity.Restaurant{
		Name:               req.Name,
		Description:        req.Description,
		Location:           req.Location,
		Logo:               req.Logo,
		CoverImage:         req.CoverImage,
		WhatsappNumber:     req.WhatsappNumber,
		TillNumber:         req.TillNumber,
		PaybillNumber:      req.PaybillNumber,
		BankName:           req.BankName,
		BankAccountNumber:  req.BankAccountNumber,
		DeliveryNote:       req.DeliveryNote,
		IsVerified:         req.IsVerified,
		IsFeaturedCampaign: req.IsFeaturedCampaign,
		DiscountPercentage: req.DiscountPercentage,
	}
	if err := ctl.Repo.Create(&rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rest)
}

// PATCH /restaurants/:id (staff)
func (ctl *RestaurantController) Update(c *gin.Context) {
	id := paramID(c)
	if _, err := ctl.Repo.Get(id); err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(updates, "id")

	if err := ctl.Repo.Update(id, updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	rest, err := ctl.Repo.Get(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurants/:id (staff)
func (ctl *RestaurantController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(paramID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
