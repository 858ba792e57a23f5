package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	Repo *repository.ProductRepository
}

func NewProductController(r *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: r}
}

// GET /products/ (?category=&restaurant=&search=)
func (ctl *ProductController) List(c *gin.Context) {
	f := repository.ProductFilter{
		CategoryID:   queryUint(c, "category"),
		RestaurantID: queryUint(c, "restaurant"),
		Search:       c.Query("search"),
	}
	products, err := ctl.Repo.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (ctl *ProductController) Detail(c *gin.Context) {
	p, err := ctl.Repo.Get(paramID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

type ProductIn struct {
	Name               string       `json:"name" binding:"required"`
	Description        string       `json:"description"`
	Price              entity.Money `json:"price" binding:"required"`
	Image              string       `json:"image"`
	CategoryID         uint         `json:"category" binding:"required"`
	Rating             float64      `json:"rating"`
	Calories           int          `json:"calories"`
	IsPromoted         bool         `json:"is_promoted"`
	DiscountPercentage int          `json:"discount_percentage"`
	ShippingFee        entity.Money `json:"shipping_fee"`
	RestaurantID       *uint        `json:"restaurant"`
}

// POST /products/ (staff)
func (ctl *ProductController) Create(c *gin.Context) {
	var req ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p := entity.Product{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Image:              req.Image,
		CategoryID:         req.CategoryID,
		Rating:             req.Rating,
		Calories:           req.Calories,
		IsPromoted:         req.IsPromoted,
		DiscountPercentage: req.DiscountPercentage,
		ShippingFee:        req.ShippingFee,
		RestaurantID:       req.RestaurantID,
	}
	if err := ctl.Repo.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	p.DiscountedPrice = p.EffectivePrice()
	resp.Created(c, p)
}

// PATCH /products/:id (staff)
func (ctl *ProductController) Update(c *gin.Context) {
	id := paramID(c)
	if _, err := ctl.Repo.Get(id); err != nil {
		resp.NotFound(c, "product not found")
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	delete(updates, "id")
	delete(updates, "discounted_price")

	if err := ctl.Repo.Update(id, updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	p, err := ctl.Repo.Get(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /products/:id (staff)
func (ctl *ProductController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(paramID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
