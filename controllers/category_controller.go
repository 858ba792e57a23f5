package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	Repo *repository.CategoryRepository
}

func NewCategoryController(r *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: r}
}

// GET /categories/ (?restaurant=)
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.List(queryUint(c, "restaurant"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /categories/:id
func (ctl *CategoryController) Detail(c *gin.Context) {
	cat, err := ctl.Repo.Get(paramID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

type CategoryIn struct {
	Name         string `json:"name" binding:"required"`
	Image        string `json:"image"`
	RestaurantID *uint  `json:"restaurant"`
}

// POST /categories/ (staff)
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{Name: req.Name, Image: req.Image, RestaurantID: req.RestaurantID}
	if err := ctl.Repo.Create(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /categories/:id (staff)
func (ctl *CategoryController) Update(c *gin.Context) {
	id := paramID(c)
	if _, err := ctl.Repo.Get(id); err != nil {
		resp.NotFound(c, "category not found")
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
	cat, err := ctl.Repo.Get(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id (staff)
func (ctl *CategoryController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(paramID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
