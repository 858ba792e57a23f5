package controllers

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/resp"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController is the staff-only user admin surface.
type UserController struct {
	Repo *repository.UserRepository
}

func NewUserController(r *repository.UserRepository) *UserController {
	return &UserController{Repo: r}
}

// GET /users/
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /users/:id
func (ctl *UserController) Detail(c *gin.Context) {
	user, err := ctl.Repo.FindByID(paramID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /users/:id
func (ctl *UserController) Update(c *gin.Context) {
	id := paramID(c)
	if _, err := ctl.Repo.FindByID(id); err != nil {
		resp.NotFound(c, "user not found")
		return
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		IsStaff   *bool   `json:"is_staff"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if body.FirstName != nil {
		updates["first_name"] = *body.FirstName
	}
	if body.LastName != nil {
		updates["last_name"] = *body.LastName
	}
	if body.IsStaff != nil {
		updates["is_staff"] = *body.IsStaff
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.Repo.Update(id, updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	user, err := ctl.Repo.FindByID(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /users/:id
func (ctl *UserController) Delete(c *gin.Context) {
	if err := ctl.Repo.Delete(paramID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
