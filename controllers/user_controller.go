package controllers

import (
	"errors"

	"foodserver/entity"
	"foodserver/pkg/resp"
	"foodserver/repository"
	"foodserver/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	Repo *repository.UserRepository
	FBID *services.FBIDService
}

func NewUserController(db *gorm.DB) *UserController {
	repo := repository.NewUserRepository(db)
	return &UserController{Repo: repo, FBID: services.NewFBIDService(repo)}
}

// GET /api/users?key=&fbid=
func (uc *UserController) Get(c *gin.Context) {
	fbid := c.Query("fbid")
	if fbid == "" {
		resp.Missing(c, "fbid in query")
		return
	}

	row, err := uc.Repo.GetByFBID(c.Request.Context(), fbid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.Empty(c)
		return
	}
	if err != nil {
		resp.StoreError(c, err)
		return
	}
	resp.OK(c, []repository.UserRow{*row})
}

type createUserReq struct {
	Key         string `json:"key"`
	UserPhone   string `json:"userPhone"`
	UserName    string `json:"userName"`
	UserAddress string `json:"userAddress"`
}

// POST /api/users — generates a fresh fbid and returns it, so the
// caller can address the account it just created.
func (uc *UserController) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Invalid(c, err.Error())
		return
	}

	fbid, err := uc.FBID.Generate(c.Request.Context())
	if err != nil {
		resp.StoreError(c, err)
		return
	}

	user := entity.User{
		FBID:    fbid,
		Phone:   req.UserPhone,
		Name:    req.UserName,
		Address: req.UserAddress,
	}
	if err := uc.Repo.Create(c.Request.Context(), &user); err != nil {
		resp.StoreError(c, err)
		return
	}

	resp.OK(c, []repository.UserRow{{
		FBID: fbid, Phone: user.Phone, Name: user.Name, Address: user.Address,
	}})
}

type updateUserReq struct {
	Key         string `json:"key"`
	FBID        string `json:"fbid"`
	UserPhone   string `json:"userPhone"`
	UserName    string `json:"userName"`
	UserAddress string `json:"userAddress"`
}

// PUT /api/users — update name/address by fbid, insert when unknown.
func (uc *UserController) Update(c *gin.Context) {
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Invalid(c, err.Error())
		return
	}
	if req.FBID == "" {
		resp.Missing(c, "fbid in body of PUT request")
		return
	}

	user := entity.User{
		FBID:    req.FBID,
		Phone:   req.UserPhone,
		Name:    req.UserName,
		Address: req.UserAddress,
	}
	if err := uc.Repo.Upsert(c.Request.Context(), &user); err != nil {
		resp.StoreError(c, err)
		return
	}
	resp.Done(c, "Success")
}
