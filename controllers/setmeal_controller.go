package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NecoOcean/sky-take-out/pkg/resp"
	"github.com/NecoOcean/sky-take-out/repository"
	"github.com/NecoOcean/sky-take-out/services"
)

type SetmealController struct{ Svc *services.SetmealService }

func NewSetmealController(s *services.SetmealService) *SetmealController {
	return &SetmealController{Svc: s}
}

// POST /admin/setmeals
func (h *SetmealController) Create(c *gin.Context) {
	var req services.SetmealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sm, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, sm)
}

// PUT /admin/setmeals/:id
func (h *SetmealController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.SetmealIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(c.Request.Context(), uint(id), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /admin/setmeals
func (h *SetmealController) DeleteBatch(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.DeleteBatch(c.Request.Context(), req.IDs); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// PATCH /admin/setmeals/:id/status
func (h *SetmealController) SetSaleState(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Status *int `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetSaleState(c.Request.Context(), uint(id), *req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /admin/setmeals/:id
func (h *SetmealController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	sm, err := h.Svc.GetWithDishes(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, sm)
}

// GET /admin/setmeals?name=&categoryId=&status=&page=&pageSize=
func (h *SetmealController) Page(c *gin.Context) {
	q := repository.SetmealQuery{Name: c.Query("name")}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if v := c.Query("categoryId"); v != "" {
		id, _ := strconv.Atoi(v)
		cid := uint(id)
		q.CategoryID = &cid
	}
	if v := c.Query("status"); v != "" {
		status, _ := strconv.Atoi(v)
		q.Status = &status
	}
	out, err := h.Svc.Page(c.Request.Context(), q)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
