package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NecoOcean/sky-take-out/cache"
	"github.com/NecoOcean/sky-take-out/pkg/resp"
	"github.com/NecoOcean/sky-take-out/repository"
	"github.com/NecoOcean/sky-take-out/services"
)

// DishController is the admin facade over dishes. Mutations drop the
// customer-menu cache entries they can affect.
type DishController struct {
	Svc   *services.DishService
	Cache *cache.DishCache
}

func NewDishController(s *services.DishService, dc *cache.DishCache) *DishController {
	return &DishController{Svc: s, Cache: dc}
}

// POST /admin/dishes
func (h *DishController) Create(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	h.Cache.Invalidate(c.Request.Context(), dish.CategoryID)
	resp.Created(c, dish)
}

// PUT /admin/dishes/:id
func (h *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(c.Request.Context(), uint(id), &req); err != nil {
		resp.Error(c, err)
		return
	}
	// the dish may have moved between categories
	h.Cache.InvalidateAll(c.Request.Context())
	resp.OK(c, nil)
}

// DELETE /admin/dishes
func (h *DishController) DeleteBatch(c *gin.Context) {
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
	h.Cache.InvalidateAll(c.Request.Context())
	resp.OK(c, nil)
}

// PATCH /admin/dishes/:id/status
func (h *DishController) SetSaleState(c *gin.Context) {
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
	h.Cache.InvalidateAll(c.Request.Context())
	resp.OK(c, nil)
}

// GET /admin/dishes/:id
func (h *DishController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	dish, err := h.Svc.GetWithFlavors(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dish)
}

// GET /admin/dishes?name=&categoryId=&status=&page=&pageSize=
func (h *DishController) Page(c *gin.Context) {
	q := repository.DishQuery{Name: c.Query("name")}
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
