package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/resp"
	"github.com/NecoOcean/sky-take-out/repository"
	"github.com/NecoOcean/sky-take-out/services"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// POST /admin/categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /admin/categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.CategoryIn
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

// DELETE /admin/categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.Delete(c.Request.Context(), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// PATCH /admin/categories/:id/status
func (h *CategoryController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Status *int `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetStatus(c.Request.Context(), uint(id), *req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /admin/categories?name=&kind=&status=&page=&pageSize=
func (h *CategoryController) Page(c *gin.Context) {
	q := repository.CategoryQuery{Name: c.Query("name")}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if v := c.Query("kind"); v != "" {
		kind, _ := strconv.Atoi(v)
		q.Kind = &kind
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

// GET /user/categories?kind=
func (h *CategoryController) ListByKind(c *gin.Context) {
	kind, _ := strconv.Atoi(c.DefaultQuery("kind", strconv.Itoa(entity.CategoryKindDish)))
	cats, err := h.Svc.ListByKind(c.Request.Context(), kind)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cats)
}
