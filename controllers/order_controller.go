package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NecoOcean/sky-take-out/entity"
	"github.com/NecoOcean/sky-take-out/pkg/resp"
	"github.com/NecoOcean/sky-take-out/services"
	"github.com/NecoOcean/sky-take-out/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /user/orders
func (h *OrderController) Submit(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.SubmitOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Submit(c.Request.Context(), uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /user/orders
func (h *OrderController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	orders, err := h.Svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /user/orders/:id
func (h *OrderController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := h.Svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	// customers may only see their own orders
	if utils.CurrentRole(c) != utils.RoleAdmin && order.UserID != uid {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, order)
}

// GET /admin/orders?status=&page=&pageSize=
func (h *OrderController) Page(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	var status *int
	if v := c.Query("status"); v != "" {
		st, _ := strconv.Atoi(v)
		status = &st
	}
	out, err := h.Svc.Page(c.Request.Context(), status, page, pageSize)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /admin/orders/:id/confirm
func (h *OrderController) Confirm(c *gin.Context) {
	h.setStatus(c, entity.OrderStatusConfirmed)
}

// PATCH /admin/orders/:id/complete
func (h *OrderController) Complete(c *gin.Context) {
	h.setStatus(c, entity.OrderStatusCompleted)
}

// PATCH /admin/orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	h.setStatus(c, entity.OrderStatusCancelled)
}

func (h *OrderController) setStatus(c *gin.Context, status int) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.SetStatus(c.Request.Context(), uint(id), status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}
