package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/NecoOcean/sky-take-out/pkg/resp"
	"github.com/NecoOcean/sky-take-out/services"
	"github.com/NecoOcean/sky-take-out/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /user/cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.CartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(c.Request.Context(), uid, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// POST /user/cart/items/sub
func (h *CartController) Subtract(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var req services.CartItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Subtract(c.Request.Context(), uid, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /user/cart
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	lines, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Amount * int64(line.Number)
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": subtotal})
}

// DELETE /user/cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, nil)
}
