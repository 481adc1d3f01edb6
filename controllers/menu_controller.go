package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NecoOcean/sky-take-out/cache"
	"github.com/NecoOcean/sky-take-out/pkg/resp"
	"github.com/NecoOcean/sky-take-out/services"
)

// MenuController is the customer-facing read side: on-sale dishes and
// setmeals by category. Dish lists go through the best-effort redis cache.
type MenuController struct {
	Dishes   *services.DishService
	Setmeals *services.SetmealService
	Cache    *cache.DishCache
}

func NewMenuController(ds *services.DishService, ss *services.SetmealService, dc *cache.DishCache) *MenuController {
	return &MenuController{Dishes: ds, Setmeals: ss, Cache: dc}
}

// GET /user/dishes?categoryId=
func (h *MenuController) ListDishes(c *gin.Context) {
	v, err := strconv.Atoi(c.Query("categoryId"))
	if err != nil || v <= 0 {
		resp.BadRequest(c, "categoryId is required")
		return
	}
	categoryID := uint(v)

	if dishes, ok := h.Cache.Get(c.Request.Context(), categoryID); ok {
		resp.OK(c, dishes)
		return
	}
	dishes, err := h.Dishes.ListOnSaleByCategory(c.Request.Context(), categoryID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	h.Cache.Set(c.Request.Context(), categoryID, dishes)
	resp.OK(c, dishes)
}

// GET /user/setmeals?categoryId=
func (h *MenuController) ListSetmeals(c *gin.Context) {
	v, err := strconv.Atoi(c.Query("categoryId"))
	if err != nil || v <= 0 {
		resp.BadRequest(c, "categoryId is required")
		return
	}
	sms, err := h.Setmeals.ListOnSaleByCategory(c.Request.Context(), uint(v))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, sms)
}

// GET /user/setmeals/:id/dishes
func (h *MenuController) SetmealDishes(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rows, err := h.Setmeals.DishesOf(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}
