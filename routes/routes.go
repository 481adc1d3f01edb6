package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/cache"
	"github.com/NecoOcean/sky-take-out/configs"
	"github.com/NecoOcean/sky-take-out/controllers"
	"github.com/NecoOcean/sky-take-out/middlewares"
	"github.com/NecoOcean/sky-take-out/repository"
	"github.com/NecoOcean/sky-take-out/services"
	"github.com/NecoOcean/sky-take-out/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	dishRepo := repository.NewDishRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	cartRepo := repository.NewCartRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Optional menu cache
	var dishCache *cache.DishCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		dishCache = cache.NewDishCache(rdb, log)
	}

	// Order-reminder hub for admin consoles
	hub := ws.NewNotifyHub(log)
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(employeeRepo, userRepo, cfg.JWTSecret, cfg.JWTTTL, log)
	categorySvc := services.NewCategoryService(db, categoryRepo, dishRepo, setmealRepo, log)
	dishSvc := services.NewDishService(db, dishRepo, categoryRepo, setmealRepo, log)
	setmealSvc := services.NewSetmealService(db, setmealRepo, dishRepo, categoryRepo, log)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo, setmealRepo, log)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, hub, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	dishCtrl := controllers.NewDishController(dishSvc, dishCache)
	setmealCtrl := controllers.NewSetmealController(setmealSvc)
	menuCtrl := controllers.NewMenuController(dishSvc, setmealSvc, dishCache)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir)

	admin := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")
	customer := middlewares.AuthMiddleware(cfg.JWTSecret, "customer", "admin")

	// Admin console
	r.POST("/admin/login", authCtrl.EmployeeLogin)
	a := r.Group("/admin", admin)
	{
		a.GET("/employees", authCtrl.PageEmployees)
		a.POST("/employees", authCtrl.CreateEmployee)
		a.PATCH("/employees/:id/status", authCtrl.SetEmployeeStatus)

		a.GET("/categories", categoryCtrl.Page)
		a.POST("/categories", categoryCtrl.Create)
		a.PUT("/categories/:id", categoryCtrl.Update)
		a.DELETE("/categories/:id", categoryCtrl.Delete)
		a.PATCH("/categories/:id/status", categoryCtrl.SetStatus)

		a.GET("/dishes", dishCtrl.Page)
		a.GET("/dishes/:id", dishCtrl.Get)
		a.POST("/dishes", dishCtrl.Create)
		a.PUT("/dishes/:id", dishCtrl.Update)
		a.DELETE("/dishes", dishCtrl.DeleteBatch)
		a.PATCH("/dishes/:id/status", dishCtrl.SetSaleState)

		a.GET("/setmeals", setmealCtrl.Page)
		a.GET("/setmeals/:id", setmealCtrl.Get)
		a.POST("/setmeals", setmealCtrl.Create)
		a.PUT("/setmeals/:id", setmealCtrl.Update)
		a.DELETE("/setmeals", setmealCtrl.DeleteBatch)
		a.PATCH("/setmeals/:id/status", setmealCtrl.SetSaleState)

		a.GET("/orders", orderCtrl.Page)
		a.GET("/orders/:id", orderCtrl.Get)
		a.PATCH("/orders/:id/confirm", orderCtrl.Confirm)
		a.PATCH("/orders/:id/complete", orderCtrl.Complete)
		a.PATCH("/orders/:id/cancel", orderCtrl.Cancel)

		a.POST("/upload", uploadCtrl.Upload)
		a.GET("/ws", hub.Serve)
	}

	// Customer app
	r.POST("/user/register", authCtrl.Register)
	r.POST("/user/login", authCtrl.UserLogin)
	r.GET("/user/categories", categoryCtrl.ListByKind)
	r.GET("/user/dishes", menuCtrl.ListDishes)
	r.GET("/user/setmeals", menuCtrl.ListSetmeals)
	r.GET("/user/setmeals/:id/dishes", menuCtrl.SetmealDishes)

	u := r.Group("/user", customer)
	{
		u.GET("/cart", cartCtrl.List)
		u.POST("/cart/items", cartCtrl.Add)
		u.POST("/cart/items/sub", cartCtrl.Subtract)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Submit)
		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/orders/:id", orderCtrl.Get)
	}
}
