package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.Employee{}, &entity.User{},
		&entity.Category{},
		&entity.Dish{}, &entity.DishFlavor{},
		&entity.Setmeal{}, &entity.SetmealDish{},
		&entity.ShoppingCart{},
		&entity.Order{}, &entity.OrderDetail{},
	)
}
