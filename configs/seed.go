package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/NecoOcean/sky-take-out/entity"
)

// SeedAdmin creates the first admin-console account from ADMIN_USERNAME /
// ADMIN_PASSWORD. Skipped when the env is missing or the account exists.
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Employee{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Employee{
		Username: username,
		Name:     "Administrator",
		Password: string(hash),
		Status:   entity.StatusOnSale,
	}
	return db.Create(&admin).Error
}

// SeedCategories gives a fresh install something to browse.
func SeedCategories() error {
	db := DB()
	starters := []entity.Category{
		{Kind: entity.CategoryKindDish, Name: "Mains", Sort: 1, Status: entity.StatusOnSale},
		{Kind: entity.CategoryKindDish, Name: "Drinks", Sort: 2, Status: entity.StatusOnSale},
		{Kind: entity.CategoryKindSetmeal, Name: "Combos", Sort: 3, Status: entity.StatusOnSale},
	}
	for _, cat := range starters {
		if err := db.Where(entity.Category{Kind: cat.Kind, Name: cat.Name}).
			FirstOrCreate(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}
