package configs

import (
	"log"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first staff account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Username:  email,
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		IsStaff:   true,
	}
	return db.Create(&admin).Error
}

// SeedCategories puts a starter set of menu categories in place so a fresh
// install has something to browse.
func SeedCategories() error {
	db := DB()

	for _, name := range []string{"Breakfast", "Fast Food", "Drinks", "Desserts", "Swahili Dishes"} {
		db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name})
	}

	log.Println("categories seeded")
	return nil
}
