package configs

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Category{},
		&entity.Product{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Reel{}, &entity.SavedReel{},
	)
}
