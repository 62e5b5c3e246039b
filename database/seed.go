package database

import (
	"hotel_manager/constants"
	"hotel_manager/model"
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, IsActive: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	properties := []model.Property{
		{
			Name:     "Khách sạn Hoa Sen Đà Nẵng",
			Slug:     slug.Make("Khách sạn Hoa Sen Đà Nẵng"),
			Timezone: "Asia/Ho_Chi_Minh",
			Phone:    "0236 3888 999",
			Email:    "lotus.danang@example.com",
			Address:  "86 Võ Nguyên Giáp, Đà Nẵng",
			IsActive: true,
		},
	}
	for i := range properties {
		if err := db.Where(model.Property{Slug: properties[i].Slug}).FirstOrCreate(&properties[i]).Error; err != nil {
			log.Println("failed to seed property:", properties[i].Name, "error:", err)
		}
	}

	propertyId := properties[0].ID
	rooms := []model.Room{
		{Number: "101", Type: model.RoomStandard, PropertyId: propertyId},
		{Number: "102", Type: model.RoomStandard, PropertyId: propertyId},
		{Number: "201", Type: model.RoomDeluxe, PropertyId: propertyId},
		{Number: "301", Type: model.RoomSuite, PropertyId: propertyId},
	}
	for _, room := range rooms {
		if err := db.Where(model.Room{Number: room.Number, PropertyId: propertyId}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.Number, "error:", err)
		}
	}

	items := []model.ServiceItem{
		{Name: "Phở bò", Category: "food", Price: 65000, Currency: "VND", IsAvailable: true, PropertyId: propertyId},
		{Name: "Bánh mì ốp la", Category: "food", Price: 45000, Currency: "VND", IsAvailable: true, PropertyId: propertyId},
		{Name: "Cà phê sữa đá", Category: "drink", Price: 35000, Currency: "VND", IsAvailable: true, PropertyId: propertyId},
		{Name: "Nước suối", Category: "drink", Price: 15000, Currency: "VND", IsAvailable: true, PropertyId: propertyId},
		{Name: "Bộ khăn tắm", Category: "amenity", Price: 0, Currency: "VND", IsAvailable: true, PropertyId: propertyId},
		{Name: "Gối bổ sung", Category: "amenity", Price: 0, Currency: "VND", IsAvailable: true, PropertyId: propertyId},
	}
	for _, item := range items {
		if err := db.Where(model.ServiceItem{Name: item.Name, PropertyId: propertyId}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed service item:", item.Name, "error:", err)
		}
	}
}
