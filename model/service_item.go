package model

type ServiceItem struct {
	DTO
	Name        string   `gorm:"not null" validate:"required" json:"name"`
	Category    string   `json:"category"` // food, drink, amenity, spa...
	Description string   `json:"description"`
	Price       int64    `gorm:"not null" json:"price"` // đơn vị nhỏ nhất của tiền tệ
	Currency    string   `gorm:"size:3;default:'VND'" json:"currency"`
	ImageUrl    *string  `json:"imageUrl,omitempty"`
	IsAvailable bool     `gorm:"default:true" json:"isAvailable"`
	PropertyId  uint     `json:"propertyId"`
	Property    Property `gorm:"foreignKey:PropertyId;references:ID" json:"-"`
}

type CreateServiceItemInput struct {
	PropertyId  uint    `json:"propertyId" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       int64   `json:"price" validate:"min=0"`
	Currency    string  `json:"currency" validate:"omitempty,len=3"`
	ImageUrl    *string `json:"imageUrl"`
}

type EditServiceItemInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" validate:"omitempty,min=0"`
	ImageUrl    *string `json:"imageUrl"`
	IsAvailable *bool   `json:"isAvailable"`
}
