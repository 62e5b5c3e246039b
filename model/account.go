package model

type Account struct {
	DTO
	Username   string    `gorm:"unique;not null" validate:"required" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	FullName   string    `json:"fullName"`
	Role       string    `gorm:"default:'STAFF'" json:"role"` // ADMIN, MANAGER, STAFF
	IsActive   bool      `gorm:"default:true" json:"isActive"`
	PropertyId *uint     `json:"propertyId"`
	Property   *Property `gorm:"foreignKey:PropertyId" json:"property,omitempty"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAccountInput struct {
	Username   string `json:"username" validate:"required,min=4"`
	Password   string `json:"password" validate:"required,min=6"`
	FullName   string `json:"fullName"`
	Role       string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER STAFF"`
	PropertyId *uint  `json:"propertyId"`
}
