package model

type Property struct {
	DTO
	Name         string `gorm:"not null" validate:"required" json:"name"`
	Slug         string `gorm:"unique;not null" json:"slug"`
	Timezone     string `gorm:"default:'Asia/Ho_Chi_Minh'" json:"timezone"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
	Rooms        []Room `gorm:"foreignKey:PropertyId" json:"rooms,omitempty"`
	ServiceItems []ServiceItem `gorm:"foreignKey:PropertyId" json:"serviceItems,omitempty"`
}

type CreatePropertyInput struct {
	Name     string `json:"name" validate:"required"`
	Timezone string `json:"timezone"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address"`
}

type EditPropertyInput struct {
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}
