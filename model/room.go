package model

type RoomType string

const (
	RoomStandard RoomType = "Standard"
	RoomDeluxe   RoomType = "Deluxe"
	RoomSuite    RoomType = "Suite"
	RoomVilla    RoomType = "Villa"
)

type Room struct {
	DTO
	Number     string   `gorm:"not null" validate:"required" json:"number"`
	Type       RoomType `json:"type"`
	Floor      *int     `json:"floor"`
	PropertyId uint     `json:"propertyId"`
	Property   Property `gorm:"foreignKey:PropertyId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

type CreateRoomInput struct {
	PropertyId uint     `json:"propertyId" validate:"required"`
	Number     string   `json:"number" validate:"required"`
	Type       RoomType `json:"type"`
	Floor      *int     `json:"floor"`
}
