package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type OrderItem struct {
	DTO
	OrderID       uint    `json:"orderId"`
	ServiceItemID uint    `json:"serviceItemId"`
	Name          string  `gorm:"not null" json:"name"` // snapshot tên món tại thời điểm đặt
	Quantity      int     `gorm:"not null" json:"quantity"`
	UnitPrice     int64   `gorm:"not null" json:"unitPrice"` // đơn vị nhỏ nhất của tiền tệ
	TotalPrice    int64   `gorm:"not null" json:"totalPrice"`
	Notes         *string `json:"notes,omitempty"`
}

type Order struct {
	DTO
	PublicCode      string      `gorm:"unique;size:20" json:"publicCode"` // SVC-XXXXXXXX
	PropertyID      uint        `gorm:"index;not null" json:"propertyId"`
	RoomID          *uint       `json:"roomId,omitempty"`
	Room            *Room       `json:"room,omitempty"`
	GuestName       string      `gorm:"not null" json:"guestName"`
	GuestEmail      string      `json:"guestEmail,omitempty"`
	GuestPhone      string      `json:"guestPhone,omitempty"`
	Status          OrderStatus `gorm:"size:20;not null" json:"status"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Subtotal        int64       `json:"subtotal"`
	Total           int64       `json:"total"`
	Currency        string      `gorm:"size:3;not null" json:"currency"`
	DeliveryNotes   *string     `json:"deliveryNotes,omitempty"`
	RequestedTime   *time.Time  `json:"requestedTime,omitempty"`
	RejectionReason *string     `json:"rejectionReason,omitempty"`
}

// Audit log: một dòng cho mỗi lần chuyển trạng thái, append-only.
type OrderStatusLog struct {
	DTO
	OrderID uint        `gorm:"index;not null" json:"orderId"`
	From    OrderStatus `gorm:"size:20" json:"from"`
	To      OrderStatus `gorm:"size:20;not null" json:"to"`
	Action  OrderAction `gorm:"size:20;not null" json:"action"`
	Reason  *string     `json:"reason,omitempty"`
	Actor   string      `json:"actor,omitempty"` // username nhân viên hoặc "system"
}

// TransitionRecord trả về cho caller sau khi chuyển trạng thái thành công,
// dùng để phát thông báo và ghi audit log.
type TransitionRecord struct {
	OrderID    uint        `json:"orderId"`
	PublicCode string      `json:"publicCode"`
	From       OrderStatus `json:"from"`
	To         OrderStatus `json:"to"`
	Action     OrderAction `json:"action"`
	Reason     *string     `json:"reason,omitempty"`
	Actor      string      `json:"actor,omitempty"`
	At         time.Time   `json:"at"`
}

type OrderItemInput struct {
	ServiceItemID uint    `json:"serviceItemId" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required"`
	UnitPrice     int64   `json:"unitPrice"`
	Notes         *string `json:"notes"`
}

type CreateOrderInput struct {
	GuestName     string           `json:"guestName" validate:"required"`
	GuestEmail    string           `json:"guestEmail" validate:"omitempty,email"`
	GuestPhone    string           `json:"guestPhone"`
	RoomNumber    *string          `json:"roomNumber"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	DeliveryNotes *string          `json:"deliveryNotes"`
	RequestedTime *time.Time       `json:"requestedTime"`
	Currency      string           `json:"currency" validate:"required,len=3"`
}

type OrderActionInput struct {
	Action OrderAction `json:"action" validate:"required"`
	Reason *string     `json:"reason"`
}

type FilterOrderInput struct {
	Status string `query:"status"` // "pending,confirmed" — lọc theo bất kỳ trạng thái nào trong danh sách
	Search string `query:"search"` // tên khách hoặc mã đơn
	Limit  *int   `query:"limit"`
	Page   *int   `query:"page"`
}

// NewOrder dựng đơn mới ở trạng thái pending. Subtotal/Total luôn được tính lại
// từ danh sách món phía server, không tin con số client gửi lên.
func NewOrder(propertyID uint, roomID *uint, input CreateOrderInput) (*Order, error) {
	if strings.TrimSpace(input.GuestName) == "" {
		return nil, &ValidationError{Field: "guestName", Message: "tên khách không được để trống"}
	}
	if len(input.Items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "đơn hàng phải có ít nhất một món"}
	}
	if len(input.Currency) != 3 {
		return nil, &ValidationError{Field: "currency", Message: "mã tiền tệ không hợp lệ"}
	}

	now := time.Now()
	order := &Order{
		PublicCode:    "SVC-" + strings.ToUpper(uuid.New().String()[:8]),
		PropertyID:    propertyID,
		RoomID:        roomID,
		GuestName:     strings.TrimSpace(input.GuestName),
		GuestEmail:    input.GuestEmail,
		GuestPhone:    input.GuestPhone,
		Status:        OrderPending,
		Currency:      strings.ToUpper(input.Currency),
		DeliveryNotes: input.DeliveryNotes,
		RequestedTime: input.RequestedTime,
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	var subtotal int64
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, &ValidationError{Field: "items.quantity", Message: "số lượng phải lớn hơn 0"}
		}
		if item.UnitPrice < 0 {
			return nil, &ValidationError{Field: "items.unitPrice", Message: "đơn giá không được âm"}
		}
		totalPrice := int64(item.Quantity) * item.UnitPrice
		subtotal += totalPrice
		order.Items = append(order.Items, OrderItem{
			ServiceItemID: item.ServiceItemID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    totalPrice,
			Notes:         item.Notes,
		})
	}
	order.Subtotal = subtotal
	order.Total = subtotal // phí/giảm giá nằm ngoài phạm vi core

	return order, nil
}

// ApplyTransition là đường duy nhất được phép đổi Status. Khi lỗi, đơn giữ nguyên.
// Không tự phát thông báo — caller dùng TransitionRecord trả về để làm việc đó.
func (o *Order) ApplyTransition(action OrderAction, reason *string, actor string) (*TransitionRecord, error) {
	target, err := ResolveAction(o.Status, action)
	if err != nil {
		return nil, err
	}

	rec := &TransitionRecord{
		OrderID:    o.ID,
		PublicCode: o.PublicCode,
		From:       o.Status,
		To:         target,
		Action:     action,
		Reason:     reason,
		Actor:      actor,
		At:         time.Now(),
	}

	o.Status = target
	if action == ActionReject {
		o.RejectionReason = reason
	}
	o.UpdatedAt = rec.At

	return rec, nil
}

func (o *Order) AvailableActions() []OrderAction {
	return AvailableActions(o.Status)
}
