package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// OrderStore là nơi duy nhất được ghi trạng thái đơn hàng.
// Mọi thay đổi status đều đi qua Order.ApplyTransition, không update field trực tiếp.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Insert dựa vào unique index trên public_code thay vì đếm trước rồi ghi,
// hai request chèn trùng mã cùng lúc thì request thua nhận ErrConflict.
func (s *OrderStore) Insert(ctx context.Context, order *model.Order) error {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", model.ErrConflict, order.PublicCode)
		}
		return err
	}
	return nil
}

func (s *OrderStore) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	var order model.Order
	if err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Room").
		Where("public_code = ?", code).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", model.ErrNotFound, code)
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus nạp đơn, validate qua ApplyTransition rồi ghi bằng UPDATE có điều kiện
// trên status đã đọc. Hai nhân viên thao tác cùng lúc trên một đơn thì chỉ người
// ghi trước thắng, người sau nhận ErrInvalidTransition và phải tải lại.
func (s *OrderStore) UpdateStatus(ctx context.Context, code string, action model.OrderAction, reason *string, actor string) (*model.Order, *model.TransitionRecord, error) {
	var order model.Order
	var rec *model.TransitionRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").Preload("Room").
			Where("public_code = ?", code).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", model.ErrNotFound, code)
			}
			return err
		}

		r, err := order.ApplyTransition(action, reason, actor)
		if err != nil {
			return err
		}

		res := tx.Model(&model.Order{}).
			Where("id = ? AND status = ?", order.ID, r.From).
			Updates(map[string]any{
				"status":           order.Status,
				"rejection_reason": order.RejectionReason,
				"updated_at":       order.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// client khác đã ghi trước trong lúc mình validate
			return &model.InvalidTransitionError{From: r.From, Target: r.To, Action: action}
		}

		if err := tx.Create(&model.OrderStatusLog{
			OrderID: order.ID,
			From:    r.From,
			To:      r.To,
			Action:  action,
			Reason:  reason,
			Actor:   actor,
		}).Error; err != nil {
			return err
		}

		rec = r
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, rec, nil
}

func (s *OrderStore) List(ctx context.Context, propertyId uint, filter model.FilterOrderInput) ([]model.Order, int64, error) {
	condition := s.db.WithContext(ctx).Model(&model.Order{}).Where("property_id = ?", propertyId)

	if statuses := ParseStatusSet(filter.Status); len(statuses) > 0 {
		condition = condition.Where("status IN ?", statuses)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		q := "%" + strings.ToLower(search) + "%"
		condition = condition.Where("(LOWER(guest_name) LIKE ? OR LOWER(public_code) LIKE ?)", q, q)
	}

	var totalCount int64
	if err := condition.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)
	if err := condition.Preload("Items").Preload("Room").
		Order("created_at desc, id desc").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, totalCount, nil
}

func (s *OrderStore) History(ctx context.Context, code string) ([]model.OrderStatusLog, error) {
	order, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	var logs []model.OrderStatusLog
	if err := s.db.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Order("id asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// StalePending liệt kê đơn pending quá hạn cho job tự hủy.
func (s *OrderStore) StalePending(ctx context.Context, olderThan time.Time) ([]model.Order, error) {
	var orders []model.Order
	if err := s.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", model.OrderPending, olderThan).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ParseStatusSet tách chuỗi "pending,confirmed" thành danh sách trạng thái hợp lệ,
// bỏ qua giá trị lạ.
func ParseStatusSet(raw string) []model.OrderStatus {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var statuses []model.OrderStatus
	for _, part := range strings.Split(raw, ",") {
		status := model.OrderStatus(strings.TrimSpace(part))
		if status.Valid() {
			statuses = append(statuses, status)
		}
	}
	return statuses
}
