package model

import (
	"errors"
	"strings"
	"testing"

	"hotel_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() CreateOrderInput {
	return CreateOrderInput{
		GuestName:  "Nguyễn Văn An",
		GuestEmail: "an@example.com",
		Currency:   "vnd",
		Items: []OrderItemInput{
			{ServiceItemID: 1, Name: "Phở bò", Quantity: 2, UnitPrice: 5000},
			{ServiceItemID: 2, Name: "Cà phê sữa đá", Quantity: 1, UnitPrice: 3000},
		},
	}
}

func TestNewOrder(t *testing.T) {
	roomID := uint(7)
	order, err := NewOrder(3, &roomID, validInput())
	require.NoError(t, err)

	assert.Equal(t, OrderPending, order.Status)
	assert.Equal(t, uint(3), order.PropertyID)
	assert.Equal(t, &roomID, order.RoomID)
	assert.Equal(t, "VND", order.Currency)
	assert.True(t, strings.HasPrefix(order.PublicCode, "SVC-"))
	assert.Len(t, order.PublicCode, 12)
	assert.Equal(t, order.PublicCode, strings.ToUpper(order.PublicCode))

	// subtotal tính lại từ danh sách món: 2x5000 + 1x3000
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(10000), order.Items[0].TotalPrice)
	assert.Equal(t, int64(3000), order.Items[1].TotalPrice)
	assert.Equal(t, int64(13000), order.Subtotal)
	assert.Equal(t, int64(13000), order.Total)
}

func TestNewOrderValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateOrderInput)
	}{
		{"thiếu tên khách", func(in *CreateOrderInput) { in.GuestName = "   " }},
		{"không có món nào", func(in *CreateOrderInput) { in.Items = nil }},
		{"tiền tệ sai độ dài", func(in *CreateOrderInput) { in.Currency = "dong" }},
		{"số lượng bằng 0", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }},
		{"số lượng âm", func(in *CreateOrderInput) { in.Items[1].Quantity = -1 }},
		{"đơn giá âm", func(in *CreateOrderInput) { in.Items[0].UnitPrice = -100 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			order, err := NewOrder(1, nil, input)
			require.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

// Vòng đời đầy đủ: pending -> confirmed -> preparing -> ready -> delivered.
func TestApplyTransitionHappyPath(t *testing.T) {
	order, err := NewOrder(1, nil, validInput())
	require.NoError(t, err)

	steps := []struct {
		action OrderAction
		want   OrderStatus
	}{
		{ActionConfirm, OrderConfirmed},
		{ActionStartPrepare, OrderPreparing},
		{ActionMarkReady, OrderReady},
		{ActionMarkDelivered, OrderDelivered},
	}
	for _, step := range steps {
		rec, err := order.ApplyTransition(step.action, nil, "le.thu")
		require.NoError(t, err)
		assert.Equal(t, step.want, order.Status)
		assert.Equal(t, step.want, rec.To)
		assert.Equal(t, step.action, rec.Action)
		assert.Equal(t, "le.thu", rec.Actor)
		assert.Equal(t, order.PublicCode, rec.PublicCode)
	}
	assert.True(t, order.Status.Terminal())
	assert.Nil(t, order.RejectionReason)
	assert.Equal(t, int64(13000), order.Total)
}

func TestApplyTransitionReject(t *testing.T) {
	order, err := NewOrder(1, nil, validInput())
	require.NoError(t, err)

	reason := utils.StringPtr("Món đã hết hàng")
	rec, err := order.ApplyTransition(ActionReject, reason, "le.thu")
	require.NoError(t, err)

	assert.Equal(t, OrderRejected, order.Status)
	require.NotNil(t, order.RejectionReason)
	assert.Equal(t, "Món đã hết hàng", *order.RejectionReason)
	assert.Equal(t, reason, rec.Reason)
}

func TestApplyTransitionInvalidLeavesOrderUntouched(t *testing.T) {
	order, err := NewOrder(1, nil, validInput())
	require.NoError(t, err)
	before := order.UpdatedAt

	// không được nhảy cóc pending -> ready
	rec, err := order.ApplyTransition(ActionMarkReady, nil, "le.thu")
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, OrderPending, order.Status)
	assert.Equal(t, before, order.UpdatedAt)

	var transErr *InvalidTransitionError
	require.True(t, errors.As(err, &transErr))
	assert.Equal(t, OrderPending, transErr.From)
	assert.Equal(t, OrderReady, transErr.Target)
}

func TestApplyTransitionTerminalImmutable(t *testing.T) {
	order, err := NewOrder(1, nil, validInput())
	require.NoError(t, err)
	_, err = order.ApplyTransition(ActionCancel, nil, "guest")
	require.NoError(t, err)

	for _, action := range []OrderAction{ActionConfirm, ActionReject, ActionStartPrepare, ActionMarkReady, ActionMarkDelivered, ActionCancel} {
		_, err := order.ApplyTransition(action, nil, "le.thu")
		require.Error(t, err, "action %s", action)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		assert.Equal(t, OrderCancelled, order.Status)
	}
}

func TestOrderAvailableActions(t *testing.T) {
	order, err := NewOrder(1, nil, validInput())
	require.NoError(t, err)
	assert.Equal(t, []OrderAction{ActionConfirm, ActionReject, ActionCancel}, order.AvailableActions())

	_, err = order.ApplyTransition(ActionConfirm, nil, "le.thu")
	require.NoError(t, err)
	assert.Equal(t, []OrderAction{ActionStartPrepare, ActionCancel}, order.AvailableActions())
}
