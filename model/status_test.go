package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bảng đầy đủ: 7 trạng thái x 6 action. Sửa bảng chuyển thì phải sửa cả đây.
func TestResolveAction(t *testing.T) {
	cases := []struct {
		current OrderStatus
		action  OrderAction
		want    OrderStatus
		ok      bool
	}{
		{OrderPending, ActionConfirm, OrderConfirmed, true},
		{OrderPending, ActionReject, OrderRejected, true},
		{OrderPending, ActionStartPrepare, "", false},
		{OrderPending, ActionMarkReady, "", false},
		{OrderPending, ActionMarkDelivered, "", false},
		{OrderPending, ActionCancel, OrderCancelled, true},

		{OrderConfirmed, ActionConfirm, "", false},
		{OrderConfirmed, ActionReject, "", false},
		{OrderConfirmed, ActionStartPrepare, OrderPreparing, true},
		{OrderConfirmed, ActionMarkReady, "", false},
		{OrderConfirmed, ActionMarkDelivered, "", false},
		{OrderConfirmed, ActionCancel, OrderCancelled, true},

		{OrderPreparing, ActionConfirm, "", false},
		{OrderPreparing, ActionReject, "", false},
		{OrderPreparing, ActionStartPrepare, "", false},
		{OrderPreparing, ActionMarkReady, OrderReady, true},
		{OrderPreparing, ActionMarkDelivered, "", false},
		{OrderPreparing, ActionCancel, OrderCancelled, true},

		{OrderReady, ActionConfirm, "", false},
		{OrderReady, ActionReject, "", false},
		{OrderReady, ActionStartPrepare, "", false},
		{OrderReady, ActionMarkReady, "", false},
		{OrderReady, ActionMarkDelivered, OrderDelivered, true},
		{OrderReady, ActionCancel, "", false},

		{OrderDelivered, ActionConfirm, "", false},
		{OrderDelivered, ActionReject, "", false},
		{OrderDelivered, ActionStartPrepare, "", false},
		{OrderDelivered, ActionMarkReady, "", false},
		{OrderDelivered, ActionMarkDelivered, "", false},
		{OrderDelivered, ActionCancel, "", false},

		{OrderRejected, ActionConfirm, "", false},
		{OrderRejected, ActionReject, "", false},
		{OrderRejected, ActionStartPrepare, "", false},
		{OrderRejected, ActionMarkReady, "", false},
		{OrderRejected, ActionMarkDelivered, "", false},
		{OrderRejected, ActionCancel, "", false},

		{OrderCancelled, ActionConfirm, "", false},
		{OrderCancelled, ActionReject, "", false},
		{OrderCancelled, ActionStartPrepare, "", false},
		{OrderCancelled, ActionMarkReady, "", false},
		{OrderCancelled, ActionMarkDelivered, "", false},
		{OrderCancelled, ActionCancel, "", false},
	}
	require.Len(t, cases, 42)

	for _, tc := range cases {
		got, err := ResolveAction(tc.current, tc.action)
		if tc.ok {
			require.NoError(t, err, "%s + %s", tc.current, tc.action)
			assert.Equal(t, tc.want, got, "%s + %s", tc.current, tc.action)
		} else {
			require.Error(t, err, "%s + %s", tc.current, tc.action)
			assert.True(t, errors.Is(err, ErrInvalidTransition), "%s + %s", tc.current, tc.action)
		}
	}
}

func TestResolveActionUnknown(t *testing.T) {
	_, err := ResolveAction(OrderPending, OrderAction("teleport"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAction))

	var unknownErr *UnknownActionError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, OrderAction("teleport"), unknownErr.Action)
}

func TestTerminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderConfirmed.Terminal())
	assert.False(t, OrderPreparing.Terminal())
	assert.False(t, OrderReady.Terminal())
	assert.True(t, OrderDelivered.Terminal())
	assert.True(t, OrderRejected.Terminal())
	assert.True(t, OrderCancelled.Terminal())

	// trạng thái lạ không phải terminal, chỉ là không hợp lệ
	assert.False(t, OrderStatus("shipped").Terminal())
	assert.False(t, OrderStatus("shipped").Valid())
}

func TestAvailableActions(t *testing.T) {
	assert.Equal(t, []OrderAction{ActionConfirm, ActionReject, ActionCancel}, AvailableActions(OrderPending))
	assert.Equal(t, []OrderAction{ActionStartPrepare, ActionCancel}, AvailableActions(OrderConfirmed))
	assert.Equal(t, []OrderAction{ActionMarkReady, ActionCancel}, AvailableActions(OrderPreparing))
	assert.Equal(t, []OrderAction{ActionMarkDelivered}, AvailableActions(OrderReady))
	assert.Empty(t, AvailableActions(OrderDelivered))
	assert.Empty(t, AvailableActions(OrderRejected))
	assert.Empty(t, AvailableActions(OrderCancelled))
}
