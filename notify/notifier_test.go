package notify

import (
	"errors"
	"testing"

	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	name  string
	err   error
	calls []*model.TransitionRecord
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Notify(order *model.Order, rec *model.TransitionRecord) error {
	f.calls = append(f.calls, rec)
	return f.err
}

func TestDispatchReachesAllNotifiers(t *testing.T) {
	first := &fakeNotifier{name: "email"}
	second := &fakeNotifier{name: "whatsapp"}
	d := NewDispatcher(first)
	d.Register(second)

	order := &model.Order{PublicCode: "SVC-ABCD1234", Status: model.OrderConfirmed}
	rec := &model.TransitionRecord{
		PublicCode: order.PublicCode,
		From:       model.OrderPending,
		To:         model.OrderConfirmed,
		Action:     model.ActionConfirm,
	}
	d.Dispatch(order, rec)

	require.Len(t, first.calls, 1)
	require.Len(t, second.calls, 1)
	assert.Equal(t, rec, first.calls[0])
}

// Một notifier hỏng không được chặn các notifier còn lại.
func TestDispatchSwallowsErrors(t *testing.T) {
	broken := &fakeNotifier{name: "email", err: errors.New("smtp chết")}
	healthy := &fakeNotifier{name: "redis"}
	d := NewDispatcher(broken, healthy)

	order := &model.Order{PublicCode: "SVC-ABCD1234", Status: model.OrderRejected}
	rec := &model.TransitionRecord{
		PublicCode: order.PublicCode,
		From:       model.OrderPending,
		To:         model.OrderRejected,
		Action:     model.ActionReject,
	}

	assert.NotPanics(t, func() { d.Dispatch(order, rec) })
	assert.Len(t, broken.calls, 1)
	assert.Len(t, healthy.calls, 1)
}

func TestOrderChannel(t *testing.T) {
	assert.Equal(t, "property:7:orders", OrderChannel(7))
}

func TestConvertPhoneNumber(t *testing.T) {
	client := NewWhatsAppClient("http://localhost:3000", "token")
	assert.Equal(t, "84912345678", client.convertPhoneNumber("0912345678"))
	assert.Equal(t, "84912345678", client.convertPhoneNumber("84912345678"))
	assert.Equal(t, "", client.convertPhoneNumber(""))
}
