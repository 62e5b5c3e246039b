package model

// Trạng thái đơn dịch vụ phòng
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderRejected  OrderStatus = "rejected"
	OrderCancelled OrderStatus = "cancelled"
)

// StatusTransitions là nguồn sự thật duy nhất cho vòng đời đơn hàng.
// Trạng thái kết thúc (delivered/rejected/cancelled) không có bước tiếp theo.
var StatusTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderPending:   {OrderConfirmed: true, OrderRejected: true, OrderCancelled: true},
	OrderConfirmed: {OrderPreparing: true, OrderCancelled: true},
	OrderPreparing: {OrderReady: true, OrderCancelled: true},
	OrderReady:     {OrderDelivered: true},
	OrderDelivered: {},
	OrderRejected:  {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := StatusTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := StatusTransitions[s]
	return ok && len(next) == 0
}

func CanTransition(from, to OrderStatus) bool {
	next, ok := StatusTransitions[from]
	return ok && next[to]
}

type OrderAction string

const (
	ActionConfirm       OrderAction = "confirm"
	ActionReject        OrderAction = "reject"
	ActionStartPrepare  OrderAction = "start_preparing"
	ActionMarkReady     OrderAction = "mark_ready"
	ActionMarkDelivered OrderAction = "mark_delivered"
	ActionCancel        OrderAction = "cancel"
)

var actionTargets = map[OrderAction]OrderStatus{
	ActionConfirm:       OrderConfirmed,
	ActionReject:        OrderRejected,
	ActionStartPrepare:  OrderPreparing,
	ActionMarkReady:     OrderReady,
	ActionMarkDelivered: OrderDelivered,
	ActionCancel:        OrderCancelled,
}

// thứ tự hiển thị nút trên dashboard
var actionOrder = []OrderAction{
	ActionConfirm,
	ActionReject,
	ActionStartPrepare,
	ActionMarkReady,
	ActionMarkDelivered,
	ActionCancel,
}

// ResolveAction đổi action verb thành trạng thái đích, có kiểm tra bảng chuyển.
// Hàm thuần, không I/O.
func ResolveAction(current OrderStatus, action OrderAction) (OrderStatus, error) {
	target, ok := actionTargets[action]
	if !ok {
		return "", &UnknownActionError{Action: action}
	}
	if !CanTransition(current, target) {
		return "", &InvalidTransitionError{From: current, Target: target, Action: action}
	}
	return target, nil
}

// AvailableActions trả về các action hợp lệ từ trạng thái hiện tại,
// dùng để render nút thao tác nhanh mà không lặp lại logic bảng chuyển.
func AvailableActions(current OrderStatus) []OrderAction {
	actions := []OrderAction{}
	for _, action := range actionOrder {
		if CanTransition(current, actionTargets[action]) {
			actions = append(actions, action)
		}
	}
	return actions
}
