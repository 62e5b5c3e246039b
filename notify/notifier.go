package notify

import (
	"log"

	"hotel_manager/model"
)

// Notifier nhận sự kiện sau khi đơn đã chuyển trạng thái thành công.
// Lỗi notifier chỉ được log, không bao giờ rollback hay fail transition.
type Notifier interface {
	Name() string
	Notify(order *model.Order, rec *model.TransitionRecord) error
}

type Dispatcher struct {
	notifiers []Notifier
}

func NewDispatcher(notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{notifiers: notifiers}
}

func (d *Dispatcher) Register(n Notifier) {
	d.notifiers = append(d.notifiers, n)
}

// Dispatch chạy đồng bộ qua từng notifier, nuốt lỗi. Caller muốn fire-and-forget
// thì gọi `go dispatcher.Dispatch(...)` như các chỗ gửi email trong handler.
func (d *Dispatcher) Dispatch(order *model.Order, rec *model.TransitionRecord) {
	for _, n := range d.notifiers {
		if err := n.Notify(order, rec); err != nil {
			log.Printf("notify %s thất bại cho đơn %s (%s -> %s): %v",
				n.Name(), rec.PublicCode, rec.From, rec.To, err)
		}
	}
}
