package handler

import (
	"hotel_manager/notify"
	"hotel_manager/store"
)

var (
	Orders     *store.OrderStore
	Dispatcher *notify.Dispatcher
)

// Init gắn store và dispatcher cho các handler, gọi một lần từ main sau khi
// kết nối DB.
func Init(orders *store.OrderStore, dispatcher *notify.Dispatcher) {
	Orders = orders
	Dispatcher = dispatcher
}
