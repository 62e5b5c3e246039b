package helper

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"hotel_manager/config"
	"hotel_manager/model"
	"hotel_manager/notify"
	"hotel_manager/store"
	"hotel_manager/utils"

	"github.com/robfig/cron/v3"
)

var sweeperScheduler *cron.Cron

// SweepStaleOrders hủy các đơn pending không được bếp xác nhận trong thời hạn.
// Hủy qua UpdateStatus như mọi transition khác, không ghi status trực tiếp.
func SweepStaleOrders(orders *store.OrderStore, dispatcher *notify.Dispatcher, maxAge time.Duration) {
	log.Println("[CRON] SweepStaleOrders triggered")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stale, err := orders.StalePending(ctx, time.Now().Add(-maxAge))
	if err != nil {
		log.Printf("Lỗi khi quét đơn quá hạn: %v", err)
		return
	}

	reason := utils.StringPtr("Đơn quá hạn không được xác nhận")
	for _, o := range stale {
		updated, rec, err := orders.UpdateStatus(ctx, o.PublicCode, model.ActionCancel, reason, "system")
		if err != nil {
			// đơn có thể vừa được nhân viên xử lý, bỏ qua
			if errors.Is(err, model.ErrInvalidTransition) {
				continue
			}
			log.Printf("Lỗi tự hủy đơn %s: %v", o.PublicCode, err)
			continue
		}
		log.Printf("Tự hủy đơn quá hạn %s", o.PublicCode)
		dispatcher.Dispatch(updated, rec)
	}
}

func StartOrderSweeper(orders *store.OrderStore, dispatcher *notify.Dispatcher) {
	maxAgeMinutes, err := strconv.Atoi(config.ConfigOr("ORDER_PENDING_MAX_AGE_MINUTES", "60"))
	if err != nil || maxAgeMinutes <= 0 {
		maxAgeMinutes = 60
	}
	maxAge := time.Duration(maxAgeMinutes) * time.Minute

	sweeperScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 15 phút (không cần mỗi phút)
	_, err = sweeperScheduler.AddFunc("*/15 * * * *", func() {
		SweepStaleOrders(orders, dispatcher, maxAge)
	})
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler quét đơn: %v", err)
		return
	}

	sweeperScheduler.Start()
	log.Println("Scheduler quét đơn quá hạn đã khởi động (mỗi 15 phút)")
}

// Dừng scheduler khi tắt server
func StopOrderSweeper() {
	if sweeperScheduler != nil {
		sweeperScheduler.Stop()
	}
}
