package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var menuScheduler gocron.Scheduler

// AutoResetMenuAvailability mở bán lại các món ăn/uống bị bếp đánh dấu hết hàng
// trong ngày. Chạy mỗi sáng trước giờ phục vụ; món amenity/spa tắt tay thì giữ nguyên.
func AutoResetMenuAvailability() {
	log.Println("[CRON] AutoResetMenuAvailability triggered")

	result := database.DB.Model(&model.ServiceItem{}).
		Where("is_available = ? AND category IN ?", false, []string{"food", "drink"}).
		Update("is_available", true)

	if result.Error != nil {
		log.Printf("Lỗi mở bán lại thực đơn: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Đã mở bán lại %d món cho ngày mới", result.RowsAffected)
	}
}

func StartMenuScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	menuScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(5, 0, 0),
			),
		),
		gocron.NewTask(AutoResetMenuAvailability),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Scheduler thực đơn đã khởi động (05:00 hằng ngày)")
}

func StopMenuScheduler() {
	if menuScheduler != nil {
		_ = menuScheduler.Shutdown()
	}
}
