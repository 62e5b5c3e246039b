package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"hotel_manager/model"

	"github.com/jordan-wright/email"
)

// SendNewOrderAlert báo cho bộ phận trực có đơn mới, dạng text đơn giản.
// Gọi bằng `go` từ handler đặt đơn, lỗi chỉ log.
func SendNewOrderAlert(order *model.Order) {
	to := os.Getenv("STAFF_ALERT_EMAIL")
	if to == "" {
		return
	}

	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d (%d %s)", item.Name, item.Quantity, item.TotalPrice, order.Currency))
	}
	room := "chưa rõ phòng"
	if order.Room != nil {
		room = "phòng " + order.Room.Number
	}

	e := email.NewEmail()
	e.From = "Room Service <room-service@hoasen.example.com>"
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Đơn mới %s - %s", order.PublicCode, room)
	e.Text = []byte(fmt.Sprintf(
		"Khách: %s\nPhòng: %s\nMón:\n%s\nTổng: %d %s\n",
		order.GuestName, room, strings.Join(lines, "\n"), order.Total, order.Currency,
	))

	addr := os.Getenv("SMTP_HOST") + ":587"
	auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
	if err := e.Send(addr, auth); err != nil {
		log.Printf("Lỗi gửi alert đơn mới %s: %v", order.PublicCode, err)
	}
}
