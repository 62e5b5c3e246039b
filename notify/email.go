package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"strconv"

	"hotel_manager/model"
	"hotel_manager/utils"

	"gopkg.in/gomail.v2"
)

var statusEmailSubjects = map[model.OrderStatus]string{
	model.OrderConfirmed: "Đơn dịch vụ phòng đã được xác nhận",
	model.OrderPreparing: "Đơn dịch vụ phòng đang được chuẩn bị",
	model.OrderReady:     "Đơn dịch vụ phòng đã sẵn sàng",
	model.OrderDelivered: "Đơn dịch vụ phòng đã được giao",
	model.OrderRejected:  "Đơn dịch vụ phòng đã bị từ chối",
	model.OrderCancelled: "Đơn dịch vụ phòng đã bị hủy",
}

var orderStatusTmpl = template.Must(template.New("order_status").Parse(`
<h2>{{.Subject}}</h2>
<p>Xin chào {{.GuestName}},</p>
<p>Đơn <b>{{.OrderCode}}</b> của quý khách vừa chuyển sang trạng thái <b>{{.Status}}</b>.</p>
{{if .Reason}}<p>Lý do: {{.Reason}}</p>{{end}}
<p>Tổng tiền: {{.Total}} {{.Currency}}</p>
<p>Quý khách có thể quét mã QR đính kèm để theo dõi đơn.</p>
<img src="cid:order_qr" alt="QR"/>
`))

type orderEmailData struct {
	Subject   string
	GuestName string
	OrderCode string
	Status    string
	Reason    string
	Total     string
	Currency  string
}

// GuestEmailNotifier gửi email HTML cho khách mỗi lần đơn đổi trạng thái,
// kèm QR chứa mã đơn để tra cứu.
type GuestEmailNotifier struct {
	From string
}

func NewGuestEmailNotifier() *GuestEmailNotifier {
	return &GuestEmailNotifier{From: "Hoa Sen Hotel <room-service@hoasen.example.com>"}
}

func (n *GuestEmailNotifier) Name() string { return "guest-email" }

func (n *GuestEmailNotifier) Notify(order *model.Order, rec *model.TransitionRecord) error {
	if order.GuestEmail == "" {
		return nil
	}
	subject, ok := statusEmailSubjects[rec.To]
	if !ok {
		return nil
	}

	data := orderEmailData{
		Subject:   subject,
		GuestName: order.GuestName,
		OrderCode: order.PublicCode,
		Status:    string(rec.To),
		Total:     strconv.FormatInt(order.Total, 10),
		Currency:  order.Currency,
	}
	if rec.Reason != nil {
		data.Reason = *rec.Reason
	}

	var htmlBody bytes.Buffer
	if err := orderStatusTmpl.Execute(&htmlBody, data); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.From)
	m.SetHeader("To", order.GuestEmail)
	m.SetHeader("Subject", fmt.Sprintf("%s - Mã đơn: %s", subject, order.PublicCode))
	m.SetBody("text/html", htmlBody.String())

	// Nhúng QR code chứa mã đơn
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err == nil {
		m.Embed("qr_order.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrBytes)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type":        {"image/png"},
			"Content-ID":          {"<order_qr>"},
			"Content-Disposition": {"inline"},
		}))
	}

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), 587, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
