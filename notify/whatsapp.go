package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hotel_manager/model"
)

// WhatsAppClient gọi gateway WhatsApp qua HTTP JSON.
type WhatsAppClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewWhatsAppClient(baseURL, token string) *WhatsAppClient {
	return &WhatsAppClient{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Đổi số 0xxx sang định dạng quốc tế 84xxx
func (c *WhatsAppClient) convertPhoneNumber(phone string) string {
	if strings.HasPrefix(phone, "0") {
		return "84" + phone[1:]
	}
	return phone
}

func (c *WhatsAppClient) SendTextMessage(phone, message string) error {
	requestData := sendMessageRequest{
		Phone:   c.convertPhoneNumber(phone),
		Message: message,
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return fmt.Errorf("failed to marshal request data: %w", err)
	}

	url := fmt.Sprintf("%s/send/message", c.BaseURL)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if resp.StatusCode >= 400 || !result.Success {
		return fmt.Errorf("whatsapp gateway: %s (status %d)", result.Message, resp.StatusCode)
	}
	return nil
}

var statusMessages = map[model.OrderStatus]string{
	model.OrderConfirmed: "Đơn %s đã được xác nhận, chúng tôi sẽ chuẩn bị ngay.",
	model.OrderPreparing: "Đơn %s đang được chuẩn bị.",
	model.OrderReady:     "Đơn %s đã sẵn sàng và sẽ được mang lên phòng.",
	model.OrderDelivered: "Đơn %s đã được giao. Cảm ơn quý khách!",
	model.OrderRejected:  "Rất tiếc, đơn %s đã bị từ chối. %s",
	model.OrderCancelled: "Đơn %s đã bị hủy.",
}

// WhatsAppNotifier nhắn cho khách khi đơn đổi trạng thái, nếu khách có số điện thoại.
type WhatsAppNotifier struct {
	client *WhatsAppClient
}

func NewWhatsAppNotifier(client *WhatsAppClient) *WhatsAppNotifier {
	return &WhatsAppNotifier{client: client}
}

func (n *WhatsAppNotifier) Name() string { return "whatsapp" }

func (n *WhatsAppNotifier) Notify(order *model.Order, rec *model.TransitionRecord) error {
	if order.GuestPhone == "" {
		return nil
	}
	format, ok := statusMessages[rec.To]
	if !ok {
		return nil
	}

	var message string
	if rec.To == model.OrderRejected {
		reason := ""
		if rec.Reason != nil {
			reason = "Lý do: " + *rec.Reason
		}
		message = fmt.Sprintf(format, order.PublicCode, reason)
	} else {
		message = fmt.Sprintf(format, order.PublicCode)
	}

	return n.client.SendTextMessage(order.GuestPhone, message)
}
