// Package notify relays confirmed bookings to the operator's Telegram
// chat via the Bot API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vochicuongg/mrleetravel/internal/booking"
	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

const telegramAPI = "https://api.telegram.org"

// TelegramSender posts booking messages with the Bot API sendMessage
// call. BaseURL and Client are overridable for tests.
type TelegramSender struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Client   *http.Client
}

func (s TelegramSender) base() string {
	if s.BaseURL != "" {
		return strings.TrimRight(s.BaseURL, "/")
	}
	return telegramAPI
}

func (s TelegramSender) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}

// Enabled reports whether the relay is configured at all.
func (s TelegramSender) Enabled() bool {
	return s.BotToken != "" && s.ChatID != ""
}

type sendMessageReq struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResp struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts the booking message and waits for the Bot API verdict.
func (s TelegramSender) Send(ctx context.Context, p booking.Payload) error {
	if !s.Enabled() {
		return domain.InternalError{Msg: "telegram chưa được cấu hình"}
	}

	body, err := json.Marshal(sendMessageReq{
		ChatID:    s.ChatID,
		Text:      BookingMessage(p, time.Now()),
		ParseMode: "HTML",
	})
	if err != nil {
		return domain.InternalError{Msg: "không tạo được tin nhắn", Err: err}
	}

	url := s.base() + "/bot" + s.BotToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.InternalError{Msg: "không tạo được request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client().Do(req)
	if err != nil {
		return domain.InternalError{Msg: "không gửi được tin nhắn", Err: err}
	}
	defer resp.Body.Close()

	var out sendMessageResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.InternalError{Msg: "phản hồi telegram không hợp lệ", Err: err}
	}
	if !out.OK {
		return domain.InternalError{Msg: "telegram từ chối: " + out.Description}
	}
	return nil
}

// SendAsync fires the relay without blocking the submit path. Failures
// are logged; the booking itself has already been accepted.
func (s TelegramSender) SendAsync(requestID string, p booking.Payload) {
	if !s.Enabled() {
		utils.LogEvent(requestID, "notify", "telegram", "bỏ qua: chưa cấu hình")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.Send(ctx, p); err != nil {
			utils.LogEvent(requestID, "notify", "telegram", "gửi thất bại: "+err.Error())
			return
		}
		utils.LogEvent(requestID, "notify", "telegram", "đã gửi đơn "+p.VehicleID)
	}()
}

// BookingMessage renders the Vietnamese HTML message for one booking.
// Jeep tours carry their own header and field labels.
func BookingMessage(p booking.Payload, now time.Time) string {
	jeep := p.Category == domain.CategoryTour

	header := "🚀 <b>ĐƠN ĐẶT XE MỚI</b>"
	dateLabel, timeLabel := "Ngày", "Giờ"
	if jeep {
		header = "🚙 <b>ĐƠN ĐẶT TOUR JEEP MỚI</b>"
		dateLabel, timeLabel = "Ngày tour", "Giờ tour"
	}

	lines := []string{
		header,
		"━━━━━━━━━━━━━━━",
		"👤 <b>Tên KH:</b> " + esc(p.CustomerName),
		"📱 <b>SĐT:</b> " + esc(p.CustomerPhone),
		"🚗 <b>Xe:</b> " + esc(p.VehicleLabel),
		"💰 <b>Giá:</b> " + esc(p.PriceLine),
		"📅 <b>" + dateLabel + ":</b> " + esc(p.Date),
		"⏰ <b>" + timeLabel + ":</b> " + esc(timeText(p)),
	}

	switch p.Category {
	case domain.CategoryScooter:
		if p.ReturnDate != "" {
			lines = append(lines, "🔁 <b>Ngày trả:</b> "+esc(p.ReturnDate))
		}
		lines = append(lines, "🚚 <b>Giao xe:</b> "+esc(deliveryText(p)))
	case domain.CategoryTour:
		if p.GroupSize > 0 {
			lines = append(lines, fmt.Sprintf("👥 <b>Số khách:</b> %d", p.GroupSize))
		}
		if p.HotelName != "" {
			lines = append(lines, "🏨 <b>Đón tại:</b> "+esc(hotelText(p)))
		}
	case domain.CategoryTransfer:
		lines = append(lines, "📍 <b>Tuyến:</b> "+esc(string(p.Pickup)+" → "+string(p.Dropoff)))
		if p.HotelName != "" {
			lines = append(lines, "🏨 <b>Khách sạn:</b> "+esc(hotelText(p)))
		}
	}

	if p.Notes != "" {
		lines = append(lines, "📝 <b>Ghi chú:</b> "+esc(p.Notes))
	}
	lines = append(lines,
		"━━━━━━━━━━━━━━━",
		"🕐 "+timestamp(now),
	)
	return strings.Join(lines, "\n")
}

func timeText(p booking.Payload) string {
	switch p.Time {
	case "tour_sunrise":
		return "Bình minh (4:30 sáng)"
	case "tour_sunset":
		return "Hoàng hôn (1:30 chiều)"
	case "tour_custom":
		return "Giờ tự chọn"
	}
	return p.Time
}

func deliveryText(p booking.Payload) string {
	if p.Delivery == booking.DeliveryDeliver {
		if p.HotelName != "" {
			return "Giao tận nơi - " + hotelText(p)
		}
		return "Giao tận nơi"
	}
	return "Nhận tại cửa hàng"
}

func hotelText(p booking.Payload) string {
	if p.HotelAddress != "" {
		return p.HotelName + ", " + p.HotelAddress
	}
	return p.HotelName
}

// timestamp renders the operator-local send time, fixed at UTC+7.
func timestamp(now time.Time) string {
	vn := now.UTC().Add(7 * time.Hour)
	return fmt.Sprintf("%02d/%02d/%d %02d:%02d",
		vn.Day(), int(vn.Month()), vn.Year(), vn.Hour(), vn.Minute())
}

// esc escapes the two characters Telegram's HTML mode cares about.
// Empty fields render as a dash.
func esc(s string) string {
	if s == "" {
		return "—"
	}
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
