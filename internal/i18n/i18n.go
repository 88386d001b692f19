// Package i18n carries the storefront's English/Vietnamese strings.
// Unknown keys echo back so a missing translation degrades visibly
// instead of breaking a render.
package i18n

type Lang string

const (
	LangEN Lang = "en"
	LangVI Lang = "vi"

	DefaultLang = LangEN
)

var translations = map[Lang]map[string]string{
	LangEN: {
		"per_day":  "per day",
		"per_tour": "per tour",
		"per_trip": "per trip",
		"per_person": "per person",

		"days_unit":      "days",
		"discount_label": "discounted",
		"promo_title":    "Long rental discounts",
		"promo_from":     "From",
		"promo_save":     "Save",
		"total_label":    "Total",

		"delivery_pickup":  "Pick up at shop",
		"delivery_deliver": "Deliver to hotel",

		"time_sunrise": "Sunrise (4:30 AM)",
		"time_sunset":  "Sunset (1:30 PM)",
		"time_custom":  "Custom time",
		"tour_sunrise": "Sunrise tour",
		"tour_sunset":  "Sunset tour",
		"tour_custom":  "Custom tour",

		"place_airport":   "Phan Thiet Airport",
		"place_muine":     "Mui Ne",
		"place_phanthiet": "Phan Thiet City",
		"place_dalat":     "Da Lat",
		"place_sanddunes": "White Sand Dunes",

		"toast_success": "Booking sent! We will contact you shortly.",
		"toast_error":   "Could not send the booking, please try again.",
		"route_wrong":   "This route is not available.",

		"msg_greeting":      "New booking",
		"msg_greeting_jeep": "New jeep tour booking",
		"msg_name":          "Name",
		"msg_phone":         "Phone",
		"msg_vehicle":       "Vehicle",
		"msg_date":          "Pickup date",
		"msg_date_jeep":     "Tour date",
		"msg_time":          "Pickup time",
		"msg_time_jeep":     "Tour time",
		"msg_delivery":      "Delivery",
		"msg_notes":         "Notes",
	},
	LangVI: {
		"per_day":  "mỗi ngày",
		"per_tour": "mỗi tour",
		"per_trip": "mỗi chuyến",
		"per_person": "mỗi khách",

		"days_unit":      "ngày",
		"discount_label": "đã giảm",
		"promo_title":    "Ưu đãi thuê dài ngày",
		"promo_from":     "Từ",
		"promo_save":     "Tiết kiệm",
		"total_label":    "Tổng cộng",

		"delivery_pickup":  "Nhận xe tại cửa hàng",
		"delivery_deliver": "Giao xe tận khách sạn",

		"time_sunrise": "Bình minh (4:30 sáng)",
		"time_sunset":  "Hoàng hôn (1:30 chiều)",
		"time_custom":  "Giờ tự chọn",
		"tour_sunrise": "Tour bình minh",
		"tour_sunset":  "Tour hoàng hôn",
		"tour_custom":  "Tour giờ tự chọn",

		"place_airport":   "Sân bay Phan Thiết",
		"place_muine":     "Mũi Né",
		"place_phanthiet": "TP. Phan Thiết",
		"place_dalat":     "Đà Lạt",
		"place_sanddunes": "Đồi Cát Trắng",

		"toast_success": "Đã gửi đặt xe! Chúng tôi sẽ liên hệ ngay.",
		"toast_error":   "Không gửi được đặt xe, vui lòng thử lại.",
		"route_wrong":   "Tuyến đường này không khả dụng.",

		"msg_greeting":      "Đơn đặt xe mới",
		"msg_greeting_jeep": "Đơn đặt tour jeep mới",
		"msg_name":          "Tên khách",
		"msg_phone":         "SĐT",
		"msg_vehicle":       "Xe",
		"msg_date":          "Ngày nhận",
		"msg_date_jeep":     "Ngày tour",
		"msg_time":          "Giờ nhận",
		"msg_time_jeep":     "Giờ tour",
		"msg_delivery":      "Giao nhận",
		"msg_notes":         "Ghi chú",
	},
}

// Valid reports whether the language is supported.
func Valid(l Lang) bool {
	_, ok := translations[l]
	return ok
}

// T resolves a key in the given language, falling back to the default
// language and finally to the key itself.
func T(l Lang, key string) string {
	if m, ok := translations[l]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLang][key]; ok {
		return s
	}
	return key
}
