// Package places holds the hotel directory backing the delivery and
// pickup-address autocomplete.
package places

import "strings"

// Hotel is one directory entry.
type Hotel struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// hotelDirectory covers the Phan Thiet - Mui Ne strip. The booking form
// accepts free text too; the directory only feeds suggestions.
var hotelDirectory = []Hotel{
	{"Anantara Mui Ne Resort", "12A Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Mũi Né Bay Resort", "59 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Pandanus Resort", "3 Nguyễn Hữu Thọ, Mũi Né, Phan Thiết"},
	{"Sea Links Beach Hotel", "Km 9, Nguyễn Thông, Phú Hải, Phan Thiết"},
	{"Victoria Phan Thiet Beach Resort", "Km 9, Phú Hài, Phan Thiết"},
	{"Sailing Club Mui Ne", "24 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"The Cliff Resort & Residences", "Khu 5, Phú Hài, Phan Thiết"},
	{"Novotel Phan Thiet", "1 Nguyễn Đình Chiểu, Phú Hài, Phan Thiết"},
	{"Centara Mirage Resort Mui Ne", "Huỳnh Thúc Kháng, Hàm Tiến, Phan Thiết"},
	{"Mia Resort Mui Ne", "24 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Allezboo Beach Resort", "8 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Bamboo Village Beach Resort", "38 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Blue Ocean Resort", "54 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Coco Beach Resort", "58 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Mui Ne Hills Budget Hotel", "69 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Sunny Beach Resort", "64-66 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Lotus Mui Ne Resort", "Khu 5, Phú Hài, Phan Thiết"},
	{"Romana Resort & Spa", "Km 8, Phú Hài, Phan Thiết"},
	{"Seahorse Resort & Spa", "16 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Amiana Resort Phan Thiet", "2 Nguyễn Đình Chiểu, Phú Hài, Phan Thiết"},
	{"Aroma Beach Resort & Spa", "Khu 5, Phú Hài, Phan Thiết"},
	{"Champa Resort & Spa", "2 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Fiore Healthy Resort", "Tiến Thành, Phan Thiết"},
	{"Grace Boutique Resort", "144A Nguyễn Đình Chiểu, Mũi Né, Phan Thiết"},
	{"Hoàng Ngọc Beach Resort", "152 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Long Beach Resort", "7 Nguyễn Đình Chiểu, Phú Hài, Phan Thiết"},
	{"Muine de Century Beach Resort", "Huỳnh Thúc Kháng, Hàm Tiến, Phan Thiết"},
	{"Phan Thiet Ocean Dunes Resort", "1 Tôn Đức Thắng, Phú Hài, Phan Thiết"},
	{"Sài Gòn - Mũi Né Resort", "56-97 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Unique Mui Ne Resort", "20B Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Tien Dat Resort & Spa", "94A Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Novela Mui Ne Resort & Spa", "96A Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Palado Hotel Mui Ne", "98B Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"The Anam Mui Ne", "18 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Sea Lion Beach Resort", "12 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Terracotta Resort & Spa", "28 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Cham Villas Boutique Resort", "32 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Swiss Village Resort & Spa", "44 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Vinh Sương Seaside Hotel", "46 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
	{"Sunsea Resort", "50 Nguyễn Đình Chiểu, Hàm Tiến, Phan Thiết"},
}

// All returns the directory in display order.
func All() []Hotel {
	out := make([]Hotel, len(hotelDirectory))
	copy(out, hotelDirectory)
	return out
}

// Search filters the directory with a case-insensitive substring match.
// Queries shorter than two characters return the whole list, matching
// the storefront autocomplete. withAddress widens the match to the
// address field.
func Search(query string, withAddress bool) []Hotel {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < 2 {
		return All()
	}

	var out []Hotel
	for _, h := range hotelDirectory {
		if strings.Contains(strings.ToLower(h.Name), q) {
			out = append(out, h)
			continue
		}
		if withAddress && strings.Contains(strings.ToLower(h.Address), q) {
			out = append(out, h)
		}
	}
	return out
}
