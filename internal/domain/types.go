package domain

// Category identifies the three product lines of the storefront.
type Category string

const (
	CategoryScooter  Category = "scooter"
	CategoryTour     Category = "tour"
	CategoryTransfer Category = "transfer"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryScooter, CategoryTour, CategoryTransfer:
		return true
	}
	return false
}

// Vehicle is an immutable catalog record. The booking engine only reads it.
type Vehicle struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	BasePrice int64    `json:"basePrice"`
	PriceUnit string   `json:"priceUnit"`
	Currency  string   `json:"currency"`
	Capacity  int      `json:"capacity,omitempty"`
	Tags      []string `json:"tags"`
}

// HasTag reports whether the vehicle carries the given feature tag.
func (v Vehicle) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
