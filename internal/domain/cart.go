package domain

import "time"

// ValidSizes is the fixed size enum for cart and order line items.
var ValidSizes = []string{"S", "M", "L", "XL"}

// ValidSize reports whether size is one of S, M, L, XL.
func ValidSize(size string) bool {
	for _, s := range ValidSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Cart belongs to exactly one user. It is created lazily on the first add
// and is only ever emptied, never deleted.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem carries a denormalized snapshot of the product taken at add time.
type CartItem struct {
	ID         string    `json:"id"`
	CartID     string    `json:"cartId"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	ImageURL   string    `json:"imageUrl"`
	Size       string    `json:"size"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Total returns the cart total in cents, sum of price times quantity per line.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// TotalItems returns the summed quantity over all lines.
func (c Cart) TotalItems() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
