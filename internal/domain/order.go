package domain

import "time"

// OrderStatusConfirmed is the initial (and currently only) order status.
const OrderStatusConfirmed = "confirmed"

// Order snapshots a cart at checkout time. Items and total are immutable
// once the order is created; only status may transition later.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// OrderItem captures the line independent of any later product mutation.
type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"priceCents"`
}
