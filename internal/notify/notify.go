package notify

import (
	"context"
	"fmt"
	"strings"

	"canvas-store/internal/domain"
)

// Dispatcher sends order confirmations. Implementations are best-effort:
// the checkout flow swallows any error returned here.
type Dispatcher interface {
	OrderConfirmed(ctx context.Context, order *domain.Order, user *domain.User) error
}

// Confirmation is the message payload handed to the downstream mailer.
type Confirmation struct {
	OrderID    string             `json:"orderId"`
	UserID     string             `json:"userId"`
	Email      string             `json:"email"`
	Name       string             `json:"name"`
	Subject    string             `json:"subject"`
	Body       string             `json:"body"`
	Status     string             `json:"status"`
	TotalCents int64              `json:"totalCents"`
	Items      []domain.OrderItem `json:"items"`
	CreatedAt  string             `json:"createdAt"`
}

// NewConfirmation renders the confirmation message for an order.
func NewConfirmation(order *domain.Order, user *domain.User) Confirmation {
	return Confirmation{
		OrderID:    order.ID,
		UserID:     order.UserID,
		Email:      user.Email,
		Name:       user.Name,
		Subject:    fmt.Sprintf("Order Confirmation - Canvas #%s", order.ID),
		Body:       confirmationBody(order, user),
		Status:     order.Status,
		TotalCents: order.TotalCents,
		Items:      order.Items,
		CreatedAt:  order.CreatedAt.UTC().Format("January 2, 2006"),
	}
}

func confirmationBody(order *domain.Order, user *domain.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", user.Name)
	b.WriteString("We're excited to confirm that your order has been successfully placed.\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Order Date: %s\n", order.CreatedAt.UTC().Format("January 2, 2006"))
	fmt.Fprintf(&b, "Status: %s\n\n", capitalize(order.Status))
	b.WriteString("Order Summary:\n")
	for _, item := range order.Items {
		lineTotal := item.PriceCents * int64(item.Quantity)
		fmt.Fprintf(&b, "  %s (size %s) x%d @ %s = %s\n",
			item.ProductName, item.Size, item.Quantity,
			formatCents(item.PriceCents), formatCents(lineTotal))
	}
	fmt.Fprintf(&b, "\nTotal Amount: %s\n\n", formatCents(order.TotalCents))
	b.WriteString("Thank you for shopping with Canvas!\n")
	return b.String()
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
