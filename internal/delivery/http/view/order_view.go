package view

import (
	"strconv"

	"saletafood/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderItemView is the wire representation of one order line.
type OrderItemView struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderView is the wire representation of an order.
type OrderView struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Status    string          `json:"status"`
	Total     float64         `json:"total"`
	Items     []OrderItemView `json:"items"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// NewOrderView maps a single order with its items.
func NewOrderView(order *entity.Order) OrderView {
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemView{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     decimalToFloat(item.Price),
		})
	}

	return OrderView{
		ID:        order.ID.String(),
		UserID:    order.UserID.String(),
		Status:    order.Status.String(),
		Total:     decimalToFloat(order.Total),
		Items:     items,
		CreatedAt: formatTime(order.CreatedAt),
		UpdatedAt: formatTime(order.UpdatedAt),
	}
}

// NewOrderViews maps a list of orders, keeping order.
func NewOrderViews(orders []*entity.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, NewOrderView(order))
	}

	return views
}

func decimalToFloat(value decimal.Decimal) float64 {
	parsed, err := strconv.ParseFloat(value.String(), 64)
	if err != nil {
		return 0
	}

	return parsed
}
