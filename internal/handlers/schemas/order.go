package schemas

import (
	"time"

	"github.com/Bessima/orderflow/internal/customerror"
	"github.com/Bessima/orderflow/internal/models"
)

// CreateOrderRequest — сырые поля multipart-формы до валидации.
type CreateOrderRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	OrderAmount  string `json:"orderAmount" validate:"required"`
	OrderDate    string `json:"orderDate" validate:"required"`
}

type OrderResponse struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	CustomerName   string    `json:"customerName"`
	OrderAmount    string    `json:"orderAmount"`
	OrderDate      time.Time `json:"orderDate"`
	InvoiceFileURL *string   `json:"invoiceFileUrl"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewOrderResponse(order *models.Order) OrderResponse {
	return OrderResponse{
		ID:             order.ID.String(),
		OrderID:        order.OrderID,
		CustomerName:   order.CustomerName,
		OrderAmount:    order.OrderAmount.StringFixed(2),
		OrderDate:      order.OrderDate,
		InvoiceFileURL: order.InvoiceFileURL,
		CreatedAt:      order.CreatedAt,
	}
}

func NewOrderListResponse(orders []models.Order) []OrderResponse {
	list := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		list = append(list, NewOrderResponse(&orders[i]))
	}
	return list
}

type CreateOrderResponse struct {
	OrderResponse
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string                   `json:"message"`
	Errors  []customerror.FieldError `json:"errors,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
