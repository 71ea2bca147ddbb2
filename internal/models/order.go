package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order — сохранённая запись заказа. Identity-поля (ID, OrderID, CreatedAt)
// назначаются при вставке и больше не меняются.
type Order struct {
	ID             uuid.UUID
	OrderID        string
	CustomerName   string
	OrderAmount    decimal.Decimal
	OrderDate      time.Time
	InvoiceFileURL *string
	CreatedAt      time.Time
}

// NewOrder — провалидированный payload для создания заказа.
type NewOrder struct {
	CustomerName string
	OrderAmount  decimal.Decimal
	OrderDate    time.Time
}

// InvoiceFile — принятый файл счёта, целиком в памяти.
type InvoiceFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *InvoiceFile) Extension() string {
	for i := len(f.Name) - 1; i >= 0; i-- {
		if f.Name[i] == '.' {
			return f.Name[i+1:]
		}
	}
	return "pdf"
}

// FormatOrderID форматирует человекочитаемый номер заказа ORD-NNNNN.
func FormatOrderID(n int) string {
	return fmt.Sprintf("ORD-%05d", n)
}
