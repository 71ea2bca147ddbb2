package schemas

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/Bessima/orderflow/internal/customerror"
	"github.com/Bessima/orderflow/internal/models"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var orderDateLayouts = []string{time.RFC3339, "2006-01-02"}

var validate = newValidator()

// newValidator настраивает validator так, чтобы в ошибках были json-имена полей.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate — чистая проверка payload без обращений к хранилищу и сети.
// Возвращает либо готовый к вставке NewOrder, либо ошибку со списком
// всех невалидных полей.
func (req CreateOrderRequest) Validate() (*models.NewOrder, *customerror.ValidationError) {
	fields := make([]customerror.FieldError, 0, 3)

	if err := validate.Struct(req); err != nil {
		var verrs validatorv10.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, customerror.FieldError{
					Field:   fe.Field(),
					Message: "is required",
				})
			}
		}
	}

	out := models.NewOrder{}

	if req.CustomerName != "" {
		name := strings.TrimSpace(req.CustomerName)
		if name == "" {
			fields = append(fields, customerror.FieldError{
				Field:   "customerName",
				Message: "must not be empty",
			})
		} else {
			out.CustomerName = name
		}
	}

	if req.OrderAmount != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(req.OrderAmount))
		switch {
		case err != nil:
			fields = append(fields, customerror.FieldError{
				Field:   "orderAmount",
				Message: "must be a number",
			})
		case !amount.IsPositive():
			fields = append(fields, customerror.FieldError{
				Field:   "orderAmount",
				Message: "must be greater than 0",
			})
		default:
			out.OrderAmount = amount
		}
	}

	if req.OrderDate != "" {
		date, err := parseOrderDate(strings.TrimSpace(req.OrderDate))
		if err != nil {
			fields = append(fields, customerror.FieldError{
				Field:   "orderDate",
				Message: "must be a valid date",
			})
		} else {
			out.OrderDate = date
		}
	}

	if len(fields) > 0 {
		return nil, customerror.NewValidationError(fields)
	}
	return &out, nil
}

func parseOrderDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range orderDateLayouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
