package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Bessima/orderflow/internal/customerror"
	"github.com/Bessima/orderflow/internal/handlers/schemas"
	"github.com/Bessima/orderflow/internal/middlewares/logger"
	"github.com/Bessima/orderflow/internal/models"
	"github.com/Bessima/orderflow/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxInvoiceSize     = 10 << 20 // 10MB
	invoiceContentType = "application/pdf"
)

type OrderSubmitterI interface {
	Submit(ctx context.Context, payload models.NewOrder, invoice *models.InvoiceFile) (*models.Order, error)
}

type OrdersHandler struct {
	orderService OrderSubmitterI
	OrderStorage repository.OrderStorageRepositoryI
}

func NewOrderHandler(orderService OrderSubmitterI, storage repository.OrderStorageRepositoryI) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		OrderStorage: storage,
	}
}

func (h *OrdersHandler) Add(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseMultipartForm(maxInvoiceSize); err != nil {
		writeJSON(w, http.StatusBadRequest, schemas.ErrorResponse{
			Message: "File upload error",
			Error:   err.Error(),
		})
		logger.Log.Error(fmt.Sprintf("can't parse multipart form: %v", err))
		return
	}

	req := schemas.CreateOrderRequest{
		CustomerName: r.FormValue("customerName"),
		OrderAmount:  r.FormValue("orderAmount"),
		OrderDate:    r.FormValue("orderDate"),
	}

	payload, validationErr := req.Validate()
	if validationErr != nil {
		writeJSON(w, validationErr.GetHTTPCode(), schemas.ErrorResponse{
			Message: "Validation error",
			Errors:  validationErr.Fields,
		})
		logger.Log.Warn(validationErr.Error())
		return
	}

	invoice, acceptErr := readInvoiceFile(r)
	if acceptErr != nil {
		writeJSON(w, acceptErr.GetHTTPCode(), schemas.ErrorResponse{
			Message: "File upload error",
			Error:   acceptErr.Error(),
		})
		logger.Log.Warn(acceptErr.Error())
		return
	}

	order, err := h.orderService.Submit(r.Context(), *payload, invoice)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("order was not created, error: %v", err))
		writeJSON(w, httpCodeFor(err), schemas.ErrorResponse{Message: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, schemas.CreateOrderResponse{
		OrderResponse: schemas.NewOrderResponse(order),
		Message:       "Order created successfully",
	})
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var order *models.Order
	var err error

	// Сначала пробуем системный UUID, затем человекочитаемый ORD-NNNNN.
	if systemID, parseErr := uuid.Parse(id); parseErr == nil {
		order, err = h.OrderStorage.GetByID(r.Context(), systemID)
		if err != nil {
			logger.Log.Error(fmt.Sprintf("order was not fetched, error: %v", err))
			writeJSON(w, httpCodeFor(err), schemas.ErrorResponse{Message: "Internal server error"})
			return
		}
	}

	if order == nil {
		order, err = h.OrderStorage.GetByOrderID(r.Context(), id)
		if err != nil {
			logger.Log.Error(fmt.Sprintf("order was not fetched, error: %v", err))
			writeJSON(w, httpCodeFor(err), schemas.ErrorResponse{Message: "Internal server error"})
			return
		}
	}

	if order == nil {
		writeJSON(w, http.StatusNotFound, schemas.ErrorResponse{Message: "Order not found"})
		return
	}

	writeJSON(w, http.StatusOK, schemas.NewOrderResponse(order))
}

func (h *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderStorage.GetAll(r.Context())
	if err != nil {
		logger.Log.Error(fmt.Sprintf("orders were not fetched, error: %v", err))
		writeJSON(w, httpCodeFor(err), schemas.ErrorResponse{Message: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, schemas.NewOrderListResponse(orders))
}

// readInvoiceFile принимает опциональный PDF из поля invoiceFile.
// Нарушение лимита или типа содержимого отклоняет запрос целиком,
// до каких-либо записей в хранилище.
func readInvoiceFile(r *http.Request) (*models.InvoiceFile, *customerror.UploadAcceptanceError) {
	file, header, err := r.FormFile("invoiceFile")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, customerror.NewUploadAcceptanceError("invalid invoice file")
	}
	defer file.Close()

	if header.Size > maxInvoiceSize {
		return nil, customerror.NewUploadAcceptanceError("file exceeds the 10MB limit")
	}
	if contentType := header.Header.Get("Content-Type"); contentType != invoiceContentType {
		return nil, customerror.NewUploadAcceptanceError("only PDF files are allowed")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, customerror.NewUploadAcceptanceError("can't read invoice file")
	}

	return &models.InvoiceFile{
		Name:        header.Filename,
		ContentType: invoiceContentType,
		Data:        data,
	}, nil
}

func httpCodeFor(err error) int {
	var customErr customerror.CustomError
	if errors.As(err, &customErr) {
		return customErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Error(fmt.Sprintf("error encoding response: %v", err))
	}
}
