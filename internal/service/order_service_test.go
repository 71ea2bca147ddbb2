package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Bessima/orderflow/internal/clients/sns"
	"github.com/Bessima/orderflow/internal/customerror"
	"github.com/Bessima/orderflow/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository - мок для OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order models.NewOrder) (*models.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

// MockS3Client - мок для загрузчика счетов
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) UploadInvoice(ctx context.Context, file *models.InvoiceFile, orderID string) (string, error) {
	args := m.Called(ctx, file, orderID)
	return args.String(0), args.Error(1)
}

// MockSNSClient - мок для нотификатора
type MockSNSClient struct {
	mock.Mock
}

func (m *MockSNSClient) PublishOrderCreated(ctx context.Context, message sns.OrderCreatedMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func newPersistedOrder() *models.Order {
	amount, _ := decimal.NewFromString("19.9")
	return &models.Order{
		ID:           uuid.New(),
		OrderID:      "ORD-00042",
		CustomerName: "Acme Corp",
		OrderAmount:  amount,
		OrderDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Now(),
	}
}

func TestOrderService_Submit_WithInvoice(t *testing.T) {
	// Arrange
	mockRepo := new(MockOrderRepository)
	mockS3 := new(MockS3Client)
	mockSNS := new(MockSNSClient)
	service := NewOrderService(mockRepo, mockS3, mockSNS)

	ctx := context.Background()
	persisted := newPersistedOrder()
	payload := models.NewOrder{
		CustomerName: persisted.CustomerName,
		OrderAmount:  persisted.OrderAmount,
		OrderDate:    persisted.OrderDate,
	}
	invoice := &models.InvoiceFile{Name: "invoice.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
	uploadedURL := "https://order-management-invoices.s3.amazonaws.com/invoices/ORD-00042_x.pdf"

	mockRepo.On("Create", ctx, payload).Return(persisted, nil)
	mockS3.On("UploadInvoice", ctx, invoice, persisted.OrderID).Return(uploadedURL, nil)
	mockSNS.On("PublishOrderCreated", ctx, mock.MatchedBy(func(msg sns.OrderCreatedMessage) bool {
		return msg.OrderID == persisted.OrderID &&
			msg.CustomerName == persisted.CustomerName &&
			msg.OrderAmount == "19.90"
	})).Return(nil)

	// Act
	order, err := service.Submit(ctx, payload, invoice)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, order.InvoiceFileURL)
	assert.Equal(t, uploadedURL, *order.InvoiceFileURL)
	mockRepo.AssertExpectations(t)
	mockS3.AssertExpectations(t)
	mockSNS.AssertExpectations(t)
}

func TestOrderService_Submit_WithoutInvoice(t *testing.T) {
	// Arrange
	mockRepo := new(MockOrderRepository)
	mockS3 := new(MockS3Client)
	mockSNS := new(MockSNSClient)
	service := NewOrderService(mockRepo, mockS3, mockSNS)

	ctx := context.Background()
	persisted := newPersistedOrder()
	payload := models.NewOrder{
		CustomerName: persisted.CustomerName,
		OrderAmount:  persisted.OrderAmount,
		OrderDate:    persisted.OrderDate,
	}

	mockRepo.On("Create", ctx, payload).Return(persisted, nil)
	mockSNS.On("PublishOrderCreated", ctx, mock.Anything).Return(nil)

	// Act
	order, err := service.Submit(ctx, payload, nil)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, order)
	assert.Nil(t, order.InvoiceFileURL)
	mockS3.AssertNotCalled(t, "UploadInvoice")
	mockRepo.AssertExpectations(t)
	mockSNS.AssertExpectations(t)
}

func TestOrderService_Submit_UploadFailureIsSwallowed(t *testing.T) {
	// Arrange
	mockRepo := new(MockOrderRepository)
	mockS3 := new(MockS3Client)
	mockSNS := new(MockSNSClient)
	service := NewOrderService(mockRepo, mockS3, mockSNS)

	ctx := context.Background()
	persisted := newPersistedOrder()
	payload := models.NewOrder{
		CustomerName: persisted.CustomerName,
		OrderAmount:  persisted.OrderAmount,
		OrderDate:    persisted.OrderDate,
	}
	invoice := &models.InvoiceFile{Name: "invoice.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}

	mockRepo.On("Create", ctx, payload).Return(persisted, nil)
	mockS3.On("UploadInvoice", ctx, invoice, persisted.OrderID).Return("", errors.New("s3 unavailable"))
	mockSNS.On("PublishOrderCreated", ctx, mock.Anything).Return(nil)

	// Act
	order, err := service.Submit(ctx, payload, invoice)

	// Assert: заказ создан, URL счёта отсутствует, нотификация всё равно ушла
	assert.NoError(t, err)
	require.NotNil(t, order)
	assert.Nil(t, order.InvoiceFileURL)
	mockRepo.AssertExpectations(t)
	mockS3.AssertExpectations(t)
	mockSNS.AssertExpectations(t)
}

func TestOrderService_Submit_NotifyFailureIsSwallowed(t *testing.T) {
	// Arrange
	mockRepo := new(MockOrderRepository)
	mockS3 := new(MockS3Client)
	mockSNS := new(MockSNSClient)
	service := NewOrderService(mockRepo, mockS3, mockSNS)

	ctx := context.Background()
	persisted := newPersistedOrder()
	payload := models.NewOrder{
		CustomerName: persisted.CustomerName,
		OrderAmount:  persisted.OrderAmount,
		OrderDate:    persisted.OrderDate,
	}

	mockRepo.On("Create", ctx, payload).Return(persisted, nil)
	mockSNS.On("PublishOrderCreated", ctx, mock.Anything).Return(errors.New("sns unavailable"))

	// Act
	order, err := service.Submit(ctx, payload, nil)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, order)
	mockRepo.AssertExpectations(t)
	mockSNS.AssertExpectations(t)
}

func TestOrderService_Submit_StorageFailureIsTerminal(t *testing.T) {
	// Arrange
	mockRepo := new(MockOrderRepository)
	mockS3 := new(MockS3Client)
	mockSNS := new(MockSNSClient)
	service := NewOrderService(mockRepo, mockS3, mockSNS)

	ctx := context.Background()
	persisted := newPersistedOrder()
	payload := models.NewOrder{
		CustomerName: persisted.CustomerName,
		OrderAmount:  persisted.OrderAmount,
		OrderDate:    persisted.OrderDate,
	}
	invoice := &models.InvoiceFile{Name: "invoice.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
	storageErr := customerror.NewStorageError("order was not created", errors.New("connection refused"))

	mockRepo.On("Create", ctx, payload).Return(nil, storageErr)

	// Act
	order, err := service.Submit(ctx, payload, invoice)

	// Assert: ни загрузки, ни нотификации после провала вставки
	assert.Error(t, err)
	assert.Nil(t, order)
	mockS3.AssertNotCalled(t, "UploadInvoice")
	mockSNS.AssertNotCalled(t, "PublishOrderCreated")
	mockRepo.AssertExpectations(t)
}
