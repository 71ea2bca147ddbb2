package sns

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Bessima/orderflow/internal/middlewares/logger"
	"go.uber.org/zap"
)

// OrderCreatedMessage — сводка заказа для нотификации.
type OrderCreatedMessage struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	OrderAmount  string    `json:"orderAmount"`
	Timestamp    time.Time `json:"timestamp"`
}

type SNSClientI interface {
	PublishOrderCreated(ctx context.Context, message OrderCreatedMessage) error
}

// MockSNSClient имитирует публикацию в SNS-топик записью в лог.
type MockSNSClient struct {
	topicARN string
}

func NewMockSNSClient(topicARN string) *MockSNSClient {
	return &MockSNSClient{topicARN: topicARN}
}

func (client *MockSNSClient) PublishOrderCreated(ctx context.Context, message OrderCreatedMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	logger.Log.Info("[MOCK SNS] Published order notification",
		zap.String("topic", client.topicARN),
		zap.ByteString("message", body),
	)
	logger.Log.Info("[MOCK EMAIL] Order confirmation sent to customer",
		zap.String("customer", message.CustomerName),
	)

	return nil
}
