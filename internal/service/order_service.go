package service

import (
	"context"
	"time"

	"github.com/Bessima/orderflow/internal/clients/s3"
	"github.com/Bessima/orderflow/internal/clients/sns"
	"github.com/Bessima/orderflow/internal/middlewares/logger"
	"github.com/Bessima/orderflow/internal/models"
	"github.com/Bessima/orderflow/internal/repository"
	"go.uber.org/zap"
)

type OrderService struct {
	repository repository.OrderStorageRepositoryI
	s3Client   s3.S3ClientI
	snsClient  sns.SNSClientI
}

func NewOrderService(rep repository.OrderStorageRepositoryI, s3Client s3.S3ClientI, snsClient sns.SNSClientI) *OrderService {
	return &OrderService{repository: rep, s3Client: s3Client, snsClient: snsClient}
}

// Submit проводит заказ через конвейер: вставка -> загрузка счёта -> нотификация.
// Транзакционна только вставка. Ошибки загрузки и нотификации логируются и
// гасятся: заказ считается созданным даже если оба вызова упали.
func (service *OrderService) Submit(ctx context.Context, payload models.NewOrder, invoice *models.InvoiceFile) (*models.Order, error) {
	order, err := service.repository.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	if invoice != nil {
		url, uploadErr := service.s3Client.UploadInvoice(ctx, invoice, order.OrderID)
		if uploadErr != nil {
			logger.Log.Warn("Invoice upload failed, order kept without invoice",
				zap.String("orderId", order.OrderID),
				zap.Error(uploadErr),
			)
		} else {
			// Локатор попадает только в ответ этого запроса:
			// строка в orders не обновляется.
			order.InvoiceFileURL = &url
		}
	}

	notifyErr := service.snsClient.PublishOrderCreated(ctx, sns.OrderCreatedMessage{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		OrderAmount:  order.OrderAmount.StringFixed(2),
		Timestamp:    time.Now(),
	})
	if notifyErr != nil {
		logger.Log.Warn("Order notification failed",
			zap.String("orderId", order.OrderID),
			zap.Error(notifyErr),
		)
	}

	return order, nil
}
