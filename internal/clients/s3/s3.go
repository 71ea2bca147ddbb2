package s3

import (
	"context"
	"fmt"

	"github.com/Bessima/orderflow/internal/middlewares/logger"
	"github.com/Bessima/orderflow/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type S3ClientI interface {
	UploadInvoice(ctx context.Context, file *models.InvoiceFile, orderID string) (string, error)
}

// MockS3Client имитирует загрузку в S3: реального API-вызова нет,
// клиент только формирует локатор и пишет его в лог.
type MockS3Client struct {
	bucket string
}

func NewMockS3Client(bucket string) *MockS3Client {
	return &MockS3Client{bucket: bucket}
}

func (client *MockS3Client) UploadInvoice(ctx context.Context, file *models.InvoiceFile, orderID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("invoices/%s_%s.%s", orderID, uuid.NewString(), file.Extension())
	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", client.bucket, fileName)

	logger.Log.Info("[MOCK S3] Uploaded file",
		zap.String("original", file.Name),
		zap.String("url", url),
	)

	return url, nil
}
