package service

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/Bessima/orderflow/internal/clients/s3"
	"github.com/Bessima/orderflow/internal/clients/sns"
	"github.com/Bessima/orderflow/internal/config"
	"github.com/Bessima/orderflow/internal/config/db"
	"github.com/Bessima/orderflow/internal/handlers"
	"github.com/Bessima/orderflow/internal/middlewares/logger"
	"github.com/Bessima/orderflow/internal/repository"
	"github.com/go-chi/chi/v5"
)

type ServerService struct {
	Server *http.Server
	db     *db.DB
}

func NewServerService(rootContext context.Context, address string, db *db.DB) ServerService {
	server := &http.Server{
		Addr: address,
		BaseContext: func(_ net.Listener) context.Context {
			return rootContext
		},
	}
	return ServerService{Server: server, db: db}
}

func (serverService *ServerService) SetRouter(conf *config.Config) {
	var router chi.Router
	router = serverService.getRouter(conf)

	serverService.Server.Handler = router
}

func (serverService *ServerService) getRouter(conf *config.Config) chi.Router {
	router := chi.NewRouter()

	router.Use(logger.RequestLogger)

	orderRepository := repository.NewOrderRepository(serverService.db)
	s3Client := s3.NewMockS3Client(conf.S3Bucket)
	snsClient := sns.NewMockSNSClient(conf.SNSTopicARN)
	orderService := NewOrderService(orderRepository, s3Client, snsClient)

	orderHandler := handlers.NewOrderHandler(orderService, orderRepository)
	router.Post("/orders", orderHandler.Add)
	router.Get("/orders", orderHandler.GetOrders)
	router.Get("/orders/{id}", orderHandler.Get)

	healthHandler := handlers.NewHealthHandler()
	router.Get("/health", healthHandler.Check)

	return router
}

func (serverService *ServerService) RunServer(serverErr *chan error) {
	if err := serverService.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		*serverErr <- err
	} else {
		*serverErr <- nil
	}
}

func (serverService *ServerService) Shutdown() error {
	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if shutdownErr := serverService.Server.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	return nil
}
