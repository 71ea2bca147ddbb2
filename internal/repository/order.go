package repository

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/Bessima/orderflow/internal/config/db"
	"github.com/Bessima/orderflow/internal/customerror"
	"github.com/Bessima/orderflow/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct {
	db *db.DB
}

type OrderStorageRepositoryI interface {
	Create(ctx context.Context, order models.NewOrder) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

func NewOrderRepository(dbObj *db.DB) *OrderRepository {
	return &OrderRepository{db: dbObj}
}

// Create вставляет новый заказ. Номер ORD-NNNNN берётся одним случайным
// розыгрышем без предварительной проверки: коллизию ловит только уникальный
// индекс на order_id, и она возвращается как StorageError.
func (repository *OrderRepository) Create(ctx context.Context, order models.NewOrder) (*models.Order, error) {
	query := `INSERT INTO orders (order_id, customer_name, order_amount, order_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, customer_name, order_amount, order_date, invoice_file_url, created_at`

	orderID := models.FormatOrderID(rand.IntN(100000))

	row := repository.db.Pool.QueryRow(ctx, query, orderID, order.CustomerName, order.OrderAmount, order.OrderDate)

	elem := models.Order{}
	err := row.Scan(
		&elem.ID,
		&elem.OrderID,
		&elem.CustomerName,
		&elem.OrderAmount,
		&elem.OrderDate,
		&elem.InvoiceFileURL,
		&elem.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, customerror.NewStorageError("order id collision on insert", err)
		}
		return nil, customerror.NewStorageError("order was not created", err)
	}

	return &elem, nil
}

func (repository *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `SELECT id, order_id, customer_name, order_amount, order_date, invoice_file_url, created_at
		FROM orders WHERE id = $1`

	return repository.getOne(ctx, query, id)
}

func (repository *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	query := `SELECT id, order_id, customer_name, order_amount, order_date, invoice_file_url, created_at
		FROM orders WHERE order_id = $1`

	return repository.getOne(ctx, query, orderID)
}

func (repository *OrderRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Order, error) {
	row := repository.db.Pool.QueryRow(ctx, query, arg)

	elem := models.Order{}
	err := row.Scan(
		&elem.ID,
		&elem.OrderID,
		&elem.CustomerName,
		&elem.OrderAmount,
		&elem.OrderDate,
		&elem.InvoiceFileURL,
		&elem.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, customerror.NewStorageError("order was not fetched", err)
	}

	return &elem, nil
}

func (repository *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	query := `SELECT id, order_id, customer_name, order_amount, order_date, invoice_file_url, created_at
		FROM orders ORDER BY created_at DESC`

	rows, err := repository.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, customerror.NewStorageError("orders were not fetched", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err = rows.Scan(
			&order.ID,
			&order.OrderID,
			&order.CustomerName,
			&order.OrderAmount,
			&order.OrderDate,
			&order.InvoiceFileURL,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, customerror.NewStorageError("order row was not scanned", err)
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, customerror.NewStorageError("orders were not fetched", err)
	}

	return orders, nil
}

func (repository *OrderRepository) Close() error {
	repository.db.Close()
	return nil
}
