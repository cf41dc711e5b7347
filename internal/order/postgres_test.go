package order

import (
	"context"
	"testing"
	"time"

	"halalpoultry-be/internal/cart"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRow(id int, userID string, status string, total float64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "status", "total", "shipping_address", "billing_address", "payment_method", "created_at", "updated_at",
	}).AddRow(id, userID, status, total, nil, nil, nil, now, now)
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsOrderItemsAndCartWipe", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgresRepository(db)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs("u1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		o, err := repo.CreateOrder(ctx, CreateOrderParams{UserID: "u1", Total: 45.93}, []CreateOrderItemParams{
			{ProductID: 1, Quantity: 5, Price: 5.99, SelectedOptions: cart.SelectedOptions{"Type": "With Skin"}},
			{ProductID: 3, Quantity: 2, Price: 7.99},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, o.ID)
		assert.Equal(t, StatusPending, o.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnItemFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewPostgresRepository(db)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(8, now, now))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err = repo.CreateOrder(ctx, CreateOrderParams{UserID: "u1", Total: 5.99}, []CreateOrderItemParams{
			{ProductID: 1, Quantity: 1, Price: 5.99},
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_GetOrdersByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	rows := orderRow(1, "u1", "pending", 10)
	rows.AddRow(3, "u1", "shipped", 30, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs("u1").
		WillReturnRows(rows)

	orders, err := repo.GetOrdersByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, StatusShipped, orders[1].Status)
}

func TestPostgresRepository_GetOrderByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders").
			WithArgs(1).
			WillReturnRows(orderRow(1, "u1", "pending", 10))

		o, err := repo.GetOrderByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, "u1", o.UserID)
	})

	t.Run("Miss_NilNil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		o, err := repo.GetOrderByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, o)
	})
}

func TestPostgresRepository_GetOrderItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price", "selected_options"}).
		AddRow(1, 7, 1, 5.0, 5.99, []byte(`{"Type":"With Skin"}`)).
		AddRow(2, 7, 3, 2.0, 7.99, nil)
	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WithArgs(7).
		WillReturnRows(rows)

	items, err := repo.GetOrderItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "With Skin", items[0].SelectedOptions["Type"])
	assert.Nil(t, items[1].SelectedOptions)
}

func TestPostgresRepository_UpdateOrderStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE orders").
			WithArgs(1, "processing").
			WillReturnRows(orderRow(1, "u1", "processing", 10))

		o, err := repo.UpdateOrderStatus(context.Background(), 1, StatusProcessing)
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, StatusProcessing, o.Status)
	})

	t.Run("Miss_NilNil", func(t *testing.T) {
		mock.ExpectQuery("UPDATE orders").
			WithArgs(99, "processing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		o, err := repo.UpdateOrderStatus(context.Background(), 99, StatusProcessing)
		assert.NoError(t, err)
		assert.Nil(t, o)
	})
}
