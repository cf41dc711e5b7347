package cart

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRow(id int, userID string, productID int, qty float64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "product_id", "quantity", "selected_options", "created_at", "updated_at",
	}).AddRow(id, userID, productID, qty, []byte(`{"Type":"Skinless"}`), now, now)
}

func TestPostgresRepository_AddToCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO cart_items").
		WillReturnRows(cartRow(1, "u1", 1, 5))

	item, err := repo.AddToCart(context.Background(), AddToCartParams{
		UserID:          "u1",
		ProductID:       1,
		Quantity:        5,
		SelectedOptions: SelectedOptions{"Type": "Skinless"},
	})
	assert.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Skinless", item.SelectedOptions["Type"])
}

func TestPostgresRepository_UpdateCartItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE cart_items").
			WithArgs(10.0, "u1", 1).
			WillReturnRows(cartRow(1, "u1", 1, 10))

		item, err := repo.UpdateCartItem(context.Background(), "u1", 1, 10)
		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, float64(10), item.Quantity)
	})

	t.Run("Absent_NilNil", func(t *testing.T) {
		mock.ExpectQuery("UPDATE cart_items").
			WithArgs(10.0, "u1", 99).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		item, err := repo.UpdateCartItem(context.Background(), "u1", 99, 10)
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestPostgresRepository_RemoveFromCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	t.Run("Removed", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items WHERE user_id = \\$1 AND product_id = \\$2").
			WithArgs("u1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		removed, err := repo.RemoveFromCart(context.Background(), "u1", 1)
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("Absent_False", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items WHERE user_id = \\$1 AND product_id = \\$2").
			WithArgs("u1", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := repo.RemoveFromCart(context.Background(), "u1", 99)
		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestPostgresRepository_ClearCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM cart_items WHERE user_id = \\$1").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	assert.NoError(t, repo.ClearCart(context.Background(), "u1"))
}

func TestPostgresRepository_GetCartItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	t.Run("Empty_Slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM cart_items WHERE user_id = \\$1").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "product_id", "quantity", "selected_options", "created_at", "updated_at",
			}))

		items, err := repo.GetCartItems(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
