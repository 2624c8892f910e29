package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAddItemUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewCartStore(db)

	mock.ExpectExec(`INSERT INTO cart_items`).
		WithArgs(int64(1), int64(7), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.AddItem(context.Background(), 1, 7, 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCartJoinsProducts(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewCartStore(db)

	mock.ExpectQuery(`SELECT ci.product_id, p.name, p.price, ci.quantity`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "price", "quantity"}).
			AddRow(int64(7), "Widget", 10.0, 2).
			AddRow(int64(8), "Gadget", 20.0, 1))

	cart, err := s.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), cart.UserID)
	require.Len(t, cart.Items, 2)
	require.Equal(t, 40.0, cart.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveItem(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewCartStore(db)

	mock.ExpectExec(`DELETE FROM cart_items`).
		WithArgs(int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.RemoveItem(context.Background(), 1, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
