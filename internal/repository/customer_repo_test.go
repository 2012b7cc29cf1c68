package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerTableColumns = []string{
	"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid",
}

func TestCustomerAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	amyID, leeID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT id, name FROM "customers" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(amyID.String(), "Amy Burns").
			AddRow(leeID.String(), "Lee Robinson"))

	customers, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Amy Burns", customers[0].Name)
	assert.Equal(t, leeID, customers[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerAllQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT id, name FROM "customers"`).WillReturnError(errors.New("boom"))

	_, err := repo.All(context.Background())
	assert.ErrorIs(t, err, ErrCustomerFetch)
}

func TestCustomerFilteredByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`FROM "customers" LEFT JOIN invoices ON invoices\.customer_id = customers\.id WHERE customers\.email ILIKE \$1 GROUP BY customers\.id`).
		WillReturnRows(sqlmock.NewRows(customerTableColumns).
			AddRow(id.String(), "Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png",
				int64(3), int64(16461), int64(8945)))

	customers, err := repo.Filtered(context.Background(), CustomerQuery{EmailLike: "oliveira"})
	require.NoError(t, err)
	require.Len(t, customers, 1)

	assert.Equal(t, id, customers[0].ID)
	assert.Equal(t, int64(3), customers[0].TotalInvoices)
	assert.Equal(t, "$164.61", customers[0].TotalPending)
	assert.Equal(t, "$89.45", customers[0].TotalPaid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerFilteredNameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`customers\.name ILIKE \$1 OR customers\.email ILIKE \$2`).
		WillReturnRows(sqlmock.NewRows(customerTableColumns))

	customers, err := repo.Filtered(context.Background(), CustomerQuery{NameLike: "lee", EmailLike: "lee"})
	require.NoError(t, err)
	assert.Empty(t, customers)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerFilteredNoQueryReturnsAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	// No WHERE clause between the join and the grouping.
	mock.ExpectQuery(`FROM "customers" LEFT JOIN invoices ON invoices\.customer_id = customers\.id GROUP BY customers\.id`).
		WillReturnRows(sqlmock.NewRows(customerTableColumns).
			AddRow(uuid.New().String(), "Amy Burns", "amy@burns.com", "/customers/amy-burns.png",
				int64(0), int64(0), int64(0)))

	customers, err := repo.Filtered(context.Background(), CustomerQuery{})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "$0.00", customers[0].TotalPending)
	assert.Equal(t, "$0.00", customers[0].TotalPaid)

	assert.NoError(t, mock.ExpectationsWereMet())
}
