package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueSeries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevenueRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "revenues" ORDER BY to_date\(month, 'Mon'\) ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).
			AddRow("Jan", int64(200000)).
			AddRow("Feb", int64(180000)))

	series, err := repo.Series(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "Jan", series[0].Month)
	assert.Equal(t, int64(180000), series[1].Revenue)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueSeriesQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRevenueRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "revenues"`).WillReturnError(errors.New("boom"))

	_, err := repo.Series(context.Background())
	assert.ErrorIs(t, err, ErrRevenueFetch)
}
