package facility

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestList(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, address, room_number, equipment_set FROM facilities ORDER BY address, room_number")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "address", "room_number", "equipment_set"}).
			AddRow(1, "12 Main St", "101", "Free weights").
			AddRow(2, "12 Main St", "102", nil))

	facilities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, facilities, 2)
	require.Equal(t, "101", facilities[0].RoomNumber)
	require.Nil(t, facilities[1].EquipmentSet)
}

func TestExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM facilities WHERE id = $1)")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestRecordUsage(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("INSERT INTO facility_usage").
		WithArgs(3, 10, 5, "14:00:00", "15:00:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "facility_id", "booking_id", "trainer_id", "start_time", "end_time", "usage_date"}).
			AddRow(7, 3, 10, 5, "14:00:00", "15:00:00", "2025-01-06"))

	u, err := repo.RecordUsage(context.Background(), 3, 10, 5, "14:00:00", "15:00:00")
	require.NoError(t, err)
	require.Equal(t, 7, u.ID)
	require.Equal(t, "15:00:00", u.EndTime)
}
