package data

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var toolColumns = []string{
	"code", "tool_type", "brand", "daily_charge", "weekday_charge", "weekend_charge", "holiday_charge",
}

func newMockModel(t *testing.T) (ToolModel, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewModels(db).Tools, mock
}

func TestToolModelCatalog(t *testing.T) {
	m, mock := newMockModel(t)

	rows := sqlmock.NewRows(toolColumns).
		AddRow("LADW", "Ladder", "Werner", "1.99", true, true, false).
		AddRow("jakr", "Jackhammer", "Ridgid", "2.99", true, false, false).
		AddRow("JAKR", "Jackhammer", "Bosch", "3.49", true, true, false)
	mock.ExpectQuery(`SELECT code, tool_type, brand, daily_charge`).WillReturnRows(rows)

	c, err := m.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	ladder, err := c.Lookup("ladw")
	require.NoError(t, err)
	assert.Equal(t, "Ladder", ladder.Type)
	assert.Equal(t, "1.99", ladder.DailyCharge.StringFixed(2))
	assert.True(t, ladder.WeekdayCharge)
	assert.True(t, ladder.WeekendCharge)
	assert.False(t, ladder.HolidayCharge)

	jackhammer, err := c.Lookup("JAKR")
	require.NoError(t, err)
	assert.Equal(t, "JAKR", jackhammer.Code)
	assert.Equal(t, "Bosch", jackhammer.Brand)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolModelCatalog_RejectsBadCharge(t *testing.T) {
	for _, charge := range []string{"-1.00", "1.995"} {
		t.Run(charge, func(t *testing.T) {
			m, mock := newMockModel(t)
			rows := sqlmock.NewRows(toolColumns).
				AddRow("LADW", "Ladder", "Werner", charge, true, true, false)
			mock.ExpectQuery(`SELECT code`).WillReturnRows(rows)

			c, err := m.Catalog(context.Background())
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Contains(t, err.Error(), "tool LADW: daily charge")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestToolModelCatalog_QueryError(t *testing.T) {
	m, mock := newMockModel(t)
	boom := errors.New("relation \"tools\" does not exist")
	mock.ExpectQuery(`SELECT code`).WillReturnError(boom)

	_, err := m.Catalog(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolModelCatalog_RowError(t *testing.T) {
	m, mock := newMockModel(t)
	broken := errors.New("connection reset")
	rows := sqlmock.NewRows(toolColumns).
		AddRow("LADW", "Ladder", "Werner", "1.99", true, true, false).
		AddRow("CHNS", "Chainsaw", "Stihl", "1.49", true, false, true).
		RowError(1, broken)
	mock.ExpectQuery(`SELECT code`).WillReturnRows(rows)

	_, err := m.Catalog(context.Background())
	assert.ErrorIs(t, err, broken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolModelCatalog_Empty(t *testing.T) {
	m, mock := newMockModel(t)
	mock.ExpectQuery(`SELECT code`).WillReturnRows(sqlmock.NewRows(toolColumns))

	c, err := m.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}
