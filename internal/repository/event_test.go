package repository

import (
	"context"
	"regexp"
	"testing"

	"socialhub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_HasParticipant(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected bool
	}{
		{name: "present", count: 1, expected: true},
		{name: "absent", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewEventRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "event_participants" WHERE event_id = $1 AND user_id = $2`)).
				WithArgs(2, 7).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			joined, err := repo.HasParticipant(context.Background(), 2, 7)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, joined)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID_PreloadsParticipants(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE "events"\."id" = \$1`).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id"}).
			AddRow(2, "launch party", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "event_participants" WHERE "event_participants"."event_id" = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "user_id"}).AddRow(2, 7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Ada"))

	event, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "launch party", event.Name)
	require.Len(t, event.Participants, 1)
	assert.Equal(t, "Ada", event.Participants[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE "events"\."id" = \$1`).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 99)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_SearchPartial(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "events" WHERE name LIKE $1`)).
		WithArgs("%launch%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "launch party"))

	events, err := repo.SearchPartial(context.Background(), "launch")
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
