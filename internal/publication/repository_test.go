package publication

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

var publicationColumns = []string{
	"id", "title", "description", "image_url", "user_id", "topic_id", "created_at", "hidden", "banned_at", "ban_reason",
}

func TestPublicationRepository_Create(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `publications`")).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	p := &dbmysql.Publication{Title: "Leg day", Description: "Squats", UserID: 1, TopicID: 2, CreatedAt: time.Now()}
	require.NoError(t, NewPublicationRepository(db).Create(context.Background(), p))
	assert.Equal(t, uint64(3), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicationRepository_ByID_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `publications` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(publicationColumns))

	_, err := NewPublicationRepository(db).ByID(context.Background(), 8)
	assert.True(t, common.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicationRepository_ByTopicID(t *testing.T) {
	tests := []struct {
		name          string
		includeHidden bool
		query         string
	}{
		{
			name:  "visible only",
			query: "SELECT * FROM `publications` WHERE topic_id = ? AND hidden = ? ORDER BY created_at DESC",
		},
		{
			name:          "including hidden",
			includeHidden: true,
			query:         "SELECT * FROM `publications` WHERE topic_id = ? ORDER BY created_at DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WillReturnRows(sqlmock.NewRows(publicationColumns).
					AddRow(1, "Leg day", "Squats", nil, 1, 2, time.Now(), false, nil, nil))

			list, err := NewPublicationRepository(db).ByTopicID(context.Background(), 2, tt.includeHidden)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Nil(t, list[0].ImageURL)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPublicationRepository_Search(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("title LIKE ? OR description LIKE ?")).
		WithArgs("%leg%", "%leg%", false).
		WillReturnRows(sqlmock.NewRows(publicationColumns).
			AddRow(1, "Leg day", "Squats", "http://img/1.png", 1, 2, time.Now(), false, nil, nil))

	list, err := NewPublicationRepository(db).Search(context.Background(), "leg")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].ImageURL)
	assert.Equal(t, "http://img/1.png", *list[0].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublicationRepository_SearchEscapesWildcards(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantArg string
	}{
		{name: "percent", query: "%", wantArg: `%\%%`},
		{name: "underscore", query: "leg_day", wantArg: `%leg\_day%`},
		{name: "backslash", query: `a\b`, wantArg: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectQuery(regexp.QuoteMeta("title LIKE ? OR description LIKE ?")).
				WithArgs(tt.wantArg, tt.wantArg, false).
				WillReturnRows(sqlmock.NewRows(publicationColumns))

			list, err := NewPublicationRepository(db).Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Empty(t, list)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPublicationRepository_CountByTopicID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `publications` WHERE topic_id = ?")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(11))

	count, err := NewPublicationRepository(db).CountByTopicID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(11), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
