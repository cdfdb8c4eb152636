package topic

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qualifygym/internal/common"
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

var topicColumns = []string{"id", "name", "estado_id"}

func TestTopicRepository_SearchByName(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `topics` WHERE name LIKE ? ORDER BY name")).
		WithArgs("%Cardio%").
		WillReturnRows(sqlmock.NewRows(topicColumns).AddRow(2, "Cardio y Resistencia", 1))

	topics, err := NewTopicRepository(db).SearchByName(context.Background(), "Cardio")
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Cardio y Resistencia", topics[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepository_SearchByNameEscapesWildcards(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `topics` WHERE name LIKE ? ORDER BY name")).
		WithArgs(`%100\%\_fuerza%`).
		WillReturnRows(sqlmock.NewRows(topicColumns))

	topics, err := NewTopicRepository(db).SearchByName(context.Background(), "100%_fuerza")
	require.NoError(t, err)
	assert.Empty(t, topics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepository_ByEstadoID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `topics` WHERE estado_id = ? ORDER BY id")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(topicColumns).
			AddRow(1, "Rutinas de Fuerza", 1).
			AddRow(2, "Cardio y Resistencia", 1))

	topics, err := NewTopicRepository(db).ByEstadoID(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, topics, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepository_ByID_NotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `topics` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(topicColumns))

	_, err := NewTopicRepository(db).ByID(context.Background(), 4)
	assert.True(t, common.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
