package estado

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

func TestEstadoRepository_ByName(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewEstadoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `estados` WHERE name = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Activo"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `estados` WHERE name = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	got, err := repo.ByName(context.Background(), "Activo")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)

	_, err = repo.ByName(context.Background(), "Nada")
	assert.True(t, common.IsNotFound(err))
	assert.Contains(t, err.Error(), `"Nada"`)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstadoRepository_ExistsByName(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `estados` WHERE name = ?")).
		WithArgs("Activo").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := NewEstadoRepository(db).ExistsByName(context.Background(), "Activo")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstadoRepository_Delete(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `estados` WHERE id = ?")).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, NewEstadoRepository(db).Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
