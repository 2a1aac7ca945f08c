package pagenav

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// gormMock is a gorm connection backed by sqlmock.
type gormMock struct {
	dialect string
	db      *gorm.DB
	mock    sqlmock.Sqlmock
}

var _gormMockFactories = map[string]func(t *testing.T) gormMock{
	"mysql":    newGORMMySQLMock,
	"postgres": newGORMPostgresMock,
}

func newGORMMySQLMock(t *testing.T) gormMock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormMock{dialect: "mysql", db: db.Debug(), mock: mock}
}

func newGORMPostgresMock(t *testing.T) gormMock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormMock{dialect: "postgres", db: db.Debug(), mock: mock}
}
