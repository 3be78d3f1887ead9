package migrations

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	for _, stmt := range Statements {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = Apply(context.Background(), sqlx.NewDb(db, "sqlmock"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_StopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(Statements[0])).WillReturnError(sql.ErrConnDone)

	err = Apply(context.Background(), sqlx.NewDb(db, "sqlmock"))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.ErrorContains(t, err, "migration 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
