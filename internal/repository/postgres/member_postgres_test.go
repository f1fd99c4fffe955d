package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"discountapi/internal/model"
	"discountapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMemberPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	m := &model.Member{
		ID:          "test-uuid",
		DirectoryID: 42,
		Name:        "Ada Lovelace",
		Age:         36,
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows([]string{"id", "directory_id", "name", "age", "created_at"}).
		AddRow(m.ID, m.DirectoryID, m.Name, m.Age, m.CreatedAt)

	mock.ExpectQuery("INSERT INTO members").
		WithArgs(m.ID, m.DirectoryID, m.Name, m.Age, m.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, m)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, m.ID, result.ID)
	assert.Equal(t, m.Name, result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "directory_id", "name", "age", "created_at"}).
			AddRow("test-id", int64(42), "Ada Lovelace", 36, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		m, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, m)
		assert.Equal(t, "test-id", m.ID)
		assert.Equal(t, 36, m.Age)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		m, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, m)
	})
}

func TestMemberPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM members").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows([]string{"id", "directory_id", "name", "age", "created_at"}).
			AddRow("id-1", int64(1), "Ada", 36, time.Now()).
			AddRow("id-2", int64(2), "Grace", 70, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM members ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM members").
			WillReturnError(errors.New("db fail"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestMemberPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewMemberPostgres(db)
	ctx := context.Background()

	t.Run("deletes existing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM members WHERE id = ?").
			WithArgs("test-id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "test-id"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM members WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "missing"))
	})
}
