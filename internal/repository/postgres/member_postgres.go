package postgres

import (
	"context"
	"database/sql"

	"discountapi/internal/model"
	"discountapi/internal/repository"
)

// MemberPostgres is a PostgreSQL implementation of repository.MemberRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MemberPostgres struct {
	db *sql.DB
}

// NewMemberPostgres creates a new MemberPostgres repository.
func NewMemberPostgres(db *sql.DB) *MemberPostgres {
	return &MemberPostgres{db: db}
}

var _ repository.MemberRepository = (*MemberPostgres)(nil)

// Create inserts a new member row and returns the stored record.
func (r *MemberPostgres) Create(ctx context.Context, m *model.Member) (*model.Member, error) {
	const q = `
		INSERT INTO members (id, directory_id, name, age, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, directory_id, name, age, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.DirectoryID,
		m.Name,
		m.Age,
		m.CreatedAt,
	)
	var out model.Member
	if err := row.Scan(
		&out.ID,
		&out.DirectoryID,
		&out.Name,
		&out.Age,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single member by its ID.
func (r *MemberPostgres) FindByID(ctx context.Context, id string) (*model.Member, error) {
	const q = `
		SELECT id, directory_id, name, age, created_at
		FROM members
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var m model.Member
	if err := row.Scan(
		&m.ID,
		&m.DirectoryID,
		&m.Name,
		&m.Age,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns members using LIMIT/OFFSET pagination and a total count.
func (r *MemberPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Member], error) {
	// Count total rows
	const qCount = `SELECT COUNT(*) FROM members`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	// Fetch page
	const qList = `
		SELECT id, directory_id, name, age, created_at
		FROM members
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Member, 0)
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(
			&m.ID,
			&m.DirectoryID,
			&m.Name,
			&m.Age,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Member]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a member by ID. It does not return an error if the row does not exist.
func (r *MemberPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM members WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
