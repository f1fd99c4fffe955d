package repository

import (
	"context"

	"discountapi/internal/model"
)

// MemberRepository defines data access for members using SQL queries only.
// No business logic here — strictly persistence operations.
type MemberRepository interface {
	// Create inserts a new member record.
	// The caller provides required fields (ID, CreatedAt) according to the schema defaults.
	// Returns the stored member (may include values set by the DB).
	Create(ctx context.Context, m *model.Member) (*model.Member, error)

	// FindByID returns a member by its ID.
	FindByID(ctx context.Context, id string) (*model.Member, error)

	// List returns a paginated list of members and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Member], error)

	// Delete removes a member by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
