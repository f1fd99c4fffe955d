package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockNameFetcher struct {
	mock.Mock
}

func (m *MockNameFetcher) FetchName(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
