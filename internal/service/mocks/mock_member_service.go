package mocks

import (
	"context"

	"discountapi/internal/model"
	"discountapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) Register(ctx context.Context, directoryID int64, age int) (*model.Member, error) {
	args := m.Called(ctx, directoryID, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) List(ctx context.Context, limit, offset int) (*service.MemberListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MemberListResult), args.Error(1)
}

func (m *MockMemberService) Get(ctx context.Context, id string) (*model.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Member), args.Error(1)
}

func (m *MockMemberService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberService) Quote(ctx context.Context, memberID, promoCode string) (*model.Quote, error) {
	args := m.Called(ctx, memberID, promoCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}
