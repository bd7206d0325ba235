package mocks

import (
	context "context"

	domain "github.com/osse101/PitchBot_Go/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockPitchtalkClient is a testify mock for pitchtalk.Client
type MockPitchtalkClient struct {
	mock.Mock
}

// Authenticate provides a mock function with given fields: ctx, identity
func (_m *MockPitchtalkClient) Authenticate(ctx context.Context, identity domain.Identity) (*domain.AuthData, error) {
	ret := _m.Called(ctx, identity)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 *domain.AuthData
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Identity) (*domain.AuthData, error)); ok {
		return rf(ctx, identity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Identity) *domain.AuthData); ok {
		r0 = rf(ctx, identity)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.AuthData)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Identity) error); ok {
		r1 = rf(ctx, identity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ClaimFarming provides a mock function with given fields: ctx, token
func (_m *MockPitchtalkClient) ClaimFarming(ctx context.Context, token string) (*domain.FarmingState, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for ClaimFarming")
	}

	var r0 *domain.FarmingState
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.FarmingState, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.FarmingState); ok {
		r0 = rf(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.FarmingState)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ClaimReferral provides a mock function with given fields: ctx, token
func (_m *MockPitchtalkClient) ClaimReferral(ctx context.Context, token string) (*domain.FarmingState, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for ClaimReferral")
	}

	var r0 *domain.FarmingState
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.FarmingState, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.FarmingState); ok {
		r0 = rf(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.FarmingState)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetFarming provides a mock function with given fields: ctx, token
func (_m *MockPitchtalkClient) GetFarming(ctx context.Context, token string) (*domain.FarmingState, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for GetFarming")
	}

	var r0 *domain.FarmingState
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.FarmingState, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.FarmingState); ok {
		r0 = rf(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.FarmingState)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReferralCount provides a mock function with given fields: ctx, token
func (_m *MockPitchtalkClient) ReferralCount(ctx context.Context, token string) (int, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for ReferralCount")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockPitchtalkClient creates a new instance of MockPitchtalkClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPitchtalkClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPitchtalkClient {
	mock := &MockPitchtalkClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
