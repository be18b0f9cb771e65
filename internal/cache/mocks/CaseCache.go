package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	model "github.com/umalmyha/cases/internal/model"
)

// CaseCache is a mock type for the CaseCache type
type CaseCache struct {
	mock.Mock
}

// Cache provides a mock function with given fields: _a0, _a1
func (_m *CaseCache) Cache(_a0 context.Context, _a1 *model.Case) error {
	ret := _m.Called(_a0, _a1)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.Case) error); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// EvictByID provides a mock function with given fields: _a0, _a1
func (_m *CaseCache) EvictByID(_a0 context.Context, _a1 string) error {
	ret := _m.Called(_a0, _a1)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function with given fields: _a0, _a1
func (_m *CaseCache) FindByID(_a0 context.Context, _a1 string) (*model.Case, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *model.Case
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.Case); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Case)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type mockConstructorTestingTNewCaseCache interface {
	mock.TestingT
	Cleanup(func())
}

// NewCaseCache creates a new instance of CaseCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCaseCache(t mockConstructorTestingTNewCaseCache) *CaseCache {
	m := &CaseCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
