package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	model "github.com/umalmyha/cases/internal/model"
)

// CaseRepository is a mock type for the CaseRepository type
type CaseRepository struct {
	mock.Mock
}

// Count provides a mock function with given fields: _a0, _a1
func (_m *CaseRepository) Count(_a0 context.Context, _a1 model.CaseFilter) (int64, error) {
	ret := _m.Called(_a0, _a1)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, model.CaseFilter) int64); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.CaseFilter) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: _a0, _a1
func (_m *CaseRepository) Create(_a0 context.Context, _a1 *model.Case) error {
	ret := _m.Called(_a0, _a1)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.Case) error); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteByID provides a mock function with given fields: _a0, _a1
func (_m *CaseRepository) DeleteByID(_a0 context.Context, _a1 string) (bool, error) {
	ret := _m.Called(_a0, _a1)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Find provides a mock function with given fields: _a0, _a1
func (_m *CaseRepository) Find(_a0 context.Context, _a1 model.CaseFilter) ([]*model.Case, error) {
	ret := _m.Called(_a0, _a1)

	var r0 []*model.Case
	if rf, ok := ret.Get(0).(func(context.Context, model.CaseFilter) []*model.Case); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.Case)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.CaseFilter) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByID provides a mock function with given fields: _a0, _a1
func (_m *CaseRepository) FindByID(_a0 context.Context, _a1 string) (*model.Case, error) {
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

// Update provides a mock function with given fields: _a0, _a1
func (_m *CaseRepository) Update(_a0 context.Context, _a1 *model.Case) (*model.Case, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *model.Case
	if rf, ok := ret.Get(0).(func(context.Context, *model.Case) *model.Case); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Case)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *model.Case) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type mockConstructorTestingTNewCaseRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewCaseRepository creates a new instance of CaseRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCaseRepository(t mockConstructorTestingTNewCaseRepository) *CaseRepository {
	m := &CaseRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
