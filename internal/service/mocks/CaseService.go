package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	model "github.com/umalmyha/cases/internal/model"
)

// CaseService is a mock type for the CaseService type
type CaseService struct {
	mock.Mock
}

// Create provides a mock function with given fields: _a0, _a1
func (_m *CaseService) Create(_a0 context.Context, _a1 *model.Case) (*model.Case, error) {
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

// DeleteByID provides a mock function with given fields: _a0, _a1
func (_m *CaseService) DeleteByID(_a0 context.Context, _a1 string) error {
	ret := _m.Called(_a0, _a1)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindAll provides a mock function with given fields: _a0, _a1
func (_m *CaseService) FindAll(_a0 context.Context, _a1 model.CaseFilter) (*model.CasePage, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *model.CasePage
	if rf, ok := ret.Get(0).(func(context.Context, model.CaseFilter) *model.CasePage); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.CasePage)
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
func (_m *CaseService) FindByID(_a0 context.Context, _a1 string) (*model.Case, error) {
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

// Update provides a mock function with given fields: _a0, _a1, _a2
func (_m *CaseService) Update(_a0 context.Context, _a1 string, _a2 *model.CasePatch) (*model.Case, error) {
	ret := _m.Called(_a0, _a1, _a2)

	var r0 *model.Case
	if rf, ok := ret.Get(0).(func(context.Context, string, *model.CasePatch) *model.Case); ok {
		r0 = rf(_a0, _a1, _a2)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Case)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, *model.CasePatch) error); ok {
		r1 = rf(_a0, _a1, _a2)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type mockConstructorTestingTNewCaseService interface {
	mock.TestingT
	Cleanup(func())
}

// NewCaseService creates a new instance of CaseService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCaseService(t mockConstructorTestingTNewCaseService) *CaseService {
	m := &CaseService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
