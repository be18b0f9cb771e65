package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	model "github.com/umalmyha/cases/internal/model"
)

// CustomFieldService is a mock type for the CustomFieldService type
type CustomFieldService struct {
	mock.Mock
}

// Create provides a mock function with given fields: _a0, _a1
func (_m *CustomFieldService) Create(_a0 context.Context, _a1 *model.CustomField) (*model.CustomField, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *model.CustomField
	if rf, ok := ret.Get(0).(func(context.Context, *model.CustomField) *model.CustomField); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.CustomField)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *model.CustomField) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteByID provides a mock function with given fields: _a0, _a1
func (_m *CustomFieldService) DeleteByID(_a0 context.Context, _a1 string) error {
	ret := _m.Called(_a0, _a1)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindAll provides a mock function with given fields: _a0
func (_m *CustomFieldService) FindAll(_a0 context.Context) ([]*model.CustomField, error) {
	ret := _m.Called(_a0)

	var r0 []*model.CustomField
	if rf, ok := ret.Get(0).(func(context.Context) []*model.CustomField); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*model.CustomField)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type mockConstructorTestingTNewCustomFieldService interface {
	mock.TestingT
	Cleanup(func())
}

// NewCustomFieldService creates a new instance of CustomFieldService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCustomFieldService(t mockConstructorTestingTNewCustomFieldService) *CustomFieldService {
	m := &CustomFieldService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
