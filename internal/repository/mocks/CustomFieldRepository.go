package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	model "github.com/umalmyha/cases/internal/model"
)

// CustomFieldRepository is a mock type for the CustomFieldRepository type
type CustomFieldRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: _a0, _a1
func (_m *CustomFieldRepository) Create(_a0 context.Context, _a1 *model.CustomField) error {
	ret := _m.Called(_a0, _a1)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.CustomField) error); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteByID provides a mock function with given fields: _a0, _a1
func (_m *CustomFieldRepository) DeleteByID(_a0 context.Context, _a1 string) (bool, error) {
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

// ExistsByKey provides a mock function with given fields: _a0, _a1
func (_m *CustomFieldRepository) ExistsByKey(_a0 context.Context, _a1 string) (bool, error) {
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

// FindAll provides a mock function with given fields: _a0
func (_m *CustomFieldRepository) FindAll(_a0 context.Context) ([]*model.CustomField, error) {
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

type mockConstructorTestingTNewCustomFieldRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewCustomFieldRepository creates a new instance of CustomFieldRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCustomFieldRepository(t mockConstructorTestingTNewCustomFieldRepository) *CustomFieldRepository {
	m := &CustomFieldRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
