package mocks

import "github.com/stretchr/testify/mock"

// Cursor mock
type Cursor struct {
	mock.Mock
}

// Execute provides a mock function with given fields: query
func (_m *Cursor) Execute(query string) error {
	ret := _m.Called(query)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(query)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Description provides a mock function with given fields:
func (_m *Cursor) Description() []string {
	ret := _m.Called()

	var r0 []string
	if rf, ok := ret.Get(0).(func() []string); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	return r0
}

// FetchAll provides a mock function with given fields:
func (_m *Cursor) FetchAll() ([][]interface{}, error) {
	ret := _m.Called()

	var r0 [][]interface{}
	if rf, ok := ret.Get(0).(func() [][]interface{}); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([][]interface{})
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
