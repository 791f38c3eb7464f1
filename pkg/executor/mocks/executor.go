package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/jamesmistry/measuro-systest/pkg/executor"
)

// Executor mock
type Executor struct {
	mock.Mock
}

// Execute provides a mock function with given fields: path
func (_m *Executor) Execute(path string) (executor.TaskHandle, error) {
	ret := _m.Called(path)

	var r0 executor.TaskHandle
	if rf, ok := ret.Get(0).(func(string) executor.TaskHandle); ok {
		r0 = rf(path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(executor.TaskHandle)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Name provides a mock function with no fields
func (_m *Executor) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}
