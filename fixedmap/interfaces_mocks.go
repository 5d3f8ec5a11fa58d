// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fixedmap

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIterator is a mock of Iterator interface.
type MockIterator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockIteratorMockRecorder[T]
}

// MockIteratorMockRecorder is the mock recorder for MockIterator.
type MockIteratorMockRecorder[T any] struct {
	mock *MockIterator[T]
}

// NewMockIterator creates a new mock instance.
func NewMockIterator[T any](ctrl *gomock.Controller) *MockIterator[T] {
	mock := &MockIterator[T]{ctrl: ctrl}
	mock.recorder = &MockIteratorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIterator[T]) EXPECT() *MockIteratorMockRecorder[T] {
	return m.recorder
}

// HasNext mocks base method.
func (m *MockIterator[T]) HasNext() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasNext")
	ret0, _ := ret[0].(bool)
	return ret0
}

// HasNext indicates an expected call of HasNext.
func (mr *MockIteratorMockRecorder[T]) HasNext() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasNext", reflect.TypeOf((*MockIterator[T])(nil).HasNext))
}

// Next mocks base method.
func (m *MockIterator[T]) Next() T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(T)
	return ret0
}

// Next indicates an expected call of Next.
func (mr *MockIteratorMockRecorder[T]) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockIterator[T])(nil).Next))
}

// MockReadOnlyMap is a mock of ReadOnlyMap interface.
type MockReadOnlyMap[K comparable, V any] struct {
	ctrl     *gomock.Controller
	recorder *MockReadOnlyMapMockRecorder[K, V]
}

// MockReadOnlyMapMockRecorder is the mock recorder for MockReadOnlyMap.
type MockReadOnlyMapMockRecorder[K comparable, V any] struct {
	mock *MockReadOnlyMap[K, V]
}

// NewMockReadOnlyMap creates a new mock instance.
func NewMockReadOnlyMap[K comparable, V any](ctrl *gomock.Controller) *MockReadOnlyMap[K, V] {
	mock := &MockReadOnlyMap[K, V]{ctrl: ctrl}
	mock.recorder = &MockReadOnlyMapMockRecorder[K, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReadOnlyMap[K, V]) EXPECT() *MockReadOnlyMapMockRecorder[K, V] {
	return m.recorder
}

// Contains mocks base method.
func (m *MockReadOnlyMap[K, V]) Contains(key K) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contains", key)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Contains indicates an expected call of Contains.
func (mr *MockReadOnlyMapMockRecorder[K, V]) Contains(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contains", reflect.TypeOf((*MockReadOnlyMap[K, V])(nil).Contains), key)
}

// Empty mocks base method.
func (m *MockReadOnlyMap[K, V]) Empty() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Empty")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Empty indicates an expected call of Empty.
func (mr *MockReadOnlyMapMockRecorder[K, V]) Empty() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Empty", reflect.TypeOf((*MockReadOnlyMap[K, V])(nil).Empty))
}

// ForEach mocks base method.
func (m *MockReadOnlyMap[K, V]) ForEach(callback func(K, V)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ForEach", callback)
}

// ForEach indicates an expected call of ForEach.
func (mr *MockReadOnlyMapMockRecorder[K, V]) ForEach(callback any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForEach", reflect.TypeOf((*MockReadOnlyMap[K, V])(nil).ForEach), callback)
}

// Get mocks base method.
func (m *MockReadOnlyMap[K, V]) Get(key K) (V, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", key)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockReadOnlyMapMockRecorder[K, V]) Get(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockReadOnlyMap[K, V])(nil).Get), key)
}

// Size mocks base method.
func (m *MockReadOnlyMap[K, V]) Size() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size")
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockReadOnlyMapMockRecorder[K, V]) Size() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockReadOnlyMap[K, V])(nil).Size))
}
