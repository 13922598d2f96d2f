// Package bagmock holds gomock doubles of the bag store capabilities.
package bagmock

import (
	"reflect"

	"github.com/golang/mock/gomock"
	"go.llib.dev/bagkit/pkg/bag"
)

// MockKeyedStore is a mock of bag.KeyedStore[int, int].
//
// mockgen can't instantiate generic interfaces, so it follows mockgen's layout by hand.
type MockKeyedStore struct {
	ctrl     *gomock.Controller
	recorder *MockKeyedStoreMockRecorder
}

var _ bag.KeyedStore[int, int] = (*MockKeyedStore)(nil)

// MockKeyedStoreMockRecorder is the mock recorder for MockKeyedStore.
type MockKeyedStoreMockRecorder struct {
	mock *MockKeyedStore
}

func NewMockKeyedStore(ctrl *gomock.Controller) *MockKeyedStore {
	mock := &MockKeyedStore{ctrl: ctrl}
	mock.recorder = &MockKeyedStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKeyedStore) EXPECT() *MockKeyedStoreMockRecorder {
	return m.recorder
}

func (m *MockKeyedStore) Begin() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin")
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) Begin() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockKeyedStore)(nil).Begin))
}

func (m *MockKeyedStore) End() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "End")
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) End() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "End", reflect.TypeOf((*MockKeyedStore)(nil).End))
}

func (m *MockKeyedStore) Next(pos int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next", pos)
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) Next(pos interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockKeyedStore)(nil).Next), pos)
}

func (m *MockKeyedStore) Value(pos int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Value", pos)
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) Value(pos interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Value", reflect.TypeOf((*MockKeyedStore)(nil).Value), pos)
}

func (m *MockKeyedStore) Insert(pos int, v int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", pos, v)
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) Insert(pos, v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockKeyedStore)(nil).Insert), pos, v)
}

func (m *MockKeyedStore) Erase(pos int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Erase", pos)
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) Erase(pos interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Erase", reflect.TypeOf((*MockKeyedStore)(nil).Erase), pos)
}

func (m *MockKeyedStore) EraseRange(first, last int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EraseRange", first, last)
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) EraseRange(first, last interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EraseRange", reflect.TypeOf((*MockKeyedStore)(nil).EraseRange), first, last)
}

func (m *MockKeyedStore) EqualRange(v int) (int, int) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EqualRange", v)
	return ret[0].(int), ret[1].(int)
}

func (mr *MockKeyedStoreMockRecorder) EqualRange(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EqualRange", reflect.TypeOf((*MockKeyedStore)(nil).EqualRange), v)
}

func (m *MockKeyedStore) Find(v int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Find", v)
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) Find(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Find", reflect.TypeOf((*MockKeyedStore)(nil).Find), v)
}

func (m *MockKeyedStore) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	return ret[0].(int)
}

func (mr *MockKeyedStoreMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockKeyedStore)(nil).Len))
}
