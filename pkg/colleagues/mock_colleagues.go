// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package colleagues -destination ./mock_colleagues.go -source=./interfaces.go
//

// Package colleagues is a generated GoMock package.
package colleagues

import (
	context "context"
	reflect "reflect"

	types "github.com/una-social/onboarding-service/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockRegistryInterface is a mock of RegistryInterface interface.
type MockRegistryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockRegistryInterfaceMockRecorder
	isgomock struct{}
}

// MockRegistryInterfaceMockRecorder is the mock recorder for MockRegistryInterface.
type MockRegistryInterfaceMockRecorder struct {
	mock *MockRegistryInterface
}

// NewMockRegistryInterface creates a new mock instance.
func NewMockRegistryInterface(ctrl *gomock.Controller) *MockRegistryInterface {
	mock := &MockRegistryInterface{ctrl: ctrl}
	mock.recorder = &MockRegistryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRegistryInterface) EXPECT() *MockRegistryInterfaceMockRecorder {
	return m.recorder
}

// GetAffiliateByEmail mocks base method.
func (m *MockRegistryInterface) GetAffiliateByEmail(ctx context.Context, email string) (*types.Affiliate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAffiliateByEmail", ctx, email)
	ret0, _ := ret[0].(*types.Affiliate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAffiliateByEmail indicates an expected call of GetAffiliateByEmail.
func (mr *MockRegistryInterfaceMockRecorder) GetAffiliateByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAffiliateByEmail", reflect.TypeOf((*MockRegistryInterface)(nil).GetAffiliateByEmail), ctx, email)
}

// ListColleagues mocks base method.
func (m *MockRegistryInterface) ListColleagues(ctx context.Context, orgUnit, excludeEmail string) ([]*types.Affiliate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListColleagues", ctx, orgUnit, excludeEmail)
	ret0, _ := ret[0].([]*types.Affiliate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListColleagues indicates an expected call of ListColleagues.
func (mr *MockRegistryInterfaceMockRecorder) ListColleagues(ctx, orgUnit, excludeEmail any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListColleagues", reflect.TypeOf((*MockRegistryInterface)(nil).ListColleagues), ctx, orgUnit, excludeEmail)
}

// MockCacheInterface is a mock of CacheInterface interface.
type MockCacheInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCacheInterfaceMockRecorder
	isgomock struct{}
}

// MockCacheInterfaceMockRecorder is the mock recorder for MockCacheInterface.
type MockCacheInterfaceMockRecorder struct {
	mock *MockCacheInterface
}

// NewMockCacheInterface creates a new mock instance.
func NewMockCacheInterface(ctrl *gomock.Controller) *MockCacheInterface {
	mock := &MockCacheInterface{ctrl: ctrl}
	mock.recorder = &MockCacheInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCacheInterface) EXPECT() *MockCacheInterfaceMockRecorder {
	return m.recorder
}

// GetColleagues mocks base method.
func (m *MockCacheInterface) GetColleagues(ctx context.Context, orgUnit string) ([]*types.Affiliate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetColleagues", ctx, orgUnit)
	ret0, _ := ret[0].([]*types.Affiliate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetColleagues indicates an expected call of GetColleagues.
func (mr *MockCacheInterfaceMockRecorder) GetColleagues(ctx, orgUnit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetColleagues", reflect.TypeOf((*MockCacheInterface)(nil).GetColleagues), ctx, orgUnit)
}

// SetColleagues mocks base method.
func (m *MockCacheInterface) SetColleagues(ctx context.Context, orgUnit string, colleagues []*types.Affiliate) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetColleagues", ctx, orgUnit, colleagues)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetColleagues indicates an expected call of SetColleagues.
func (mr *MockCacheInterfaceMockRecorder) SetColleagues(ctx, orgUnit, colleagues any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetColleagues", reflect.TypeOf((*MockCacheInterface)(nil).SetColleagues), ctx, orgUnit, colleagues)
}

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// ListColleagues mocks base method.
func (m *MockServiceInterface) ListColleagues(ctx context.Context, caller *types.Principal) ([]*types.Affiliate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListColleagues", ctx, caller)
	ret0, _ := ret[0].([]*types.Affiliate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListColleagues indicates an expected call of ListColleagues.
func (mr *MockServiceInterfaceMockRecorder) ListColleagues(ctx, caller any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListColleagues", reflect.TypeOf((*MockServiceInterface)(nil).ListColleagues), ctx, caller)
}
