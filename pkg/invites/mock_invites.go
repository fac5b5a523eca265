// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package invites -destination ./mock_invites.go -source=./interfaces.go
//

// Package invites is a generated GoMock package.
package invites

import (
	context "context"
	reflect "reflect"

	mail "github.com/una-social/onboarding-service/internal/mail"
	types "github.com/una-social/onboarding-service/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockDirectoryInterface is a mock of DirectoryInterface interface.
type MockDirectoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDirectoryInterfaceMockRecorder
	isgomock struct{}
}

// MockDirectoryInterfaceMockRecorder is the mock recorder for MockDirectoryInterface.
type MockDirectoryInterfaceMockRecorder struct {
	mock *MockDirectoryInterface
}

// NewMockDirectoryInterface creates a new mock instance.
func NewMockDirectoryInterface(ctrl *gomock.Controller) *MockDirectoryInterface {
	mock := &MockDirectoryInterface{ctrl: ctrl}
	mock.recorder = &MockDirectoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDirectoryInterface) EXPECT() *MockDirectoryInterfaceMockRecorder {
	return m.recorder
}

// FindAccountByEmail mocks base method.
func (m *MockDirectoryInterface) FindAccountByEmail(ctx context.Context, email string) (*types.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAccountByEmail", ctx, email)
	ret0, _ := ret[0].(*types.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAccountByEmail indicates an expected call of FindAccountByEmail.
func (mr *MockDirectoryInterfaceMockRecorder) FindAccountByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAccountByEmail", reflect.TypeOf((*MockDirectoryInterface)(nil).FindAccountByEmail), ctx, email)
}

// GenerateVerificationLink mocks base method.
func (m *MockDirectoryInterface) GenerateVerificationLink(ctx context.Context, email string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateVerificationLink", ctx, email)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateVerificationLink indicates an expected call of GenerateVerificationLink.
func (mr *MockDirectoryInterfaceMockRecorder) GenerateVerificationLink(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateVerificationLink", reflect.TypeOf((*MockDirectoryInterface)(nil).GenerateVerificationLink), ctx, email)
}

// MockLedgerInterface is a mock of LedgerInterface interface.
type MockLedgerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerInterfaceMockRecorder
	isgomock struct{}
}

// MockLedgerInterfaceMockRecorder is the mock recorder for MockLedgerInterface.
type MockLedgerInterfaceMockRecorder struct {
	mock *MockLedgerInterface
}

// NewMockLedgerInterface creates a new mock instance.
func NewMockLedgerInterface(ctrl *gomock.Controller) *MockLedgerInterface {
	mock := &MockLedgerInterface{ctrl: ctrl}
	mock.recorder = &MockLedgerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerInterface) EXPECT() *MockLedgerInterfaceMockRecorder {
	return m.recorder
}

// CreateInvite mocks base method.
func (m *MockLedgerInterface) CreateInvite(ctx context.Context, inviterID, invitedEmail, token string) (*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateInvite", ctx, inviterID, invitedEmail, token)
	ret0, _ := ret[0].(*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateInvite indicates an expected call of CreateInvite.
func (mr *MockLedgerInterfaceMockRecorder) CreateInvite(ctx, inviterID, invitedEmail, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateInvite", reflect.TypeOf((*MockLedgerInterface)(nil).CreateInvite), ctx, inviterID, invitedEmail, token)
}

// GetInviteByToken mocks base method.
func (m *MockLedgerInterface) GetInviteByToken(ctx context.Context, token string) (*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInviteByToken", ctx, token)
	ret0, _ := ret[0].(*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetInviteByToken indicates an expected call of GetInviteByToken.
func (mr *MockLedgerInterfaceMockRecorder) GetInviteByToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInviteByToken", reflect.TypeOf((*MockLedgerInterface)(nil).GetInviteByToken), ctx, token)
}

// ListInvitesByInviter mocks base method.
func (m *MockLedgerInterface) ListInvitesByInviter(ctx context.Context, inviterID string) ([]*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListInvitesByInviter", ctx, inviterID)
	ret0, _ := ret[0].([]*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListInvitesByInviter indicates an expected call of ListInvitesByInviter.
func (mr *MockLedgerInterfaceMockRecorder) ListInvitesByInviter(ctx, inviterID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListInvitesByInviter", reflect.TypeOf((*MockLedgerInterface)(nil).ListInvitesByInviter), ctx, inviterID)
}

// UpdateInviteStatus mocks base method.
func (m *MockLedgerInterface) UpdateInviteStatus(ctx context.Context, id, status string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateInviteStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateInviteStatus indicates an expected call of UpdateInviteStatus.
func (mr *MockLedgerInterfaceMockRecorder) UpdateInviteStatus(ctx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateInviteStatus", reflect.TypeOf((*MockLedgerInterface)(nil).UpdateInviteStatus), ctx, id, status)
}

// MockEmailServiceInterface is a mock of EmailServiceInterface interface.
type MockEmailServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockEmailServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockEmailServiceInterfaceMockRecorder is the mock recorder for MockEmailServiceInterface.
type MockEmailServiceInterfaceMockRecorder struct {
	mock *MockEmailServiceInterface
}

// NewMockEmailServiceInterface creates a new mock instance.
func NewMockEmailServiceInterface(ctrl *gomock.Controller) *MockEmailServiceInterface {
	mock := &MockEmailServiceInterface{ctrl: ctrl}
	mock.recorder = &MockEmailServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEmailServiceInterface) EXPECT() *MockEmailServiceInterfaceMockRecorder {
	return m.recorder
}

// Send mocks base method.
func (m *MockEmailServiceInterface) Send(ctx context.Context, to string, template mail.TemplateType, data mail.TemplateData) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, to, template, data)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send.
func (mr *MockEmailServiceInterfaceMockRecorder) Send(ctx, to, template, data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockEmailServiceInterface)(nil).Send), ctx, to, template, data)
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

// AcceptInvite mocks base method.
func (m *MockServiceInterface) AcceptInvite(ctx context.Context, token string) (*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcceptInvite", ctx, token)
	ret0, _ := ret[0].(*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AcceptInvite indicates an expected call of AcceptInvite.
func (mr *MockServiceInterfaceMockRecorder) AcceptInvite(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcceptInvite", reflect.TypeOf((*MockServiceInterface)(nil).AcceptInvite), ctx, token)
}

// IssuePeerInvite mocks base method.
func (m *MockServiceInterface) IssuePeerInvite(ctx context.Context, inviter *types.Principal, email string) (*InviteResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IssuePeerInvite", ctx, inviter, email)
	ret0, _ := ret[0].(*InviteResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IssuePeerInvite indicates an expected call of IssuePeerInvite.
func (mr *MockServiceInterfaceMockRecorder) IssuePeerInvite(ctx, inviter, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IssuePeerInvite", reflect.TypeOf((*MockServiceInterface)(nil).IssuePeerInvite), ctx, inviter, email)
}

// ListMyInvites mocks base method.
func (m *MockServiceInterface) ListMyInvites(ctx context.Context, inviterID string) ([]*types.Invitation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMyInvites", ctx, inviterID)
	ret0, _ := ret[0].([]*types.Invitation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMyInvites indicates an expected call of ListMyInvites.
func (mr *MockServiceInterfaceMockRecorder) ListMyInvites(ctx, inviterID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMyInvites", reflect.TypeOf((*MockServiceInterface)(nil).ListMyInvites), ctx, inviterID)
}
