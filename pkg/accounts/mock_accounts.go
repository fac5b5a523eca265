// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package accounts -destination ./mock_accounts.go -source=./interfaces.go
//

// Package accounts is a generated GoMock package.
package accounts

import (
	context "context"
	reflect "reflect"

	kratos "github.com/una-social/onboarding-service/internal/kratos"
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

// Authenticate mocks base method.
func (m *MockDirectoryInterface) Authenticate(ctx context.Context, email, password string) (*types.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authenticate", ctx, email, password)
	ret0, _ := ret[0].(*types.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Authenticate indicates an expected call of Authenticate.
func (mr *MockDirectoryInterfaceMockRecorder) Authenticate(ctx, email, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authenticate", reflect.TypeOf((*MockDirectoryInterface)(nil).Authenticate), ctx, email, password)
}

// CreateAccount mocks base method.
func (m *MockDirectoryInterface) CreateAccount(ctx context.Context, params kratos.CreateAccountParams) (*types.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAccount", ctx, params)
	ret0, _ := ret[0].(*types.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateAccount indicates an expected call of CreateAccount.
func (mr *MockDirectoryInterfaceMockRecorder) CreateAccount(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccount", reflect.TypeOf((*MockDirectoryInterface)(nil).CreateAccount), ctx, params)
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

// UpdateAccountCredential mocks base method.
func (m *MockDirectoryInterface) UpdateAccountCredential(ctx context.Context, account *types.Account, password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAccountCredential", ctx, account, password)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateAccountCredential indicates an expected call of UpdateAccountCredential.
func (mr *MockDirectoryInterfaceMockRecorder) UpdateAccountCredential(ctx, account, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAccountCredential", reflect.TypeOf((*MockDirectoryInterface)(nil).UpdateAccountCredential), ctx, account, password)
}

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

// Register mocks base method.
func (m *MockServiceInterface) Register(ctx context.Context, email, password string, mode types.ConfirmMode) (*RegisterResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", ctx, email, password, mode)
	ret0, _ := ret[0].(*RegisterResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register.
func (mr *MockServiceInterfaceMockRecorder) Register(ctx, email, password, mode any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockServiceInterface)(nil).Register), ctx, email, password, mode)
}

// SetInitialCredential mocks base method.
func (m *MockServiceInterface) SetInitialCredential(ctx context.Context, email, password string) (*types.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetInitialCredential", ctx, email, password)
	ret0, _ := ret[0].(*types.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetInitialCredential indicates an expected call of SetInitialCredential.
func (mr *MockServiceInterfaceMockRecorder) SetInitialCredential(ctx, email, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInitialCredential", reflect.TypeOf((*MockServiceInterface)(nil).SetInitialCredential), ctx, email, password)
}

// VerifyAffiliateEmail mocks base method.
func (m *MockServiceInterface) VerifyAffiliateEmail(ctx context.Context, email string) (*AffiliateVerificationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyAffiliateEmail", ctx, email)
	ret0, _ := ret[0].(*AffiliateVerificationResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyAffiliateEmail indicates an expected call of VerifyAffiliateEmail.
func (mr *MockServiceInterfaceMockRecorder) VerifyAffiliateEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyAffiliateEmail", reflect.TypeOf((*MockServiceInterface)(nil).VerifyAffiliateEmail), ctx, email)
}

// VerifyDomainEmail mocks base method.
func (m *MockServiceInterface) VerifyDomainEmail(ctx context.Context, email string) (*VerificationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyDomainEmail", ctx, email)
	ret0, _ := ret[0].(*VerificationResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyDomainEmail indicates an expected call of VerifyDomainEmail.
func (mr *MockServiceInterfaceMockRecorder) VerifyDomainEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyDomainEmail", reflect.TypeOf((*MockServiceInterface)(nil).VerifyDomainEmail), ctx, email)
}
