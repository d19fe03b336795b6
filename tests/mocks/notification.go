package mocks

import (
	"context"

	notification "github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	receipt "github.com/LeonardoMomoPedrosa/AWSCOM/internal/receipt/domain"
	"github.com/stretchr/testify/mock"
)

// MockTrxLogRepo simula a tabela TRANSACTION_LOG.
type MockTrxLogRepo struct {
	mock.Mock
}

func (m *MockTrxLogRepo) FetchPending(ctx context.Context, code notification.TrxCode) ([]notification.PendingTransaction, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]notification.PendingTransaction), args.Error(1)
}

func (m *MockTrxLogRepo) MarkProcessed(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrxLogRepo) SavePending(ctx context.Context, code notification.TrxCode, payload any) (int64, error) {
	args := m.Called(ctx, code, payload)
	return args.Get(0).(int64), args.Error(1)
}

// MockMailer simula o transporte de e-mail.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, mail notification.Mail) error {
	args := m.Called(ctx, mail)
	return args.Error(0)
}

// MockReceiptRepo simula o repositório de notas fiscais.
type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) FetchUnlogged(ctx context.Context) ([]receipt.ReceiptInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]receipt.ReceiptInfo), args.Error(1)
}

func (m *MockReceiptRepo) RecordTrx(ctx context.Context, receiptNo int64, payload notification.ReceiptIssued) (int64, error) {
	args := m.Called(ctx, receiptNo, payload)
	return args.Get(0).(int64), args.Error(1)
}
