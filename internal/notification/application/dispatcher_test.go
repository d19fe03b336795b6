package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/LeonardoMomoPedrosa/AWSCOM/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDispatcher(repo domain.TrxLogRepository, mailer domain.Mailer) *Dispatcher {
	return NewDispatcher(repo, mailer, domain.NewPayloadRegistry(),
		"aquanimal@aquanimal.com.br", "admin@aquanimal.com.br", zap.NewNop())
}

func pendingRow(id int64, code domain.TrxCode, payload string) domain.PendingTransaction {
	return domain.PendingTransaction{
		ID:      id,
		Code:    code,
		Payload: json.RawMessage(payload),
		Status:  domain.StatusPending,
	}
}

func TestDispatchPending_SendsAndMarksProcessed(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrxLogRepo)
	mailer := new(mocks.MockMailer)

	row := pendingRow(7, domain.OrderShippedCode,
		`{"recipient":"maria@example.com","displayName":"Maria","orderId":"1029"}`)

	repo.On("FetchPending", mock.Anything, domain.OrderShippedCode).
		Return([]domain.PendingTransaction{row}, nil).Once()
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(m domain.Mail) bool {
		return m.To == "maria@example.com" &&
			m.Subject == "Pedido Enviado!" &&
			strings.Contains(m.HTMLBody, "Maria") &&
			strings.Contains(m.HTMLBody, "1029")
	})).Return(nil).Once()
	repo.On("MarkProcessed", mock.Anything, int64(7)).Return(nil).Once()

	res, err := newTestDispatcher(repo, mailer).DispatchPending(ctx, domain.OrderShippedCode)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 0, res.Failed)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestDispatchPending_MalformedRowDoesNotBlockBatch(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrxLogRepo)
	mailer := new(mocks.MockMailer)

	bad := pendingRow(1, domain.OrderShippedCode, `{"recipient": nonsense`)
	good := pendingRow(2, domain.OrderShippedCode,
		`{"recipient":"ana@example.com","displayName":"Ana","orderId":"55"}`)

	repo.On("FetchPending", mock.Anything, domain.OrderShippedCode).
		Return([]domain.PendingTransaction{bad, good}, nil).Once()
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("MarkProcessed", mock.Anything, int64(2)).Return(nil).Once()

	res, err := newTestDispatcher(repo, mailer).DispatchPending(ctx, domain.OrderShippedCode)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Failed)
	// A linha ruim nunca gera envio nem commit.
	repo.AssertNotCalled(t, "MarkProcessed", mock.Anything, int64(1))
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestDispatchPending_MissingDisplayNameLeavesRowPending(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrxLogRepo)
	mailer := new(mocks.MockMailer)

	row := pendingRow(3, domain.OrderShippedCode,
		`{"recipient":"maria@example.com","orderId":"1029"}`)

	repo.On("FetchPending", mock.Anything, domain.OrderShippedCode).
		Return([]domain.PendingTransaction{row}, nil).Once()

	res, err := newTestDispatcher(repo, mailer).DispatchPending(ctx, domain.OrderShippedCode)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 1, res.Failed)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
}

func TestDispatchPending_RejectedSendIsNotCommitted(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrxLogRepo)
	mailer := new(mocks.MockMailer)

	row := pendingRow(4, domain.PickupReadyCode,
		`{"recipient":"joao@example.com","displayName":"João","orderId":"88"}`)

	repo.On("FetchPending", mock.Anything, domain.PickupReadyCode).
		Return([]domain.PendingTransaction{row}, nil).Once()
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(&domain.TransportRejectedError{Reason: "mailbox does not exist"}).Once()

	res, err := newTestDispatcher(repo, mailer).DispatchPending(ctx, domain.PickupReadyCode)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 1, res.Failed)
	repo.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
}

func TestDispatchPending_FetchFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrxLogRepo)
	mailer := new(mocks.MockMailer)

	repo.On("FetchPending", mock.Anything, domain.ReceiptIssuedCode).
		Return([]domain.PendingTransaction(nil), errors.New("connection refused")).Once()

	_, err := newTestDispatcher(repo, mailer).DispatchPending(ctx, domain.ReceiptIssuedCode)

	var connErr *domain.ConnectivityError
	require.ErrorAs(t, err, &connErr)
}

func TestDispatchPending_OrderConfirmedCopiesStore(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrxLogRepo)
	mailer := new(mocks.MockMailer)

	row := pendingRow(5, domain.OrderConfirmedCode,
		`{"recipient":"ana@example.com","displayName":"Ana","orderId":"301"}`)

	repo.On("FetchPending", mock.Anything, domain.OrderConfirmedCode).
		Return([]domain.PendingTransaction{row}, nil).Once()
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(m domain.Mail) bool {
		return len(m.Cc) == 1 && m.Cc[0] == "aquanimal@aquanimal.com.br" &&
			len(m.Bcc) == 1 && m.Bcc[0] == "admin@aquanimal.com.br"
	})).Return(nil).Once()
	repo.On("MarkProcessed", mock.Anything, int64(5)).Return(nil).Once()

	res, err := newTestDispatcher(repo, mailer).DispatchPending(ctx, domain.OrderConfirmedCode)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	mailer.AssertExpectations(t)
}

func TestDispatchPending_MarkFailureCountsAsRowFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockTrxLogRepo)
	mailer := new(mocks.MockMailer)

	row := pendingRow(6, domain.PasswordResetCode,
		`{"recipient":"ana@example.com","tempPassword":"x1y2z3"}`)

	repo.On("FetchPending", mock.Anything, domain.PasswordResetCode).
		Return([]domain.PendingTransaction{row}, nil).Once()
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("MarkProcessed", mock.Anything, int64(6)).
		Return(errors.New("deadlock detected")).Once()

	res, err := newTestDispatcher(repo, mailer).DispatchPending(ctx, domain.PasswordResetCode)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 1, res.Failed)
}
