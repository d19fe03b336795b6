package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) *TrxLogRepoSQLite {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// :memory: existe por conexão; o pool precisa ficar em uma só.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, InitSQLite(db))
	return NewTrxLogRepoSQLite(db)
}

func TestTrxLogRepo_FetchFiltersByCodeAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	shipped := domain.OrderNotice{Email: "maria@example.com", DisplayName: "Maria", OrderID: "1029"}
	confirmed := domain.OrderNotice{Email: "ana@example.com", DisplayName: "Ana", OrderID: "55"}

	shippedID, err := repo.SavePending(ctx, domain.OrderShippedCode, shipped)
	require.NoError(t, err)
	_, err = repo.SavePending(ctx, domain.OrderConfirmedCode, confirmed)
	require.NoError(t, err)

	pending, err := repo.FetchPending(ctx, domain.OrderShippedCode)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, shippedID, pending[0].ID)
	assert.Equal(t, domain.OrderShippedCode, pending[0].Code)

	// O payload gravado decodifica de volta no registro tipado.
	record, err := domain.Decode(domain.NewPayloadRegistry(), pending[0].Code, pending[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", record.Recipient())
}

func TestTrxLogRepo_MarkProcessedExcludesRowFromNextFetch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	payload := domain.OrderNotice{Email: "maria@example.com", DisplayName: "Maria", OrderID: "1029"}
	id, err := repo.SavePending(ctx, domain.OrderShippedCode, payload)
	require.NoError(t, err)

	require.NoError(t, repo.MarkProcessed(ctx, id))

	pending, err := repo.FetchPending(ctx, domain.OrderShippedCode)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTrxLogRepo_MarkProcessedIsNotRepeatable(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.SavePending(ctx, domain.PasswordResetCode,
		domain.PasswordReset{Email: "ana@example.com", TempPassword: "x1y2z3"})
	require.NoError(t, err)

	require.NoError(t, repo.MarkProcessed(ctx, id))
	// A transição PENDING -> PROCESSED acontece uma única vez.
	require.Error(t, repo.MarkProcessed(ctx, id))
}

func TestTrxLogRepo_MarkProcessedUnknownIDFails(t *testing.T) {
	repo := newTestRepo(t)
	require.Error(t, repo.MarkProcessed(context.Background(), 424242))
}
