package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
)

// InitSQLite cria a TRANSACTION_LOG para deployments locais e testes.
func InitSQLite(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transaction_log (
			trx_id     INTEGER PRIMARY KEY AUTOINCREMENT,
			trx_code   TEXT NOT NULL,
			trx_info   TEXT NOT NULL,
			trx_status TEXT NOT NULL DEFAULT 'PENDING'
		)`)
	return err
}

// TrxLogRepoSQLite implementa domain.TrxLogRepository sobre SQLite.
type TrxLogRepoSQLite struct {
	db *sql.DB
}

func NewTrxLogRepoSQLite(db *sql.DB) *TrxLogRepoSQLite {
	return &TrxLogRepoSQLite{db: db}
}

// FetchPending obtém as linhas PENDING de um TrxCode.
func (r *TrxLogRepoSQLite) FetchPending(ctx context.Context, code domain.TrxCode) ([]domain.PendingTransaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT trx_id, trx_info FROM transaction_log
		 WHERE trx_code = ? AND trx_status = 'PENDING'`, string(code),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingTransaction
	for rows.Next() {
		trx := domain.PendingTransaction{Code: code, Status: domain.StatusPending}
		var payload string // o payload é TEXT no SQLite
		if err := rows.Scan(&trx.ID, &payload); err != nil {
			return nil, err
		}
		trx.Payload = json.RawMessage(payload)
		pending = append(pending, trx)
	}
	return pending, rows.Err()
}

// MarkProcessed faz a transição PENDING -> PROCESSED na sua própria
// transação, com rollback se a linha não existir mais.
func (r *TrxLogRepoSQLite) MarkProcessed(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		`UPDATE transaction_log SET trx_status = 'PROCESSED'
		 WHERE trx_id = ? AND trx_status = 'PENDING'`, id,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	var rows int64
	rows, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get RowsAffected: %w", err)
	}
	if rows == 0 {
		err = fmt.Errorf("pending transaction not found: %d", id)
		return err
	}
	return tx.Commit()
}

// SavePending insere uma nova linha PENDING e devolve o trx_id gerado.
func (r *TrxLogRepoSQLite) SavePending(ctx context.Context, code domain.TrxCode, payload any) (int64, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal trx payload: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transaction_log (trx_code, trx_info, trx_status)
		 VALUES (?, ?, 'PENDING')`,
		string(code), string(payloadBytes),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trx log row: %w", err)
	}
	return res.LastInsertId()
}

// Verificação em tempo de compilação.
var _ domain.TrxLogRepository = (*TrxLogRepoSQLite)(nil)
