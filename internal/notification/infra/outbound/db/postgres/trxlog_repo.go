package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// TrxLogRepoPostgres implementa domain.TrxLogRepository sobre Postgres.
type TrxLogRepoPostgres struct {
	db *sql.DB
}

func NewTrxLogRepoPostgres(db *sql.DB) *TrxLogRepoPostgres {
	return &TrxLogRepoPostgres{db: db}
}

// FetchPending obtém as linhas PENDING de um TrxCode, na ordem natural
// da tabela. Leitura pura, sem efeito colateral.
func (r *TrxLogRepoPostgres) FetchPending(ctx context.Context, code domain.TrxCode) ([]domain.PendingTransaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT trx_id, trx_info FROM transaction_log
		 WHERE trx_code = $1 AND trx_status = 'PENDING'`, string(code),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingTransaction
	for rows.Next() {
		trx := domain.PendingTransaction{Code: code, Status: domain.StatusPending}
		var payload []byte
		if err := rows.Scan(&trx.ID, &payload); err != nil {
			return nil, err
		}
		trx.Payload = json.RawMessage(payload)
		pending = append(pending, trx)
	}
	return pending, rows.Err()
}

// MarkProcessed faz a transição PENDING -> PROCESSED na sua própria
// transação. Se nada for atualizado a transação é desfeita e o erro
// sobe, deixando a linha como estava.
func (r *TrxLogRepoPostgres) MarkProcessed(ctx context.Context, id int64) error {
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
		 WHERE trx_id = $1 AND trx_status = 'PENDING'`, id,
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
func (r *TrxLogRepoPostgres) SavePending(ctx context.Context, code domain.TrxCode, payload any) (int64, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal trx payload: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO transaction_log (trx_code, trx_info, trx_status)
		 VALUES ($1, $2, 'PENDING') RETURNING trx_id`,
		string(code), payloadBytes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trx log row: %w", err)
	}
	return id, nil
}

// Verificação em tempo de compilação.
var _ domain.TrxLogRepository = (*TrxLogRepoPostgres)(nil)
