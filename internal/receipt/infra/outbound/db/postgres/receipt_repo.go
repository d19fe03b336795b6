package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	notification "github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/receipt/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ReceiptRepoPostgres implementa domain.ReceiptRepository sobre o banco
// transacional da loja.
type ReceiptRepoPostgres struct {
	db *sql.DB
}

func NewReceiptRepoPostgres(db *sql.DB) *ReceiptRepoPostgres {
	return &ReceiptRepoPostgres{db: db}
}

// FetchUnlogged projeta as notas sem vínculo com a TRANSACTION_LOG.
func (r *ReceiptRepoPostgres) FetchUnlogged(ctx context.Context) ([]domain.ReceiptInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.receipt_no, o.pkid, c.social_name, c.email, o.nfe_key
		 FROM receipt r
		 JOIN "order" o ON o.pkid = r.order_id
		 JOIN client c ON c.pkid = o.client_id
		 WHERE r.trx_id IS NULL`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.ReceiptInfo
	for rows.Next() {
		var ri domain.ReceiptInfo
		if err := rows.Scan(&ri.ReceiptNo, &ri.OrderID, &ri.SocialName, &ri.Email, &ri.NfeKey); err != nil {
			return nil, err
		}
		receipts = append(receipts, ri)
	}
	return receipts, rows.Err()
}

// RecordTrx insere a linha PENDING e vincula a nota na mesma transação.
func (r *ReceiptRepoPostgres) RecordTrx(ctx context.Context, receiptNo int64, payload notification.ReceiptIssued) (int64, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal receipt payload: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var trxID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO transaction_log (trx_code, trx_info, trx_status)
		 VALUES ($1, $2, 'PENDING') RETURNING trx_id`,
		string(notification.ReceiptIssuedCode), payloadBytes,
	).Scan(&trxID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert trx log row: %w", err)
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		`UPDATE receipt SET trx_id = $1 WHERE receipt_no = $2`, trxID, receiptNo,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to link receipt: %w", err)
	}

	var rows int64
	rows, err = res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get RowsAffected: %w", err)
	}
	if rows == 0 {
		err = fmt.Errorf("receipt not found: %d", receiptNo)
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return trxID, nil
}

// Verificação em tempo de compilação.
var _ domain.ReceiptRepository = (*ReceiptRepoPostgres)(nil)
