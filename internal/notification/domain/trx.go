package domain

import (
	"context"
	"encoding/json"
)

// TrxCode identifica o tipo de notificação de uma linha da TRANSACTION_LOG.
type TrxCode string

const (
	ReceiptIssuedCode   TrxCode = "receipt-issued"
	OrderConfirmedCode  TrxCode = "order-confirmed"
	OrderShippedCode    TrxCode = "order-shipped"
	PickupReadyCode     TrxCode = "pickup-ready"
	PaymentDeclinedCode TrxCode = "payment-declined"
	PasswordResetCode   TrxCode = "password-reset"
)

// AllCodes fixa a ordem de drenagem dos ciclos de despacho.
var AllCodes = []TrxCode{
	ReceiptIssuedCode,
	OrderConfirmedCode,
	OrderShippedCode,
	PickupReadyCode,
	PaymentDeclinedCode,
	PasswordResetCode,
}

// TrxStatus é o estado de despacho de uma linha. A transição válida é
// PENDING -> PROCESSED, uma única vez, nunca no sentido inverso.
type TrxStatus string

const (
	StatusPending   TrxStatus = "PENDING"
	StatusProcessed TrxStatus = "PROCESSED"
)

// PendingTransaction representa uma linha da tabela TRANSACTION_LOG
// aguardando despacho. O payload fica opaco até o Decode.
type PendingTransaction struct {
	ID      int64
	Code    TrxCode
	Payload json.RawMessage
	Status  TrxStatus
}

// TrxLogRepository define o contrato de acesso à tabela TRANSACTION_LOG.
// MarkProcessed roda na sua própria transação: se o UPDATE ou o commit
// falhar, a linha permanece PENDING para o próximo ciclo.
type TrxLogRepository interface {
	FetchPending(ctx context.Context, code TrxCode) ([]PendingTransaction, error)
	MarkProcessed(ctx context.Context, id int64) error
	SavePending(ctx context.Context, code TrxCode, payload any) (int64, error)
}

// Mail é o envelope neutro de transporte de uma notificação.
type Mail struct {
	To       string
	Cc       []string
	Bcc      []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer envia uma notificação. Retorno nil significa aceito pelo
// transporte; qualquer erro deixa a linha correspondente PENDING.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}
