package domain

import (
	"context"

	notification "github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
)

// ReceiptInfo é a projeção receita ⋈ pedido ⋈ cliente usada para montar
// o payload de nota fiscal emitida.
type ReceiptInfo struct {
	ReceiptNo  int64
	OrderID    int64
	SocialName string
	Email      string
	NfeKey     string
}

// ReceiptRepository lista as notas ainda sem transação registrada e
// grava o vínculo nota -> TRX. RecordTrx insere a linha PENDING e
// atualiza a nota na mesma transação: ou os dois efeitos entram, ou
// nenhum.
type ReceiptRepository interface {
	FetchUnlogged(ctx context.Context) ([]ReceiptInfo, error)
	RecordTrx(ctx context.Context, receiptNo int64, payload notification.ReceiptIssued) (int64, error)
}
