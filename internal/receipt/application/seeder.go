package application

import (
	"context"
	"strconv"

	notification "github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/receipt/domain"
	"go.uber.org/zap"
)

// Seeder alimenta a TRANSACTION_LOG a partir das notas fiscais recém
// emitidas: cada nota sem vínculo vira uma linha receipt-issued PENDING
// que o dispatcher drena depois.
type Seeder struct {
	repo domain.ReceiptRepository
	log  *zap.Logger
}

func NewSeeder(repo domain.ReceiptRepository, log *zap.Logger) *Seeder {
	return &Seeder{repo: repo, log: log}
}

// Run registra uma transação por nota, cada uma no seu próprio commit.
// Uma nota com problema é logada e pulada; as demais seguem.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	receipts, err := s.repo.FetchUnlogged(ctx)
	if err != nil {
		return 0, &notification.ConnectivityError{Op: "fetch unlogged receipts", Err: err}
	}
	s.log.Info("🧾 notas fiscais sem transação encontradas", zap.Int("count", len(receipts)))

	seeded := 0
	for _, r := range receipts {
		payload := notification.ReceiptIssued{
			Email:       r.Email,
			DisplayName: r.SocialName,
			ReceiptNo:   strconv.FormatInt(r.ReceiptNo, 10),
			NfeKey:      r.NfeKey,
			OrderID:     strconv.FormatInt(r.OrderID, 10),
		}
		trxID, err := s.repo.RecordTrx(ctx, r.ReceiptNo, payload)
		if err != nil {
			s.log.Warn("⚠️ falha ao registrar transação da nota, nota segue sem vínculo",
				zap.Int64("receipt_no", r.ReceiptNo),
				zap.Error(err),
			)
			continue
		}
		s.log.Info("✅ nota vinculada à transação",
			zap.Int64("receipt_no", r.ReceiptNo),
			zap.Int64("trx_id", trxID),
		)
		seeded++
	}
	return seeded, nil
}
