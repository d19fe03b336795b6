package application

import (
	"context"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/render"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher drena as linhas PENDING da TRANSACTION_LOG de um TrxCode:
// decodifica, renderiza, envia e marca PROCESSED, uma linha por vez.
//
// O envio acontece antes do commit. Uma queda entre os dois reenvia a
// notificação na próxima execução: entrega at-least-once, herdada dos
// jobs originais.
type Dispatcher struct {
	repo     domain.TrxLogRepository
	mailer   domain.Mailer
	registry map[domain.TrxCode]domain.PayloadMetadata
	storeCC  string
	adminBCC string
	log      *zap.Logger
}

func NewDispatcher(
	repo domain.TrxLogRepository,
	mailer domain.Mailer,
	registry map[domain.TrxCode]domain.PayloadMetadata,
	storeCC string,
	adminBCC string,
	log *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		mailer:   mailer,
		registry: registry,
		storeCC:  storeCC,
		adminBCC: adminBCC,
		log:      log,
	}
}

// DispatchResult resume um ciclo de despacho.
type DispatchResult struct {
	Sent   int
	Failed int
}

// DispatchAll roda um ciclo para cada TrxCode registrado. Erros por
// linha não interrompem nada; só falha de banco aborta a execução.
func (d *Dispatcher) DispatchAll(ctx context.Context) (DispatchResult, error) {
	var total DispatchResult
	for _, code := range domain.AllCodes {
		res, err := d.DispatchPending(ctx, code)
		total.Sent += res.Sent
		total.Failed += res.Failed
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// DispatchPending busca as linhas PENDING do código e processa cada uma
// em isolamento: uma linha ruim é logada, fica PENDING e o lote segue.
func (d *Dispatcher) DispatchPending(ctx context.Context, code domain.TrxCode) (DispatchResult, error) {
	runLog := d.log.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("trx_code", string(code)),
	)

	rows, err := d.repo.FetchPending(ctx, code)
	if err != nil {
		return DispatchResult{}, &domain.ConnectivityError{Op: "fetch pending transactions", Err: err}
	}
	if len(rows) > 0 {
		runLog.Info("📬 transações pendentes encontradas", zap.Int("count", len(rows)))
	}

	var res DispatchResult
	for _, row := range rows {
		if err := d.sendAndMark(ctx, row); err != nil {
			runLog.Warn("⚠️ falha ao despachar transação, linha segue PENDING",
				zap.Int64("trx_id", row.ID),
				zap.Error(err),
			)
			res.Failed++
			continue
		}
		runLog.Info("✅ transação enviada e marcada PROCESSED", zap.Int64("trx_id", row.ID))
		res.Sent++
	}
	return res, nil
}

func (d *Dispatcher) sendAndMark(ctx context.Context, row domain.PendingTransaction) error {
	record, err := domain.Decode(d.registry, row.Code, row.Payload)
	if err != nil {
		return err
	}

	body, err := render.Render(string(row.Code), record.TemplateData())
	if err != nil {
		return err
	}

	mail := domain.Mail{
		To:       record.Recipient(),
		Subject:  render.Subject(string(row.Code)),
		HTMLBody: body,
	}
	if d.registry[row.Code].CopyStore && d.storeCC != "" {
		mail.Cc = []string{d.storeCC}
	}
	if d.adminBCC != "" {
		mail.Bcc = []string{d.adminBCC}
	}

	if err := d.mailer.Send(ctx, mail); err != nil {
		return err
	}

	// A partir daqui a notificação já saiu; se o commit falhar a linha
	// fica PENDING e o próximo ciclo reenvia.
	return d.repo.MarkProcessed(ctx, row.ID)
}
