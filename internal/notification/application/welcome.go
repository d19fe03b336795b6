package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/render"
	"go.uber.org/zap"
)

// WelcomeService envia o e-mail avulso de boas-vindas usado quando um
// cadastro falha no site. Não passa pela TRANSACTION_LOG.
type WelcomeService struct {
	mailer   domain.Mailer
	adminBCC string
	log      *zap.Logger
}

func NewWelcomeService(mailer domain.Mailer, adminBCC string, log *zap.Logger) *WelcomeService {
	return &WelcomeService{mailer: mailer, adminBCC: adminBCC, log: log}
}

// Send valida o endereço e dispara o e-mail em HTML com fallback texto.
func (s *WelcomeService) Send(ctx context.Context, recipient string) error {
	recipient = strings.TrimSpace(recipient)
	if !strings.Contains(recipient, "@") || !strings.Contains(recipient, ".") {
		return fmt.Errorf("invalid email address: %q", recipient)
	}

	body, err := render.Render(render.WelcomeTemplateID, nil)
	if err != nil {
		return err
	}

	mail := domain.Mail{
		To:       recipient,
		Subject:  render.Subject(render.WelcomeTemplateID),
		HTMLBody: body,
		TextBody: render.WelcomeText,
	}
	if s.adminBCC != "" {
		mail.Bcc = []string{s.adminBCC}
	}

	s.log.Info("📧 enviando e-mail de boas-vindas", zap.String("to", recipient))
	return s.mailer.Send(ctx, mail)
}
