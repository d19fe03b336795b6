package mail

import (
	"context"
	"errors"
	"time"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/config"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// Espera máxima por aceite do SES antes de classificar como falha
// recuperável da linha.
const sendTimeout = 30 * time.Second

// SESMailer implementa domain.Mailer sobre o Amazon SES, o mesmo
// transporte dos jobs originais.
type SESMailer struct {
	client *ses.Client
	from   string
	log    *zap.Logger
}

func NewSESMailer(ctx context.Context, cfg *config.MailConfig, log *zap.Logger) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, &domain.ConnectivityError{Op: "load aws credentials", Err: err}
	}
	return &SESMailer{
		client: ses.NewFromConfig(awsCfg),
		from:   cfg.FromEmail,
		log:    log,
	}, nil
}

// Send entrega uma mensagem. Retorno nil significa aceita pelo SES.
func (m *SESMailer) Send(ctx context.Context, mail domain.Mail) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	body := &types.Body{}
	if mail.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(mail.HTMLBody), Charset: aws.String("UTF-8")}
	}
	if mail.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(mail.TextBody), Charset: aws.String("UTF-8")}
	}

	m.log.Info("📧 enviando e-mail via SES", zap.String("to", mail.To))

	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses:  []string{mail.To},
			CcAddresses:  mail.Cc,
			BccAddresses: mail.Bcc,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(mail.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &domain.ConnectivityError{Op: "ses send", Err: err}
		}
		return &domain.TransportRejectedError{Reason: err.Error()}
	}

	m.log.Info("✅ e-mail aceito pelo SES",
		zap.String("to", mail.To),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

// Verificação em tempo de compilação.
var _ domain.Mailer = (*SESMailer)(nil)
