// Package webhook envia documentos de rastreio para a API da loja.
//
// O formato exato do header de autenticação do endpoint nunca foi
// documentado, então o cliente sonda uma lista fixa de formatos
// candidatos contra a mesma URL. Cada candidato é tentado no máximo uma
// vez e só uma recusa de autorização avança para o próximo; isto não é
// retry com espera.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/config"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"go.uber.org/zap"
)

type authCandidate struct {
	name  string
	apply func(h http.Header, token string)
}

// Ordem observada em produção: header simples primeiro, Authorization
// cru por último.
var authCandidates = []authCandidate{
	{"token", func(h http.Header, t string) { h.Set("token", t) }},
	{"Authorization: Bearer", func(h http.Header, t string) { h.Set("Authorization", "Bearer "+t) }},
	{"X-API-Token", func(h http.Header, t string) { h.Set("X-API-Token", t) }},
	{"Authorization", func(h http.Header, t string) { h.Set("Authorization", t) }},
}

// Client posta um documento JSON no webhook de rastreio.
type Client struct {
	url    string
	token  string
	client *http.Client
	log    *zap.Logger
}

func NewClient(cfg *config.WebhookConfig, log *zap.Logger) *Client {
	return &Client{
		url:    cfg.URL,
		token:  cfg.Token,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Post envia o documento com Content-Type application/json. Status 2xx
// encerra com sucesso; 401/403 avança para o próximo candidato;
// qualquer outro status ou falha de rede é terminal na hora.
func (c *Client) Post(ctx context.Context, doc json.RawMessage) error {
	for i, cand := range authCandidates {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(doc))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		cand.apply(req.Header, c.token)

		c.log.Info("🔄 tentando autenticação no webhook",
			zap.Int("attempt", i+1),
			zap.String("header", cand.name),
		)

		resp, err := c.client.Do(req)
		if err != nil {
			return &domain.ConnectivityError{Op: "webhook post", Err: err}
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			c.log.Info("✅ webhook aceitou a requisição",
				zap.String("header", cand.name),
				zap.Int("status", resp.StatusCode),
			)
			return nil
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			c.log.Warn("⚠️ credencial recusada, tentando próximo formato",
				zap.String("header", cand.name),
				zap.Int("status", resp.StatusCode),
			)
		default:
			return &domain.TransportRejectedError{
				Status: resp.StatusCode,
				Reason: "terminal status from webhook",
			}
		}
	}
	return &domain.TransportRejectedError{
		Status: http.StatusUnauthorized,
		Reason: "all authentication header formats rejected",
	}
}
