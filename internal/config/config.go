package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// ConfigurationError indica uma variável de ambiente obrigatória ausente.
// Credenciais nunca recebem default silencioso.
type ConfigurationError struct {
	Var string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Var)
}

// StoreConfig reúne os parâmetros de conexão com o banco transacional.
type StoreConfig struct {
	Host            string
	Database        string
	User            string
	Password        string
	Port            string
	SQLitePath      string
	LocalDeployment bool
}

// PostgresDSN monta a connection string no formato URL do pgx.
func (c *StoreConfig) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Database)
}

// MailConfig reúne remetente e cópias usados pelo envio via SES.
type MailConfig struct {
	Region    string
	FromEmail string
	CCEmail   string
	BCCEmail  string
}

// WebhookConfig reúne endpoint e token do webhook de rastreio.
type WebhookConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func requireEnv(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	return "", &ConfigurationError{Var: key}
}

// LoadStore lê as variáveis AA_DB_* herdadas dos jobs originais.
// Com AA_LOCAL_DEPLOYMENT=1 o banco passa a ser um arquivo SQLite local
// e as credenciais de rede deixam de ser exigidas.
func LoadStore() (*StoreConfig, error) {
	cfg := &StoreConfig{
		SQLitePath:      getEnv("AA_SQLITE_PATH", "./aquanimal_trx.db"),
		LocalDeployment: os.Getenv("AA_LOCAL_DEPLOYMENT") == "1",
	}
	if cfg.LocalDeployment {
		return cfg, nil
	}

	var err error
	if cfg.Host, err = requireEnv("AA_DBSERVER"); err != nil {
		return nil, err
	}
	if cfg.Database, err = requireEnv("AA_DB_DATABASE"); err != nil {
		return nil, err
	}
	if cfg.User, err = requireEnv("AA_DB_UID"); err != nil {
		return nil, err
	}
	if cfg.Password, err = requireEnv("AA_DB_PWD"); err != nil {
		return nil, err
	}
	if cfg.Port, err = requireEnv("AA_DB_PORT"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMail lê região e endereços do SES. Apenas os endereços de cópia
// têm default; a região é obrigatória.
func LoadMail() (*MailConfig, error) {
	region, err := requireEnv("AWS_REGION")
	if err != nil {
		return nil, err
	}
	return &MailConfig{
		Region:    region,
		FromEmail: getEnv("SES_FROM_EMAIL", "aquanimal@aquanimal.com.br"),
		CCEmail:   getEnv("SES_CC_EMAIL", "aquanimal@aquanimal.com.br"),
		BCCEmail:  getEnv("SES_BCC_EMAIL", ""),
	}, nil
}

// LoadWebhook lê o endpoint de rastreio. O nome minúsculo buslog_token
// vem dos jobs originais e foi mantido para não quebrar os crontabs.
func LoadWebhook() (*WebhookConfig, error) {
	token, err := requireEnv("buslog_token")
	if err != nil {
		return nil, err
	}
	return &WebhookConfig{
		URL:     getEnv("AA_WEBHOOK_URL", "https://aquanimal.com.br/apicom/webhook/track3rc"),
		Token:   token,
		Timeout: 30 * time.Second,
	}, nil
}
