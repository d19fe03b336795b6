// Envio do log de rastreio da transportadora para o webhook da loja.
//
//	tracklog [caminho/para/buslog.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/config"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/infra/outbound/webhook"
	"github.com/LeonardoMomoPedrosa/AWSCOM/pkg/logger"
)

const defaultTrackingFile = "buslog.json"

func main() {
	logger.Init()
	log := logger.Logger()
	defer log.Sync()

	path := defaultTrackingFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	doc, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("ERRO ao ler o arquivo:", err)
		os.Exit(1)
	}
	if !json.Valid(doc) {
		fmt.Printf("ERRO: %s não contém JSON válido\n", path)
		os.Exit(1)
	}

	webhookCfg, err := config.LoadWebhook()
	if err != nil {
		fmt.Println("ERRO de configuração:", err)
		os.Exit(1)
	}

	client := webhook.NewClient(webhookCfg, log)
	if err := client.Post(context.Background(), doc); err != nil {
		fmt.Println("ERRO ao enviar para o webhook:", err)
		os.Exit(1)
	}

	fmt.Println("Log de rastreio enviado com sucesso")
}
