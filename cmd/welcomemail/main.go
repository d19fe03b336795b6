// Envio avulso do e-mail de boas-vindas.
//
//	welcomemail cliente@example.com
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/config"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/application"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/infra/outbound/mail"
	"github.com/LeonardoMomoPedrosa/AWSCOM/pkg/logger"
)

func main() {
	logger.Init()
	log := logger.Logger()
	defer log.Sync()

	if len(os.Args) != 2 {
		fmt.Printf("Uso: %s email@example.com\n", os.Args[0])
		os.Exit(1)
	}
	recipient := os.Args[1]

	ctx := context.Background()

	mailCfg, err := config.LoadMail()
	if err != nil {
		fmt.Println("ERRO de configuração:", err)
		os.Exit(1)
	}

	mailer, err := mail.NewSESMailer(ctx, mailCfg, log)
	if err != nil {
		fmt.Println("ERRO ao configurar o SES:", err)
		os.Exit(1)
	}

	svc := application.NewWelcomeService(mailer, mailCfg.BCCEmail, log)
	if err := svc.Send(ctx, recipient); err != nil {
		fmt.Println("ERRO ao enviar e-mail:", err)
		os.Exit(1)
	}

	fmt.Println("E-mail de boas-vindas enviado para", recipient)
}
