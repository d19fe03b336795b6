// Job de despacho da TRANSACTION_LOG: drena cada TrxCode uma vez e sai.
// Agendado externamente (cron); o design assume uma única instância por
// ambiente.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/config"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/application"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/domain"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/infra/outbound/db/postgres"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/infra/outbound/db/sqlite"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/notification/infra/outbound/mail"
	"github.com/LeonardoMomoPedrosa/AWSCOM/pkg/logger"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

func main() {
	logger.Init()
	log := logger.Logger()
	defer log.Sync()

	ctx := context.Background()

	storeCfg, err := config.LoadStore()
	if err != nil {
		fmt.Println("ERRO de configuração:", err)
		os.Exit(1)
	}
	mailCfg, err := config.LoadMail()
	if err != nil {
		fmt.Println("ERRO de configuração:", err)
		os.Exit(1)
	}

	var (
		db   *sql.DB
		repo domain.TrxLogRepository
	)
	if storeCfg.LocalDeployment {
		db, err = sql.Open("sqlite", storeCfg.SQLitePath)
		if err == nil {
			err = sqlite.InitSQLite(db)
		}
		repo = sqlite.NewTrxLogRepoSQLite(db)
	} else {
		db, err = sql.Open("pgx", storeCfg.PostgresDSN())
		repo = postgres.NewTrxLogRepoPostgres(db)
	}
	if err != nil {
		fmt.Println("ERRO ao abrir o banco:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fmt.Println("ERRO: banco inacessível:", err)
		os.Exit(1)
	}

	mailer, err := mail.NewSESMailer(ctx, mailCfg, log)
	if err != nil {
		fmt.Println("ERRO ao configurar o SES:", err)
		os.Exit(1)
	}

	dispatcher := application.NewDispatcher(
		repo, mailer, domain.NewPayloadRegistry(),
		mailCfg.CCEmail, mailCfg.BCCEmail, log,
	)

	res, err := dispatcher.DispatchAll(ctx)
	if err != nil {
		log.Error("despacho abortado", zap.Error(err))
		fmt.Println("ERRO fatal durante o despacho:", err)
		os.Exit(1)
	}

	// Falhas por linha não derrubam o job: as linhas ficam PENDING para
	// o próximo agendamento.
	fmt.Printf("Despacho concluído: %d enviadas, %d falhas (seguem PENDING)\n", res.Sent, res.Failed)
}
