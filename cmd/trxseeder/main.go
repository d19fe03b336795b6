// Job de semeadura: transforma notas fiscais recém emitidas em linhas
// receipt-issued PENDING na TRANSACTION_LOG.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/config"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/receipt/application"
	"github.com/LeonardoMomoPedrosa/AWSCOM/internal/receipt/infra/outbound/db/postgres"
	"github.com/LeonardoMomoPedrosa/AWSCOM/pkg/logger"
	"go.uber.org/zap"
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

	db, err := sql.Open("pgx", storeCfg.PostgresDSN())
	if err != nil {
		fmt.Println("ERRO ao abrir o banco:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fmt.Println("ERRO: banco inacessível:", err)
		os.Exit(1)
	}

	seeder := application.NewSeeder(postgres.NewReceiptRepoPostgres(db), log)
	seeded, err := seeder.Run(ctx)
	if err != nil {
		log.Error("semeadura abortada", zap.Error(err))
		fmt.Println("ERRO fatal durante a semeadura:", err)
		os.Exit(1)
	}

	fmt.Printf("Semeadura concluída: %d notas registradas na TRANSACTION_LOG\n", seeded)
}
