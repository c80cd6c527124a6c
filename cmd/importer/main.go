package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/DanRulev/finquest.git/internal/config"
	"github.com/DanRulev/finquest.git/internal/importer"
	"github.com/DanRulev/finquest.git/internal/storage/db"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "path to the lessons workbook (.xlsx)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file lessons.xlsx")
		os.Exit(2)
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	report, err := importer.New(conn, logger).ImportFile(context.Background(), *file)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	fmt.Printf("imported %d lessons, %d questions, %d pages (%d rows skipped)\n",
		report.Lessons, report.Questions, report.Pages, len(report.Skipped))
}
