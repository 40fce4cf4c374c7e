package main

import (
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/interbanking/backend/internal/infrastructure/logger"
	"github.com/interbanking/backend/internal/interfaces/lambda"
)

func main() {
	logCfg := logger.DefaultConfig()
	logCfg.Format = "json"
	if level := os.Getenv("IB_LOG_LEVEL"); level != "" {
		logCfg.Level = level
	}

	log, err := logger.New(logCfg, logger.WithFields(zap.String("function", "company-adhesion")))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	handler := lambda.NewHandler(lambda.Bootstrap(log), lambda.WithLogger(log))
	awslambda.Start(handler.Handle)
}
