package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report/internal/adapter/driving/handler"
	"github.com/diillson/aws-cost-report/pkg/console"
)

func main() {
	// Sem cores: a saída vai para o CloudWatch Logs.
	consoleImpl := console.NewConsole(false)

	h := handler.NewHandler(handler.DefaultBuild(config.NewConfigRepository(), consoleImpl), consoleImpl)
	lambda.Start(h.Handle)
}
