package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cost-report/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-report/pkg/console"
	"github.com/diillson/aws-cost-report/pkg/version"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole(true)

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, configRepo, consoleImpl)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
