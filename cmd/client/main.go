package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SurveySession/internal/commands"
	"SurveySession/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	commands.SetLogger(sugar)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	sugar.Debugw("Config",
		"Backend", cfg.Backend,
		"StoreDir", cfg.StoreDir,
		"ClientDBPath", cfg.ClientDBPath,
		"QuotaBytes", cfg.QuotaBytes,
	)

	exitCode := commands.Dispatch(ctx, cfg, flag.Args())

	cancel()
	// сброс буфера логгера; ошибку Sync на stderr/tty игнорируем
	_ = logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func printVersion() {
	fmt.Printf("SurveySession CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
