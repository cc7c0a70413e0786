package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flux-image/flux-image/common"
	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/common/i18n"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/flux-image/flux-image/console"
	"github.com/flux-image/flux-image/inject"
	"github.com/flux-image/flux-image/relay/channel/together"
	"github.com/samber/do"
)

func main() {
	// Log lines would interleave with the prompt.
	logger.EchoToConsole = false
	common.Init()
	if config.DebugEnabled {
		logger.EchoToConsole = true
		logger.SetupLogger()
	}

	printer := i18n.NewPrinter(i18n.Match(config.Locale))
	if config.ServerAPIKey == "" {
		fmt.Println(printer.Sprintf(i18n.MsgSetAPIKeyEnv))
		fmt.Println(printer.Sprintf(i18n.MsgSetAPIKeyHowTo))
		fmt.Println("export TOGETHER_API_KEY='your_api_key_here'")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	injector := inject.Setup()
	client, err := do.Invoke[*together.Client](injector)
	if err != nil {
		fmt.Println(printer.Sprintf(i18n.MsgUnexpectedError, err.Error()))
		os.Exit(1)
	}
	logger.SysLog(fmt.Sprintf("console started with model %s", client.Model()))

	repl := &console.REPL{
		Generator: client,
		Printer:   printer,
		In:        os.Stdin,
		Out:       os.Stdout,
	}
	if err := repl.Run(ctx); err != nil {
		fmt.Println(printer.Sprintf(i18n.MsgUnexpectedError, err.Error()))
		stop()
		os.Exit(1)
	}
}
