package main

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/bagkit/internal/bagcli"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	c, err := bagcli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	logger.Configure(func(l *logging.Logger) {
		l.Level = c.LogLevel
	})
	cli.Main(context.Background(), bagcli.NewMux(c))
}
