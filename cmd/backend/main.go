package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"marketplace-admin/internal/api"
)

func main() {
	logrus.Info("App start")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.StartServer(ctx); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
