package main // Entry point for the reservation audit consumer

import (
	"context"   // context carries the shutdown signal to the consumer
	"errors"    // errors matches context cancellation on exit
	"os"        // os exposes the process exit code
	"os/signal" // signal turns SIGINT and SIGTERM into cancellation
	"syscall"   // syscall names SIGTERM

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log, closer, err := cfg.NewAuditLogger()
	if err != nil {
		logrus.WithError(err).Fatal("logger setup failed")
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &queue.AuditConsumer{
		URL:   cfg.AMQPURL,
		Queue: cfg.EventsQueue,
		Path:  cfg.AuditLogFile,
		Log:   log,
	}
	log.WithFields(logrus.Fields{"queue": c.Queue, "path": c.Path}).Info("audit consumer started")
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("audit consumer stopped")
		os.Exit(1)
	}
	log.Info("audit consumer stopped")
}
