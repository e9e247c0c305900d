package main // Entry point for the front desk console

import (
	"context" // context is the root of every desk action
	"os"      // os wires the console to stdin and stdout

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/clock"
	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/console"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/router"
	"github.com/iliyamo/hotel-reservation/internal/service"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

func main() {
	cfg := config.Load() // Load environment config
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log, closer, err := cfg.NewLogger()
	if err != nil {
		logrus.WithError(err).Fatal("logger setup failed")
	}
	defer closer.Close()

	// No signal context: the menu blocks on stdin, so Ctrl+C keeps its
	// default behaviour and ends the process.
	ctx := context.Background()

	// Events go to RabbitMQ when enabled, otherwise to the log.
	var publisher queue.Publisher = queue.NewLogPublisher(log)
	if cfg.EventsEnabled {
		amqpPub := queue.NewAMQPPublisher(cfg.AMQPURL, cfg.EventsQueue, log)
		defer amqpPub.Close()
		publisher = amqpPub
		log.WithField("queue", cfg.EventsQueue).Info("publishing reservation events to rabbitmq")
	}

	hotel := service.NewHotel(
		service.WithClock(clock.NewSystem()),
		service.WithLogger(log),
		service.WithPublisher(publisher),
		service.WithIDStart(cfg.ReservationStart, cfg.PaymentStart),
	)

	styled := console.IsTerminal(os.Stdout)
	stdout := colorable.NewColorableStdout() // ANSI-safe on Windows consoles
	screen := console.NewScreen(stdout, styled, cfg.ClearScreen)
	prompter := console.NewPrompter(os.Stdin, stdout, utils.DateRules{MinYear: cfg.MinYear, MaxYear: cfg.MaxYear})
	desk := handler.NewDesk(hotel, prompter, screen, cfg.CurrencySymbol)

	menu := router.NewMenu("HOTEL MANAGEMENT SYSTEM", prompter, screen, log,
		middleware.Recover(log),
		middleware.Logging(log, router.Expected),
	)
	router.RegisterDesk(menu, desk, log)

	log.WithFields(logrus.Fields{"env": cfg.Env, "events": cfg.EventsEnabled}).Info("front desk started")
	screen.Header("WELCOME TO HOTEL MANAGEMENT SYSTEM")
	screen.Println("\nSystem ready!")
	prompter.Pause()

	if err := menu.Run(ctx); err != nil {
		log.WithError(err).Error("menu loop stopped")
		screen.Error("%s", err)
		os.Exit(1)
	}
	log.Info("front desk closed")
}
