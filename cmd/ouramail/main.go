// Command ouramail fetches Oura Ring metrics and emails a daily report.
//
// Usage:
//
//	ouramail [test|now|schedule]
//
//	test     - fetch yesterday's data and print the parsed records
//	now      - run the full pipeline once and exit
//	schedule - run the pipeline daily at the configured time (default)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/ouramail/internal/config"
	"github.com/dmitrymomot/ouramail/internal/pipeline"
	"github.com/dmitrymomot/ouramail/pkg/logger"
	"github.com/dmitrymomot/ouramail/pkg/mailer"
	"github.com/dmitrymomot/ouramail/pkg/mailer/smtp"
	"github.com/dmitrymomot/ouramail/pkg/oura"
	"github.com/dmitrymomot/ouramail/pkg/report"
	"github.com/dmitrymomot/ouramail/pkg/scheduler"
)

func main() {
	log := logger.New().With("app", "ouramail")

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	mode := "schedule"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := oura.New(cfg.Oura, log)

	switch mode {
	case "test":
		if err := runTest(ctx, client); err != nil {
			log.Error("connection test failed", "error", err)
			os.Exit(1)
		}

	case "now", "schedule":
		sender, err := smtp.New(cfg.SMTP)
		if err != nil {
			log.Error("invalid SMTP configuration", "error", err)
			os.Exit(1)
		}
		m := mailer.New(sender, mailer.NewRenderer(report.Templates()), cfg.Mailer)
		pipe := pipeline.New(client, m, cfg.Recipient, log)

		if mode == "now" {
			if err := pipe.Run(ctx); err != nil {
				log.Error("report run failed", "error", err)
				os.Exit(1)
			}
			return
		}

		sched, err := scheduler.Parse(cfg.Schedule.Time)
		if err != nil {
			log.Error("invalid schedule time", "error", err)
			os.Exit(1)
		}
		log.Info("starting daily scheduler", "time", sched.String(), "recipient", cfg.Recipient)
		if err := scheduler.New(sched, log).Run(ctx, pipe.Run); err != nil {
			log.Error("scheduler stopped with error", "error", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: ouramail [test|now|schedule]\n", mode)
		os.Exit(2)
	}
}

// runTest fetches yesterday's records and prints them as indented JSON, so the
// token and connectivity can be verified without sending an email.
func runTest(ctx context.Context, client *oura.Client) error {
	day := pipeline.TargetDate(time.Now())
	data, err := client.DailyData(ctx, day)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
