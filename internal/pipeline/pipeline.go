// Package pipeline orchestrates one fetch-render-send run of the daily report.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/ouramail/pkg/logger"
	"github.com/dmitrymomot/ouramail/pkg/mailer"
	"github.com/dmitrymomot/ouramail/pkg/oura"
	"github.com/dmitrymomot/ouramail/pkg/report"
)

// MetricsClient fetches one day's records from the provider.
type MetricsClient interface {
	DailyData(ctx context.Context, day time.Time) (oura.DailyData, error)
}

// ReportMailer renders a template and delivers the result.
type ReportMailer interface {
	Send(ctx context.Context, params mailer.SendParams) error
}

// Pipeline wires the metrics client, report templates, and mailer into one
// sequential run. It holds no state between runs.
type Pipeline struct {
	client    MetricsClient
	mailer    ReportMailer
	log       *slog.Logger
	recipient string
	now       func() time.Time
}

// New creates a Pipeline. The logger may be nil; a discarding logger is used then.
func New(client MetricsClient, m ReportMailer, recipient string, log *slog.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNope()
	}
	return &Pipeline{
		client:    client,
		mailer:    m,
		log:       log,
		recipient: recipient,
		now:       time.Now,
	}
}

// TargetDate returns the calendar date a run started at now reports on:
// yesterday, local time.
func TargetDate(now time.Time) time.Time {
	return now.AddDate(0, 0, -1)
}

// Run executes one full report run for yesterday's date. Any error aborts the
// run before the send; no partial email is ever produced.
func (p *Pipeline) Run(ctx context.Context) error {
	day := TargetDate(p.now())
	date := day.Format("2006-01-02")
	p.log.Info("starting daily report", "date", date)

	data, err := p.client.DailyData(ctx, day)
	if err != nil {
		return fmt.Errorf("fetch daily data for %s: %w", date, err)
	}

	err = p.mailer.Send(ctx, mailer.SendParams{
		To:       p.recipient,
		Template: report.TemplateName,
		Data:     report.Build(day, data),
	})
	if err != nil {
		return fmt.Errorf("send report for %s: %w", date, err)
	}

	p.log.Info("report sent", "date", date, "recipient", p.recipient)
	return nil
}
