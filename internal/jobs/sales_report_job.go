package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fanstore/internal/adapters/out/mail"
	"fanstore/internal/core/application/usecases/queries"
	"fanstore/internal/core/ports"
)

// SalesReportJob emails the previous day's sales summary to the store admin.
// Runs every morning at 06:00 UTC over the [midnight-24h, midnight) window,
// so each order is counted in exactly one report.
type SalesReportJob struct {
	handler    queries.GetSalesReportQueryHandler
	email      ports.EmailSender
	adminEmail string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSalesReportJob creates the daily sales report job.
func NewSalesReportJob(
	handler queries.GetSalesReportQueryHandler,
	email ports.EmailSender,
	adminEmail string,
	logger *slog.Logger,
) *SalesReportJob {
	return &SalesReportJob{
		handler:    handler,
		email:      email,
		adminEmail: adminEmail,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "sales_report_job"),
	}
}

// Start schedules the job.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", func() {
		ctx := context.Background()
		if err := j.Run(ctx, time.Now().UTC()); err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (daily at 06:00 UTC)")
	return nil
}

// Stop stops the job.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}

// Run builds and sends the report for the day preceding now. Exposed so an
// operator can trigger a report outside the schedule.
func (j *SalesReportJob) Run(ctx context.Context, now time.Time) error {
	to := now.Truncate(24 * time.Hour)
	from := to.Add(-24 * time.Hour)

	query, err := queries.NewGetSalesReportQuery(from, to)
	if err != nil {
		return err
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	body, err := mail.RenderSalesReportEmail(report)
	if err != nil {
		return err
	}

	return j.email.Send(ctx, j.adminEmail, mail.ReportSubject(report), body)
}
