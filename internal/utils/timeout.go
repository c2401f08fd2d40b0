package utils

import (
	"context"
	"time"
)

const (
	// DefaultDBTimeout bounds single-row and paged queries.
	DefaultDBTimeout = 5 * time.Second

	// ReportDBTimeout bounds the ledger window scans behind profit/loss
	// reports, which walk every sale and expense in the period.
	ReportDBTimeout = 15 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

func WithReportTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, ReportDBTimeout)
}
