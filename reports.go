package main

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInsufficientData is returned when a portfolio with a zero total is
// analysed or rendered
var ErrInsufficientData = errors.New("insufficient data: enter at least one investment amount")

// ReportMeta identifies one generated report
type ReportMeta struct {
	ID        string
	Generated time.Time
}

// NewReportMeta stamps a report generated at now with a fresh ID
func NewReportMeta(now time.Time) ReportMeta {
	return ReportMeta{ID: uuid.NewString(), Generated: now}
}

// ShortID is the first block of the ID, used in filenames
func (m ReportMeta) ShortID() string {
	if len(m.ID) < 8 {
		return m.ID
	}
	return m.ID[:8]
}

// displayDate is the day/month/year format used on reports
func (m ReportMeta) displayDate() string {
	return m.Generated.Format("02/01/2006")
}
