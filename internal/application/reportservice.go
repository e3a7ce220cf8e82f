package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/domain/model"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
	"github.com/ericfisherdev/reviewreport/internal/i18n"
)

// ReviewReportName identifies the review report in the report catalogue.
const ReviewReportName = "reviews"

// flushEvery bounds how many records are buffered before they are pushed
// to the client.
const flushEvery = 500

// flusher is implemented by http.ResponseWriter.
type flusher interface {
	Flush()
}

// ReviewReportService assembles review reports from the driven ports.
// Each report is fetched and written sequentially within one call chain.
type ReviewReportService struct {
	journals        driven.JournalStore
	reports         driven.ReviewReportStore
	forms           driven.ReviewFormStore
	recommendations driven.RecommendationStore
	catalog         *i18n.Catalog
	loc             *time.Location
	now             func() time.Time
	logger          *slog.Logger
}

// NewReviewReportService creates a new ReviewReportService with the required
// dependencies. Report dates and file names use loc; a nil loc means UTC.
func NewReviewReportService(
	journals driven.JournalStore,
	reports driven.ReviewReportStore,
	forms driven.ReviewFormStore,
	recommendations driven.RecommendationStore,
	catalog *i18n.Catalog,
	loc *time.Location,
) *ReviewReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReviewReportService{
		journals:        journals,
		reports:         reports,
		forms:           forms,
		recommendations: recommendations,
		catalog:         catalog,
		loc:             loc,
		now:             time.Now,
		logger:          slog.Default(),
	}
}

// WithClock replaces the time source used for overdue counts and file names.
func (s *ReviewReportService) WithClock(now func() time.Time) *ReviewReportService {
	s.now = now
	return s
}

// WithLogger replaces the logger used while writing reports.
func (s *ReviewReportService) WithLogger(logger *slog.Logger) *ReviewReportService {
	s.logger = logger
	return s
}

// Catalog returns the translation catalogue reports are rendered with.
func (s *ReviewReportService) Catalog() *i18n.Catalog {
	return s.catalog
}

// Filename returns the download name of a report generated at now.
func (s *ReviewReportService) Filename(now time.Time) string {
	return "reviews-" + now.In(s.loc).Format("20060102") + ".csv"
}

// ListReports describes the reports this service offers, labelled in locale.
func (s *ReviewReportService) ListReports(locale string) []model.ReportDescriptor {
	tr := s.catalog.Translator(locale)
	return []model.ReportDescriptor{
		{
			Name:        ReviewReportName,
			DisplayName: tr.T("plugins.reports.reviews.displayName"),
			Description: tr.T("plugins.reports.reviews.description"),
			Path:        "/api/v1/journals/{journal}/reports/reviews",
		},
	}
}

// ReviewReport is a fetched review report ready to be written. All database
// reads other than review form answers happen before it is returned, so a
// caller can still report failures before writing any output.
type ReviewReport struct {
	Journal  model.Journal
	Locale   string
	Filename string

	rows      []model.ReviewRow
	header    []string
	formatter *RowFormatter
	now       time.Time
	logger    *slog.Logger
}

// Prepare resolves the journal at journalPath, picks the report locale from
// the preferences (falling back to the journal's primary locale) and loads
// the report data. Returns an error wrapping driven.ErrJournalNotFound for
// an unknown journal.
func (s *ReviewReportService) Prepare(ctx context.Context, journalPath string, localePreferences ...string) (*ReviewReport, error) {
	journal, err := s.journals.GetByPath(ctx, journalPath)
	if err != nil {
		return nil, err
	}

	prefs := make([]string, 0, len(localePreferences)+1)
	prefs = append(prefs, localePreferences...)
	prefs = append(prefs, journal.PrimaryLocale)

	locale := s.catalog.Match(prefs...)
	tr := s.catalog.Translator(locale)

	rows, err := s.reports.ListReviewRows(ctx, journal.ID, locale)
	if err != nil {
		return nil, fmt.Errorf("load review rows: %w", err)
	}

	comments, err := s.reports.ListReviewerComments(ctx, journal.ID)
	if err != nil {
		return nil, fmt.Errorf("load reviewer comments: %w", err)
	}

	interests, err := s.reports.ReviewerInterests(ctx, journal.ID)
	if err != nil {
		return nil, fmt.Errorf("load reviewer interests: %w", err)
	}

	options, err := s.recommendations.ListByJournal(ctx, journal.ID)
	if err != nil {
		return nil, fmt.Errorf("load recommendation options: %w", err)
	}

	recommendations := make(map[int]string, len(options))
	for _, opt := range options {
		recommendations[opt.ID] = opt.Title.Pick(locale, journal.PrimaryLocale)
	}

	now := s.now().In(s.loc)
	forms := NewReviewFormRenderer(s.forms, locale, journal.PrimaryLocale)

	return &ReviewReport{
		Journal:   *journal,
		Locale:    locale,
		Filename:  s.Filename(now),
		rows:      rows,
		header:    HeaderRow(tr),
		formatter: NewRowFormatter(tr, model.NewCommentMap(comments), interests, recommendations, forms),
		now:       now,
		logger:    s.logger,
	}, nil
}

// Rows returns the number of review assignments in the report.
func (r *ReviewReport) Rows() int {
	return len(r.rows)
}

// WriteCSV streams the report to w. If w can be flushed it is flushed
// periodically so large reports reach the client incrementally.
func (r *ReviewReport) WriteCSV(ctx context.Context, w io.Writer) error {
	rw, err := NewReportWriter(w, r.header)
	if err != nil {
		return err
	}

	for i, row := range r.rows {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("write review report: %w", err)
		}

		record, err := r.formatter.Format(ctx, row, r.now)
		if err != nil {
			return fmt.Errorf("format review %d: %w", row.ReviewID, err)
		}

		if err := rw.Write(record); err != nil {
			return err
		}

		if (i+1)%flushEvery == 0 {
			if err := rw.Flush(); err != nil {
				return err
			}
			if f, ok := w.(flusher); ok {
				f.Flush()
			}
		}
	}

	if err := rw.Flush(); err != nil {
		return err
	}

	r.logger.Debug("review report written",
		"journal", r.Journal.Path,
		"locale", r.Locale,
		"rows", rw.Written(),
	)

	return nil
}
