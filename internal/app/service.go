// Package app wires the parse -> index -> history -> tracker -> layout
// pipeline into the operations the CLI exposes.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flowerhill/swimreports/internal/adapters/pdf"
	"github.com/flowerhill/swimreports/internal/adapters/swimtopia"
	"github.com/flowerhill/swimreports/internal/domain/besttimes"
	"github.com/flowerhill/swimreports/internal/domain/history"
	"github.com/flowerhill/swimreports/internal/domain/layout"
	"github.com/flowerhill/swimreports/internal/domain/meetindex"
	"github.com/flowerhill/swimreports/internal/domain/model"
	"github.com/flowerhill/swimreports/internal/domain/ribbons"
	"github.com/flowerhill/swimreports/pkg/logger"
	"github.com/flowerhill/swimreports/pkg/metrics"
)

// LatestMeet selects the most recent meet when no explicit number is given.
const LatestMeet = 0

// LabelRenderer writes paginated ribbon labels to a file.
type LabelRenderer interface {
	RenderLabels(ctx context.Context, pages []layout.Page, dst string) error
}

// ReportRenderer writes the best-times ranking report to a file.
type ReportRenderer interface {
	RenderBestTimes(ctx context.Context, sections []besttimes.Section, dst string) error
}

// Service runs the report pipelines. One Service may serve several runs;
// each run is stateless and owns its derived structures.
type Service struct {
	logger logger.Logger
	course model.Course
	sheet  layout.Sheet
	labels LabelRenderer
	report ReportRenderer
	runID  string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCourse sets the course the exports were generated in.
func WithCourse(c model.Course) Option {
	return func(s *Service) {
		if c != "" {
			s.course = c
		}
	}
}

// WithSheet sets the label sheet geometry.
func WithSheet(sheet layout.Sheet) Option {
	return func(s *Service) {
		if sheet.Validate() == nil {
			s.sheet = sheet
		}
	}
}

// WithLabelRenderer sets the label output renderer.
func WithLabelRenderer(r LabelRenderer) Option {
	return func(s *Service) {
		if r != nil {
			s.labels = r
		}
	}
}

// WithReportTitle replaces the best-times renderer with a PDF renderer
// using the given page title.
func WithReportTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.report = pdf.NewBestTimesReport(title)
		}
	}
}

// WithReportRenderer sets the best-times output renderer.
func WithReportRenderer(r ReportRenderer) Option {
	return func(s *Service) {
		if r != nil {
			s.report = r
		}
	}
}

// New creates a Service with defaults: Avery 8160 geometry, short course,
// PDF renderers, and a fresh run id for log correlation.
func New(opts ...Option) *Service {
	s := &Service{
		course: model.ShortCourseMeters,
		sheet:  layout.Sheet{Rows: 10, Columns: 3},
		labels: pdf.NewLabelSheets(),
		report: pdf.NewBestTimesReport("Flower Hill Dolphins Top Times"),
		runID:  uuid.NewString(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("run")

	return s
}

// RibbonsSummary reports what one ribbon run produced.
type RibbonsSummary struct {
	Meet    model.Meet
	Ribbons int
	Pages   int
	Skipped int
	Output  string
}

// ListMeets parses the report card export and returns the meet catalog in
// ascending number order.
func (s *Service) ListMeets(ctx context.Context, src string) ([]model.Meet, error) {
	card, err := s.parseReportCard(ctx, src)
	if err != nil {
		return nil, err
	}

	idx := meetindex.New(card.Records)
	if idx.Len() == 0 {
		return nil, fmt.Errorf("%w: no meet data in %s", meetindex.ErrEmptyInput, src)
	}
	return idx.List(), nil
}

// GenerateRibbons runs the full black-ribbon pipeline for one meet and
// writes the label sheet PDF. meetNumber LatestMeet selects the most recent
// meet in the data.
func (s *Service) GenerateRibbons(ctx context.Context, src, dst string, meetNumber int) (*RibbonsSummary, error) {
	started := time.Now()

	card, err := s.parseReportCard(ctx, src)
	if err != nil {
		return nil, err
	}

	idx := meetindex.New(card.Records)
	var target model.Meet
	if meetNumber == LatestMeet {
		target, err = idx.Latest()
	} else {
		target, err = idx.ByNumber(meetNumber)
	}
	if err != nil {
		return nil, err
	}

	hist, err := history.Build(card.Records)
	if err != nil {
		return nil, err
	}

	trackStart := time.Now()
	awards, skipped := ribbons.Track(hist, target)
	metrics.ObserveStage("track", time.Since(trackStart).Seconds())
	metrics.RecordRibbons(len(awards))
	for _, skip := range skipped {
		metrics.RecordSkipped("invalid_time", 1)
		s.logger.Warn(ctx, "record excluded from determination",
			logger.String("run_id", s.runID),
			logger.String("athlete", skip.Record.AthleteName),
			logger.String("event", skip.Record.Event.String()),
			logger.Int("meet", skip.Record.Meet.Number),
			logger.Error(skip.Reason))
	}

	pages, err := layout.Paginate(layout.Order(awards), s.sheet)
	if err != nil {
		return nil, err
	}
	metrics.RecordPages(len(pages))

	if err := s.labels.RenderLabels(ctx, pages, dst); err != nil {
		return nil, err
	}
	metrics.RecordReport("ribbons")
	metrics.ObserveStage("run", time.Since(started).Seconds())

	s.logger.Info(ctx, "ribbon labels written",
		logger.String("run_id", s.runID),
		logger.Int("meet", target.Number),
		logger.Int("ribbons", len(awards)),
		logger.Int("pages", len(pages)),
		logger.Duration("elapsed", time.Since(started)),
		logger.String("output", dst))
	s.logSnapshot(ctx)

	return &RibbonsSummary{
		Meet:    target,
		Ribbons: len(awards),
		Pages:   len(pages),
		Skipped: len(card.Skipped) + len(skipped),
		Output:  dst,
	}, nil
}

// GenerateBestTimes builds the season ranking report and writes it to dst.
func (s *Service) GenerateBestTimes(ctx context.Context, src, dst string) error {
	started := time.Now()

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", src, err)
	}
	defer f.Close()

	bt, err := swimtopia.ParseBestTimes(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", src, err)
	}
	metrics.RecordParsed(len(bt.Swims))
	s.logSkips(ctx, bt.Skipped)

	sections := besttimes.Report(bt.Swims)
	if err := s.report.RenderBestTimes(ctx, sections, dst); err != nil {
		return err
	}
	metrics.RecordReport("besttimes")
	metrics.ObserveStage("run", time.Since(started).Seconds())

	s.logger.Info(ctx, "best times report written",
		logger.String("run_id", s.runID),
		logger.Int("swims", len(bt.Swims)),
		logger.Int("age_groups", len(sections)),
		logger.Duration("elapsed", time.Since(started)),
		logger.String("output", dst))
	s.logSnapshot(ctx)

	return nil
}

// GenerateAll locates the newest export of each kind in dir and produces
// every artifact it has data for, the way the reports are regenerated after
// each meet.
func (s *Service) GenerateAll(ctx context.Context, dir string) error {
	exports, err := swimtopia.FindNewest(dir)
	if err != nil {
		return err
	}
	if exports.ReportCard == "" && exports.BestTimes == "" {
		return fmt.Errorf("no Swimtopia exports found in %s", dir)
	}

	if exports.ReportCard != "" {
		dst := filepath.Join(dir, "black_ribbons.pdf")
		if _, err := s.GenerateRibbons(ctx, exports.ReportCard, dst, LatestMeet); err != nil {
			return err
		}
	}
	if exports.BestTimes != "" {
		dst := DefaultOutput(exports.BestTimes)
		if err := s.GenerateBestTimes(ctx, exports.BestTimes, dst); err != nil {
			return err
		}
	}
	return nil
}

// DefaultOutput derives the output PDF path from an input CSV path.
func DefaultOutput(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".pdf"
}

func (s *Service) parseReportCard(ctx context.Context, src string) (*swimtopia.ReportCard, error) {
	start := time.Now()
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", src, err)
	}
	defer f.Close()

	card, err := swimtopia.ParseReportCard(f, s.course)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src, err)
	}
	metrics.RecordParsed(len(card.Records))
	metrics.ObserveStage("parse", time.Since(start).Seconds())
	s.logSkips(ctx, card.Skipped)
	return card, nil
}

func (s *Service) logSkips(ctx context.Context, skips []swimtopia.Skip) {
	for _, skip := range skips {
		metrics.RecordSkipped("invalid_time", 1)
		s.logger.Warn(ctx, "input record skipped",
			logger.String("run_id", s.runID),
			logger.Int("line", skip.Line),
			logger.String("athlete", skip.Athlete),
			logger.Error(skip.Reason))
	}
}

func (s *Service) logSnapshot(ctx context.Context) {
	snap, err := metrics.Snapshot()
	if err != nil {
		s.logger.Warn(ctx, "metrics snapshot failed", logger.Error(err))
		return
	}
	s.logger.Debug(ctx, "run metrics",
		logger.String("run_id", s.runID),
		logger.Any("counters", snap))
}
