package application

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/openkraft/devtool/internal/domain"
	"github.com/openkraft/devtool/internal/domain/check"
)

// CheckService orchestrates the check pipeline:
// read file -> split lines -> apply rules -> aggregate.
type CheckService struct {
	reader domain.SourceReader
	rules  []check.Rule
	jobs   int
	logger *slog.Logger
}

// CheckOptions configures a CheckService.
type CheckOptions struct {
	Rules  []string // Rule identifiers from configuration, in order.
	Jobs   int      // Files checked concurrently; values below 1 mean 1.
	Logger *slog.Logger
}

func NewCheckService(reader domain.SourceReader, opts CheckOptions) *CheckService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	for _, id := range opts.Rules {
		if check.ParseRule(id) == check.RuleSkip {
			logger.Debug("ignoring unknown rule", "rule", id)
		}
	}
	return &CheckService{
		reader: reader,
		rules:  check.ParseRules(opts.Rules),
		jobs:   jobs,
		logger: logger,
	}
}

// CheckFile reads path and returns its issues. A read failure is a
// *domain.ReadError naming path.
func (s *CheckService) CheckFile(path string) ([]domain.Issue, error) {
	content, err := s.reader.ReadSource(path)
	if err != nil {
		return nil, &domain.ReadError{Path: path, Err: err}
	}
	return check.CheckContent(content, s.rules), nil
}

// Run checks files in order and aggregates files that have issues. The first
// read failure, by position in files, aborts the run.
func (s *CheckService) Run(ctx context.Context, files []string) (*domain.CheckResult, error) {
	s.logger.Info("checking files", "count", len(files), "jobs", s.jobs)
	if s.jobs == 1 || len(files) < 2 {
		return s.runSequential(ctx, files)
	}
	return s.runParallel(ctx, files)
}

func (s *CheckService) runSequential(ctx context.Context, files []string) (*domain.CheckResult, error) {
	result := &domain.CheckResult{}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		issues, err := s.CheckFile(f)
		if err != nil {
			return result, err
		}
		s.logger.Debug("checked file", "path", f, "issues", len(issues))
		result.Checked++
		result.Add(f, issues)
	}
	return result, nil
}

// runParallel checks files concurrently. Each worker writes only its own slot;
// the result is assembled afterwards in input order. A read failure only
// stops files after it, so every file before the first failure is checked
// exactly as in a sequential run.
func (s *CheckService) runParallel(ctx context.Context, files []string) (*domain.CheckResult, error) {
	issues := make([][]domain.Issue, len(files))
	errs := make([]error, len(files))
	done := make([]bool, len(files))

	var firstFail atomic.Int64
	firstFail.Store(int64(len(files)))
	skip := func(i int) bool {
		return int64(i) > firstFail.Load() || ctx.Err() != nil
	}

	var g errgroup.Group
	g.SetLimit(s.jobs)
	for i, f := range files {
		if skip(i) {
			break
		}
		g.Go(func() error {
			if skip(i) {
				return nil
			}
			found, err := s.CheckFile(f)
			if err != nil {
				errs[i] = err
				lowerTo(&firstFail, int64(i))
				return nil
			}
			issues[i] = found
			done[i] = true
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.CheckResult{}
	for i, f := range files {
		if errs[i] != nil {
			return result, errs[i]
		}
		if !done[i] {
			break
		}
		s.logger.Debug("checked file", "path", f, "issues", len(issues[i]))
		result.Checked++
		result.Add(f, issues[i])
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// lowerTo stores v in n when v is smaller than the current value.
func lowerTo(n *atomic.Int64, v int64) {
	for {
		cur := n.Load()
		if v >= cur || n.CompareAndSwap(cur, v) {
			return
		}
	}
}
