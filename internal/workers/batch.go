// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/service"
	"github.com/MKhiriev/go-idiotic-api/models"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoJobs           = errors.New("batch file contains no jobs")
	ErrJobWithoutTarget = errors.New("job has no endpoint")
)

// LoadJobs reads a YAML batch file.
func LoadJobs(path string) (models.BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.BatchFile{}, fmt.Errorf("error reading batch file: %w", err)
	}

	var file models.BatchFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return models.BatchFile{}, fmt.Errorf("error decoding batch file: %w", err)
	}
	if len(file.Jobs) == 0 {
		return models.BatchFile{}, ErrNoJobs
	}

	return file, nil
}

// BatchWorker runs the jobs of a batch file concurrently, at most concurrency
// at a time, and writes each result under outDir. A failed job does not stop
// the others; each job is a single call with no retry.
type BatchWorker struct {
	generator   service.GeneratorService
	jobs        []models.BatchJob
	outDir      string
	concurrency int

	logger *logger.Logger

	mu       sync.Mutex
	outcomes []models.BatchOutcome
}

func NewBatchWorker(generator service.GeneratorService, file models.BatchFile, outDir string, concurrency int, logger *logger.Logger) *BatchWorker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchWorker{
		generator:   generator,
		jobs:        file.Jobs,
		outDir:      outDir,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run implements [Worker]. It returns the joined errors of all failed jobs.
func (b *BatchWorker) Run(ctx context.Context) error {
	_, err := b.Process(ctx)
	return err
}

// Process runs all jobs and returns one outcome per job, in job order.
func (b *BatchWorker) Process(ctx context.Context) ([]models.BatchOutcome, error) {
	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating output dir: %w", err)
	}

	b.mu.Lock()
	b.outcomes = make([]models.BatchOutcome, len(b.jobs))
	b.mu.Unlock()

	var g errgroup.Group
	g.SetLimit(b.concurrency)

	for i, job := range b.jobs {
		g.Go(func() error {
			outcome := b.runJob(ctx, i, job)
			b.record(i, outcome)
			return nil
		})
	}
	_ = g.Wait()

	outcomes := b.Outcomes()

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("job %q: %w", o.Job.Name, o.Err))
		}
	}

	return outcomes, errors.Join(errs...)
}

// Outcomes returns a copy of the outcomes of the last Process call.
func (b *BatchWorker) Outcomes() []models.BatchOutcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.BatchOutcome, len(b.outcomes))
	copy(out, b.outcomes)
	return out
}

func (b *BatchWorker) record(i int, outcome models.BatchOutcome) {
	b.mu.Lock()
	b.outcomes[i] = outcome
	b.mu.Unlock()
}

func (b *BatchWorker) runJob(ctx context.Context, i int, job models.BatchJob) models.BatchOutcome {
	if job.Name == "" {
		job.Name = fmt.Sprintf("%03d-%s", i+1, job.Endpoint)
	}
	outcome := models.BatchOutcome{Job: job}

	if strings.TrimSpace(job.Endpoint) == "" {
		outcome.Err = ErrJobWithoutTarget
		return outcome
	}

	if err := ctx.Err(); err != nil {
		outcome.Err = err
		return outcome
	}

	start := time.Now()
	res, err := b.generator.Generate(ctx, job.Endpoint, jobValues(job))
	outcome.Duration = time.Since(start)
	if err != nil {
		outcome.Err = err
		b.logger.Error().Err(err).Str("job", job.Name).Str("endpoint", job.Endpoint).Msg("batch job failed")
		return outcome
	}

	path := b.outputPath(job, res)
	data := res.Bytes()
	if err = os.WriteFile(path, data, 0o644); err != nil {
		outcome.Err = fmt.Errorf("error writing result: %w", err)
		return outcome
	}

	outcome.Path = path
	outcome.Size = len(data)

	b.logger.Info().
		Str("job", job.Name).
		Str("endpoint", job.Endpoint).
		Str("path", path).
		Int("size", outcome.Size).
		Dur("duration", outcome.Duration).
		Msg("batch job done")

	return outcome
}

func (b *BatchWorker) outputPath(job models.BatchJob, res models.Result) string {
	name := job.Output
	if name == "" {
		name = job.Name + res.Extension()
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(b.outDir, name)
}

func jobValues(job models.BatchJob) url.Values {
	values := make(url.Values, len(job.Params))
	for k, v := range job.Params {
		values.Set(k, v)
	}
	return values
}
