// Package batch compresses many stylesheets concurrently.
package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/bimmerbailey/cssmin/internal/enhance"
	"github.com/bimmerbailey/cssmin/internal/logging"
	"github.com/bimmerbailey/cssmin/internal/output"
)

// Job is one stylesheet to compress.
type Job struct {
	// Input is the path of the source stylesheet.
	Input string
	// Output is where the result is written. Empty keeps the result in
	// memory only.
	Output string
}

// Outcome is the result of one Job.
type Outcome struct {
	Job
	CSS        string
	Statistics enhance.Statistics
	Err        error
}

// Report converts the outcome for rendering.
func (o Outcome) Report() output.Report {
	r := output.Report{File: o.Input, Output: o.Output, Statistics: o.Statistics}
	if o.Err != nil {
		r.Error = o.Err.Error()
	}
	return r
}

// Runner compresses files with a bounded pool of workers.
type Runner struct {
	cfg  enhance.Config
	jobs int
}

// New creates a Runner. jobs is the maximum number of concurrent workers;
// 0 or negative means runtime.NumCPU().
func New(cfg enhance.Config, jobs int) *Runner {
	return &Runner{cfg: cfg, jobs: jobs}
}

// Run processes jobs concurrently and returns their outcomes in the order
// of jobs. A failing file does not stop the others; its error is recorded
// in its Outcome. If ctx is cancelled, Run returns the outcomes finished so
// far and the context error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	workers := r.jobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if workers > len(jobs) {
		workers = len(jobs)
	}

	logger := logging.FromContext(ctx)
	logger.Debug("starting batch", logging.FieldFiles, len(jobs), logging.FieldJobs, workers)

	type indexed struct {
		i       int
		outcome Outcome
	}

	workCh := make(chan int)
	outCh := make(chan indexed)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workCh {
				if ctx.Err() != nil {
					return
				}

				o := r.process(ctx, jobs[i])

				select {
				case <-ctx.Done():
					return
				case outCh <- indexed{i: i, outcome: o}:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i := range jobs {
			select {
			case <-ctx.Done():
				return
			case workCh <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order.
	done := make([]*Outcome, len(jobs))
	for res := range outCh {
		o := res.outcome
		done[res.i] = &o
	}

	outcomes := make([]Outcome, 0, len(jobs))
	for _, o := range done {
		if o != nil {
			outcomes = append(outcomes, *o)
		}
	}

	if ctx.Err() != nil {
		return outcomes, fmt.Errorf("batch cancelled: %w", ctx.Err())
	}
	return outcomes, nil
}

func (r *Runner) process(ctx context.Context, job Job) Outcome {
	logger := logging.FromContext(ctx)
	start := time.Now()
	outcome := Outcome{Job: job}

	src, err := os.ReadFile(job.Input)
	if err != nil {
		outcome.Err = fmt.Errorf("reading %s: %w", job.Input, err)
		return outcome
	}

	c := enhance.New(r.cfg, enhance.WithLogger(logger.With(logging.FieldPath, job.Input)))
	css, err := c.Compress(string(src))
	outcome.Statistics = c.Statistics()
	if err != nil {
		outcome.Err = fmt.Errorf("compressing %s: %w", job.Input, err)
		return outcome
	}
	outcome.CSS = css

	if job.Output != "" {
		if err := output.WriteAtomic(ctx, job.Output, []byte(css), 0); err != nil {
			outcome.Err = fmt.Errorf("writing %s: %w", job.Output, err)
			return outcome
		}
	}

	logger.Debug("compressed",
		logging.FieldPath, job.Input,
		logging.FieldOutput, job.Output,
		logging.FieldOriginalSize, outcome.Statistics.OriginalSize,
		logging.FieldCompressedSize, outcome.Statistics.CompressedSize,
		logging.FieldElapsed, time.Since(start),
	)
	return outcome
}

// Failed counts the outcomes with an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
