package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/viant/afs"

	"github.com/prateek/lifelens/config"
	"github.com/prateek/lifelens/heap"
	"github.com/prateek/lifelens/metrics"
	"github.com/prateek/lifelens/report"
)

// runner loads one unreachability log and writes it out
type runner struct {
	fs      afs.Service
	cfg     config.Config
	stdout  io.Writer
	metrics *metrics.Metrics
}

func newRunner(cfg config.Config, stdout io.Writer) *runner {
	return &runner{
		fs:      afs.New(),
		cfg:     cfg,
		stdout:  stdout,
		metrics: metrics.New(),
	}
}

// load fetches and decodes the configured input
func (r *runner) load(ctx context.Context) (*heap.Log, error) {
	data, err := r.fs.DownloadWithURL(ctx, r.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", r.cfg.Input, err)
	}

	var codec report.Codec
	body := io.Reader(bytes.NewReader(data))
	if r.cfg.Format == config.FormatAuto {
		codec, body, err = report.Detect(body)
	} else {
		codec, err = report.Lookup(r.cfg.Format)
	}
	if err != nil {
		return nil, err
	}

	log, err := codec.Decode(body, r.cfg.BuildSourceMap())
	if err != nil {
		r.metrics.DecodeErrors.Inc()
		return nil, err
	}
	r.metrics.RecordsLoaded.WithLabelValues(codec.Name()).Add(float64(log.Len()))
	return log, nil
}

// selectRecords applies the object filter and ordering
func (r *runner) selectRecords(log *heap.Log) []heap.Unreachability {
	recs := log.Records()
	if r.cfg.Object != 0 {
		recs = log.ByObject(heap.ObjID(r.cfg.Object))
	}
	if r.cfg.Sort == config.SortTime {
		heap.SortByTime(recs)
	}
	return recs
}

// write prints display strings, or encodes to the configured output
func (r *runner) write(ctx context.Context, recs []heap.Unreachability) error {
	if r.cfg.Output == "" {
		for _, u := range recs {
			if _, err := fmt.Fprintln(r.stdout, u.String()); err != nil {
				return err
			}
		}
		r.metrics.RecordsPrinted.Add(float64(len(recs)))
		return nil
	}

	codec, err := report.Lookup(r.cfg.OutputFormat)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := codec.Encode(&buf, recs); err != nil {
		return err
	}
	if err := r.fs.Upload(ctx, r.cfg.Output, 0o644, &buf); err != nil {
		return fmt.Errorf("write output %s: %w", r.cfg.Output, err)
	}
	r.metrics.RecordsPrinted.Add(float64(len(recs)))
	return nil
}

// run executes load, select and write, then flushes metrics if configured.
// Metrics are flushed even when an earlier step fails.
func (r *runner) run(ctx context.Context) (int, error) {
	n, err := r.process(ctx)
	if r.cfg.Metrics.Textfile != "" {
		if merr := r.metrics.WriteTextfile(r.cfg.Metrics.Textfile); merr != nil && err == nil {
			err = fmt.Errorf("write metrics: %w", merr)
		}
	}
	return n, err
}

func (r *runner) process(ctx context.Context) (int, error) {
	log, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	recs := r.selectRecords(log)
	if err := r.write(ctx, recs); err != nil {
		return 0, err
	}
	return len(recs), nil
}
