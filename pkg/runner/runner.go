package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/extract"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/jsparse"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

// Runner orchestrates multi-file validation with a shared parser.
type Runner struct {
	// Parser validates each extracted script block.
	Parser jsparse.Parser

	// Trace receives the combined validation trace in file order.
	// Nil disables tracing.
	Trace validate.TraceSink
}

// New creates a new Runner backed by the given parser.
func New(parser jsparse.Parser) *Runner {
	return &Runner{Parser: parser}
}

// Run discovers files under opts.Paths and validates them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats. Per-document validation stays synchronous; only
// distinct files run in parallel.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key outcomes by path and rebuild
	// in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		outcome, ok := outcomes[path]
		if !ok {
			continue
		}
		result.accumulate(outcome)
		if r.Trace != nil {
			for _, line := range outcome.TraceLines {
				r.Trace.AppendLine(line)
			}
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker validates files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads and validates a single template file. Each file gets
// its own trace buffer so concurrent workers never interleave output.
func (r *Runner) processFile(path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	doc := textdoc.New(path, content)
	outcome.Length = doc.Len()
	outcome.Blocks = len(extract.ScriptBlocks(string(content)))

	validator := validate.New(r.Parser)

	var buffer *validate.BufferSink
	if r.Trace != nil {
		buffer = &validate.BufferSink{}
		validator.Trace = buffer
	}

	outcome.Findings = validator.Validate(doc)

	if buffer != nil {
		outcome.TraceLines = buffer.Lines
	}
	return outcome
}
