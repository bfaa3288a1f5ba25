package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/babarot/period/period"
	"github.com/k1LoW/duration"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var ErrNoInput = errors.New("no duration given")

// Input is one duration string and where it came from
type Input struct {
	Source string
	Text   string
}

// Result pairs an input with the period it parsed into
type Result struct {
	Input  Input
	Period period.Period
}

// Parse parses every input and writes the results in the configured format
func (c CLI) Parse(args []string) error {
	slog.Debug("parsing durations started")
	defer slog.Debug("parsing durations finished")

	inputs, err := c.collectInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	results, err := c.parseAll(inputs)
	if err != nil {
		return err
	}

	if c.option.Sum {
		sum, err := sumResults(results)
		if err != nil {
			return err
		}
		results = []Result{sum}
	}

	return c.render(results)
}

// collectInputs gathers arguments first, then lines from --file. With no
// arguments and no --file, stdin is read when it is not a terminal.
func (c CLI) collectInputs(args []string) ([]Input, error) {
	inputs := make([]Input, 0, len(args))
	for i, arg := range args {
		inputs = append(inputs, Input{Source: fmt.Sprintf("arg %d", i+1), Text: arg})
	}

	switch {
	case c.option.File == "-":
		return c.readInputs(inputs, "stdin", c.stdin)
	case c.option.File != "":
		f, err := os.Open(c.option.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return c.readInputs(inputs, c.option.File, f)
	case len(args) == 0 && !isTerminal(c.stdin):
		return c.readInputs(inputs, "stdin", c.stdin)
	}
	return inputs, nil
}

// readInputs appends one input per line, skipping blank lines and # comments
func (c CLI) readInputs(inputs []Input, name string, r io.Reader) ([]Input, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		inputs = append(inputs, Input{Source: fmt.Sprintf("%s:%d", name, line), Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return inputs, nil
}

// parseAll parses inputs concurrently; results keep the input order
func (c CLI) parseAll(inputs []Input) ([]Result, error) {
	opts, err := c.parseOptions()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(inputs))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		i, in := i, in
		eg.Go(func() error {
			p, err := c.parseOne(in.Text, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Source, err)
			}
			slog.Debug("parsed duration", "source", in.Source, "input", in.Text, "seconds", p.Duration())
			results[i] = Result{Input: in, Period: p}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// sumResults folds all periods into one, failing on int64 overflow
func sumResults(results []Result) (Result, error) {
	var total period.Period
	for _, r := range results {
		var err error
		if total, err = period.Add(total, r.Period); err != nil {
			return Result{}, fmt.Errorf("sum: %w", err)
		}
	}
	texts := lo.Map(results, func(r Result, _ int) string { return r.Input.Text })
	return Result{
		Input:  Input{Source: "sum", Text: strings.Join(texts, " + ")},
		Period: total,
	}, nil
}

func (c CLI) parseOne(text string, opts []period.Option) (period.Period, error) {
	if c.option.Compat {
		d, err := duration.Parse(text)
		if err != nil {
			return period.Period{}, fmt.Errorf("parse %q: %w", text, err)
		}
		return period.FromStd(d), nil
	}
	return period.ParsePeriod(text, opts...)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
