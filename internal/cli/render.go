package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/chroma/quick"
	"github.com/alecthomas/chroma/styles"
	"github.com/babarot/period/period"
	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

func (c CLI) render(results []Result) error {
	switch format := c.outputFormat(); format {
	case "text":
		return renderLines(c.stdout, results, period.Period.String)
	case "sql":
		return renderLines(c.stdout, results, period.Period.SQLInterval)
	case "seconds":
		return renderLines(c.stdout, results, func(p period.Period) string {
			return strconv.FormatInt(p.Duration(), 10)
		})
	case "json":
		return c.renderJSON(results)
	case "table":
		return c.renderTable(results)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func renderLines(w io.Writer, results []Result, f func(period.Period) string) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, f(r.Period)); err != nil {
			return err
		}
	}
	return nil
}

type jsonResult struct {
	Source string        `json:"source"`
	Input  string        `json:"input"`
	Period period.Period `json:"period"`
	SQL    string        `json:"sql"`
}

func (c CLI) renderJSON(results []Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Source: r.Input.Source,
			Input:  r.Input.Text,
			Period: r.Period,
			SQL:    r.Period.SQLInterval(),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if !c.colorEnabled() {
		_, err := fmt.Fprintln(c.stdout, string(data))
		return err
	}

	style := styles.Get(c.config.Output.Colorscheme)
	if style == nil || style.Name == "swapoff" {
		style = styles.Get("monokai")
	}
	if err := quick.Highlight(c.stdout, string(data), "json", "terminal256", style.Name); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.stdout)
	return err
}

func (c CLI) renderTable(results []Result) error {
	header := color.New(color.FgHiGreen)
	if c.colorEnabled() {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	tw := tablewriter.NewWriter(c.stdout)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{
		header.Sprint("INPUT"),
		header.Sprint("DAYS"),
		header.Sprint("HOURS"),
		header.Sprint("MINUTES"),
		header.Sprint("SECONDS"),
		header.Sprint("TOTAL"),
		header.Sprint("APPROX"),
	})
	for _, r := range results {
		p := r.Period
		tw.Append([]string{
			r.Input.Text,
			strconv.FormatInt(p.Days(), 10),
			strconv.FormatInt(p.Hours(), 10),
			strconv.FormatInt(p.Minutes(), 10),
			strconv.FormatInt(p.Seconds(), 10),
			humanize.Comma(p.Duration()) + "s",
			units.HumanDuration(p.Std()),
		})
	}
	tw.Render()
	return nil
}

func (c CLI) colorEnabled() bool {
	switch c.config.Output.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := c.stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
