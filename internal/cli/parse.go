package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucrnz/durstr"
	"github.com/lucrnz/durstr/internal/input"
	"github.com/lucrnz/durstr/internal/logging"
	"github.com/lucrnz/durstr/internal/util"
)

var (
	inputFiles   []string
	outputFormat string
	sumOnly      bool
	lenient      bool
	maxDuration  time.Duration
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [DURATION...]",
		Short: "Parse durations from arguments, files or stdin",
		Long: `Parse each argument as a duration and print the result, one per line.

Without arguments or --file, durations are read from stdin, one per line.
Blank lines and lines starting with '#' are skipped.`,
		Example: `  durstr parse "1hr 2min 3sec"
  durstr parse -o seconds "12 minutes, 21 seconds"
  durstr parse -u "d,day,days=24h" --sum "2 days" "4 hours"
  durstr parse -f timeouts.txt.zst -o json`,
		RunE: runParse,
	}

	f := cmd.Flags()
	f.StringArrayVarP(&inputFiles, "file", "f", nil, "Read durations line by line from FILE; gzip, zstd and xz are decompressed. \"-\" reads stdin. Can be specified multiple times.")
	f.StringVarP(&outputFormat, "output", "o", "text", "Output format: "+strings.Join(util.Formats, ", ")+", json")
	f.BoolVar(&sumOnly, "sum", false, "Print only the total of all parsed durations")
	f.BoolVar(&lenient, "lenient", false, "Fall back to Go duration syntax (1h30m, 2d, 500us) when an input does not parse")
	durstr.DurationVarP(f, nil, &maxDuration, "max", "", 0, "Reject durations longer than this, e.g. \"1 hour\" (0 = unlimited)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	out, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}
	p, err := buildParser(cmd)
	if err != nil {
		return err
	}

	var (
		total          time.Duration
		parsed, failed int
	)
	handle := func(source string, line int, text string) error {
		d, err := parseOne(cmd, p, text)
		if err == nil && maxDuration > 0 && d > maxDuration {
			err = fmt.Errorf("%v exceeds --max %v", d, maxDuration)
		}
		if err != nil {
			failed++
			logger.Error("parse_failed", "source", source, "line", line, "input", text, "error", err)
			if sumOnly {
				return nil
			}
			return out.failure(text, err)
		}

		parsed++
		if total > math.MaxInt64-d {
			return fmt.Errorf("sum of durations: %w", durstr.ErrOverflow)
		}
		total += d
		if sumOnly {
			return nil
		}
		return out.result(text, d)
	}

	for i, arg := range args {
		if err := handle("arg", i+1, arg); err != nil {
			return err
		}
	}

	files := inputFiles
	if len(args) == 0 && len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		stats, err := input.Each(ctx, name, cmd.InOrStdin(), func(l input.Line) error {
			return handle(l.Source, l.Number, l.Text)
		})
		if err != nil {
			return err
		}
		logger.Debug("input_read",
			"source", name,
			"compression", stats.Compression.String(),
			"lines", stats.Lines,
			"size", util.HumanReadableBytes(stats.Bytes),
		)
	}

	if sumOnly {
		if err := out.total(total, parsed); err != nil {
			return err
		}
	}
	logger.Debug("batch_summary", "parsed", parsed, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", failed, parsed+failed)
	}
	return nil
}

// parseOne parses text with p and, under --lenient, retries with Go duration
// syntax.
func parseOne(cmd *cobra.Command, p *durstr.Parser, text string) (time.Duration, error) {
	d, err := p.Parse(text)
	if err == nil || !lenient {
		return d, err
	}
	gd, gerr := util.ParseGoDuration(text)
	if gerr != nil {
		return 0, err
	}
	logging.FromContext(cmd.Context()).Debug("lenient_fallback", "input", text, "duration", gd.String())
	return gd, nil
}

type printer struct {
	w      io.Writer
	format string
	enc    *json.Encoder
}

type jsonRecord struct {
	Input       string  `json:"input,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Nanoseconds int64   `json:"nanoseconds"`
	Seconds     float64 `json:"seconds"`
	Count       *int    `json:"count,omitempty"`
	Error       string  `json:"error,omitempty"`
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	pr := &printer{w: w, format: strings.ToLower(format)}
	if pr.format == "json" {
		pr.enc = json.NewEncoder(w)
		return pr, nil
	}
	if _, err := util.FormatDuration(0, pr.format); err != nil {
		return nil, err
	}
	return pr, nil
}

func (pr *printer) result(text string, d time.Duration) error {
	if pr.enc != nil {
		return pr.enc.Encode(jsonRecord{
			Input:       text,
			Duration:    d.String(),
			Nanoseconds: int64(d),
			Seconds:     d.Seconds(),
		})
	}
	s, err := util.FormatDuration(d, pr.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pr.w, s)
	return err
}

// failure reports a bad input on stdout in json mode; in text modes the log
// line on stderr is the only report.
func (pr *printer) failure(text string, err error) error {
	if pr.enc == nil {
		return nil
	}
	return pr.enc.Encode(jsonRecord{Input: text, Error: err.Error()})
}

func (pr *printer) total(d time.Duration, count int) error {
	if pr.enc != nil {
		return pr.enc.Encode(jsonRecord{
			Duration:    d.String(),
			Nanoseconds: int64(d),
			Seconds:     d.Seconds(),
			Count:       &count,
		})
	}
	return pr.result("", d)
}
