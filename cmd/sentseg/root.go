package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	sentseg "github.com/jamesainslie/go-sentseg"
	"github.com/jamesainslie/go-sentseg/boundary"
)

// options holds the resolved command configuration.
type options struct {
	mode      sentseg.Mode
	backend   boundary.Source
	workers   int
	format    string
	null      bool
	normalize string
	logLevel  slog.Level
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SENTSEG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "sentseg [TEXT...]",
		Short: "Split text into sentences on UAX#29 boundaries",
		Long: `sentseg splits each input text into sentences.

Texts are taken from the arguments, or read from stdin one per line
(one per NUL-terminated record with -0). Every flag can also be set
through an SENTSEG_* environment variable, e.g. SENTSEG_WORKERS=4.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(v)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.logLevel}))

			texts := args
			if len(texts) == 0 {
				data, err := io.ReadAll(stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				texts = splitRecords(data, opts.null)
			}
			texts, err = normalizeTexts(texts, opts.normalize)
			if err != nil {
				return err
			}

			segOpts := []sentseg.Option{
				sentseg.WithSource(opts.backend),
				sentseg.WithLogger(logger),
			}
			if opts.workers != 0 {
				segOpts = append(segOpts, sentseg.WithWorkers(opts.workers))
			}
			seg := sentseg.New(segOpts...)

			results, err := seg.SegmentBatch(cmd.Context(), texts, opts.mode)
			if err != nil {
				return err
			}
			logger.Info("segmented", slog.Int("texts", len(texts)), slog.Int("sentences", countSentences(results)))

			return writeResults(stdout, results, opts.format)
		},
	}

	flags := cmd.Flags()
	flags.BoolP("raw", "r", false, "Keep raw boundary runs including whitespace")
	flags.StringP("backend", "b", boundary.NameUAX29, "Boundary backend: "+strings.Join(boundary.Names(), ", "))
	flags.IntP("workers", "w", 0, "Worker count (default: number of online CPUs)")
	flags.StringP("format", "f", "lines", "Output format: lines or json")
	flags.BoolP("null", "0", false, "Read NUL-separated texts from stdin instead of lines")
	flags.String("normalize", "", "Unicode normalization applied before segmenting: nfc, nfd, nfkc, nfkd")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func resolveOptions(v *viper.Viper) (options, error) {
	opts := options{
		workers:   v.GetInt("workers"),
		format:    v.GetString("format"),
		null:      v.GetBool("null"),
		normalize: v.GetString("normalize"),
	}

	if v.GetBool("raw") {
		opts.mode = sentseg.RawBounds
	}

	src, err := boundary.Lookup(v.GetString("backend"))
	if err != nil {
		return options{}, err
	}
	opts.backend = src

	if err := opts.logLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return options{}, fmt.Errorf("invalid log level: %w", err)
	}

	if v.IsSet("workers") && opts.workers < 1 {
		return options{}, fmt.Errorf("%w: %d", sentseg.ErrInvalidWorkerCount, opts.workers)
	}

	switch opts.format {
	case "lines", "json":
	default:
		return options{}, fmt.Errorf("unknown output format %q", opts.format)
	}

	return opts, nil
}

// splitRecords splits stdin into texts. Newline mode drops a trailing
// carriage return from each line.
func splitRecords(data []byte, null bool) []string {
	if len(data) == 0 {
		return nil
	}

	sep := byte('\n')
	if null {
		sep = 0
	}
	data = bytes.TrimSuffix(data, []byte{sep})

	var texts []string
	for _, rec := range bytes.Split(data, []byte{sep}) {
		if !null {
			rec = bytes.TrimSuffix(rec, []byte{'\r'})
		}
		texts = append(texts, string(rec))
	}
	return texts
}

var normForms = map[string]norm.Form{
	"nfc":  norm.NFC,
	"nfd":  norm.NFD,
	"nfkc": norm.NFKC,
	"nfkd": norm.NFKD,
}

func normalizeTexts(texts []string, form string) ([]string, error) {
	if form == "" {
		return texts, nil
	}
	f, ok := normForms[strings.ToLower(form)]
	if !ok {
		return nil, fmt.Errorf("unknown normalization form %q", form)
	}

	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = f.String(t)
	}
	return out, nil
}

func countSentences(results [][]string) int {
	n := 0
	for _, r := range results {
		n += len(r)
	}
	return n
}

// writeResults prints one sentence per line with a blank line after each
// text, or a JSON array of arrays. Line output escapes embedded newlines.
func writeResults(w io.Writer, results [][]string, format string) error {
	if format == "json" {
		return writeJSON(w, results)
	}

	bw := bufio.NewWriter(w)
	var errs []error
	for _, sentences := range results {
		for _, s := range sentences {
			if _, err := fmt.Fprintf(bw, "%s\n", strings.ReplaceAll(s, "\n", `\n`)); err != nil {
				errs = append(errs, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			errs = append(errs, err)
		}
	}
	if err := bw.Flush(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func writeJSON(w io.Writer, results [][]string) error {
	rows := make([]any, len(results))
	for i, sentences := range results {
		row := make([]any, len(sentences))
		for j, s := range sentences {
			row[j] = s
		}
		rows[i] = row
	}

	list, err := structpb.NewList(rows)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	data, err := protojson.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
