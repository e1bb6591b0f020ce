package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/leonardcser/look-and-say/internal/logger"
	"github.com/leonardcser/look-and-say/internal/sequence"
)

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ErrStrategiesDisagree is returned by compare when two strategies
// produce different terms.
var ErrStrategiesDisagree = errors.New("strategies produced different terms")

// comparison is one row of the compare table.
type comparison struct {
	label   string
	elapsed time.Duration
	encodes int64
	term    string
	err     error
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <n>",
		Short: "Run every strategy for term n and compare timings",
		Long: `compare computes term n with the recursive, iterative and memoized
strategies in one session, checks that they agree, and prints how long each
took and how many encoder passes it needed. The memoized strategy runs twice
to show the second call being served from the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := sequence.Validate(n); err != nil {
				return err
			}

			runs := []struct {
				label    string
				strategy sequence.Strategy
			}{
				{"recursive", sequence.Recursive},
				{"iterative", sequence.Iterative},
				{"memoized", sequence.Memoized},
				{"memoized (cached)", sequence.Memoized},
			}
			rows := make([]comparison, 0, len(runs))
			for _, r := range runs {
				before := a.sess.Stats().Encodes
				start := time.Now()
				term, err := a.sess.Term(cmd.Context(), n, r.strategy)
				rows = append(rows, comparison{
					label:   r.label,
					elapsed: time.Since(start),
					encodes: a.sess.Stats().Encodes - before,
					term:    term,
					err:     err,
				})
				logger.Debugf("session %s: compare %s term %d took %s", a.sess.ID(), r.label, n, rows[len(rows)-1].elapsed)
			}

			printComparison(cmd.OutOrStdout(), n, rows)
			if terms, bytes, err := a.sess.Footprint(); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "cached terms: %d (%s)\n", terms, humanize.Bytes(uint64(bytes)))
			}
			return checkAgreement(rows)
		}),
	}
}

func printComparison(w io.Writer, n int, rows []comparison) {
	fmt.Fprintln(w, boldStyle.Render(fmt.Sprintf("Term %d", n)))

	tbl := table.New("STRATEGY", "TIME", "ENCODES", "DIGITS", "RUNS", "SIZE", "MIDDLE")
	tbl.WithWriter(w)
	tbl.WithPadding(2)
	tbl.WithWidthFunc(lipgloss.Width)
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return boldStyle.Render(fmt.Sprintf(format, vals...))
	})
	for _, r := range rows {
		if r.err != nil {
			tbl.AddRow(r.label, "-", r.encodes, "-", "-", "-", errorStyle.Render(r.err.Error()))
			continue
		}
		tbl.AddRow(
			r.label,
			r.elapsed.Round(time.Microsecond).String(),
			r.encodes,
			humanize.Comma(int64(len(r.term))),
			humanize.Comma(int64(len(sequence.EncodeRuns(r.term)))),
			humanize.Bytes(uint64(len(r.term))),
			successStyle.Render(sequence.MiddleTwo(r.term)),
		)
	}
	tbl.Print()
}

// checkAgreement fails if two successful runs disagree. A run that hit the
// recursion limit is not a disagreement.
func checkAgreement(rows []comparison) error {
	var want *comparison
	for i := range rows {
		r := &rows[i]
		if r.err != nil {
			var rerr *sequence.RecursionLimitError
			if errors.As(r.err, &rerr) {
				continue
			}
			return r.err
		}
		if want == nil {
			want = r
			continue
		}
		if r.term != want.term {
			return fmt.Errorf("%w: %s and %s", ErrStrategiesDisagree, want.label, r.label)
		}
	}
	return nil
}
