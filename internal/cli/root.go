package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/leonardcser/look-and-say/internal/config"
	"github.com/leonardcser/look-and-say/internal/logger"
	"github.com/leonardcser/look-and-say/internal/sequence"
	"github.com/leonardcser/look-and-say/internal/session"
)

// app carries state shared by the commands of one invocation.
type app struct {
	configPath string
	strategy   string
	full       bool

	cfg  *config.Config
	sess *session.Session
}

// NewRootCmd builds the lookandsay command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lookandsay [n]",
		Short: "Middle two digits of the look-and-say sequence",
		Long: `lookandsay computes term n of the look-and-say sequence (1, 11, 21, 1211, ...)
and prints the two digits at its center. n must satisfy 3 < n < 100.
When n is not given it is read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE:          a.withSession(a.runMiddleOfTerm),
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVarP(&a.strategy, "strategy", "s", "", "recursive, iterative or memoized (default from config)")
	root.Flags().BoolVar(&a.full, "full", false, "also print the full term")

	root.AddCommand(
		newTermCmd(a),
		newMiddleCmd(),
		newCompareCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sequence.ErrOutOfDomain):
		return 2
	default:
		return 1
	}
}

// withSession wraps a command that computes terms: it loads config, opens
// the log and a session, and closes the session however run returns.
func (a *app) withSession(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := a.setup(cmd); err != nil {
			return err
		}
		defer func() {
			if cerr := a.teardown(); cerr != nil && err == nil {
				err = fmt.Errorf("close session: %w", cerr)
			}
		}()
		return run(cmd, args)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.strategy == "" {
		a.strategy = cfg.Strategy
	}
	if _, err := sequence.ParseStrategy(a.strategy); err != nil {
		return err
	}

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = logger.DefaultPath()
	}
	if err := logger.Init(logPath); err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("%v, keeping info level", err)
	}

	a.sess, err = session.Open(cfg)
	if err != nil {
		return err
	}
	logger.Debugf("session %s: %s %s", a.sess.ID(), cmd.CommandPath(), a.sess.Backend())
	return nil
}

func (a *app) teardown() error {
	if a.sess == nil {
		return nil
	}
	err := a.sess.Close()
	a.sess = nil
	return err
}

func (a *app) defaultStrategy() sequence.Strategy {
	s, err := sequence.ParseStrategy(a.strategy)
	if err != nil {
		return sequence.Memoized
	}
	return s
}

func (a *app) runMiddleOfTerm(cmd *cobra.Command, args []string) error {
	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		var err error
		raw, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout(), "Enter n: ")
		if err != nil {
			return err
		}
	}
	n, err := parseIndex(raw)
	if err != nil {
		return err
	}

	term, err := a.term(cmd, n)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), sequence.MiddleTwo(term))
	if a.full {
		fmt.Fprintln(cmd.OutOrStdout(), term)
	}
	return nil
}

func (a *app) term(cmd *cobra.Command, n int) (string, error) {
	strategy := a.defaultStrategy()
	term, err := a.sess.Term(cmd.Context(), n, strategy)
	if err != nil {
		logger.Warnf("session %s: term %d (%s): %v", a.sess.ID(), n, strategy, err)
		return "", err
	}
	logger.Infof("session %s: term %d (%s) has %d digits", a.sess.ID(), n, strategy, len(term))
	if terms, bytes, err := a.sess.Footprint(); err == nil {
		logger.Debugf("session %s: %s cache holds %d terms, %s", a.sess.ID(), a.sess.Backend(), terms, humanize.Bytes(uint64(bytes)))
	}
	return term, nil
}

// parseIndex converts user input to a term index. Non-integers are
// reported as out-of-domain input, like out-of-range integers.
func parseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", sequence.ErrOutOfDomain, raw)
	}
	return n, nil
}

func prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read n: %w", err)
	}
	return strings.TrimSpace(line), nil
}
