// Package cli implements the cookiecheck command line tool.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ryanbekhen/cookie"
	"github.com/ryanbekhen/cookie/log"
	"github.com/spf13/cobra"
)

const (
	formatText   = "text"
	formatHeader = "header"
	formatJSON   = "json"
)

// app is the state shared by all commands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	debug      bool

	config Config
	logger *log.Logger
	parser *cookie.Parser
}

// NewRootCmd builds the cookiecheck command tree reading from in and
// writing results to out and logs to errOut.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:           "cookiecheck",
		Short:         "cookiecheck parses Set-Cookie headers and decides where cookies are sent.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "output debug logs")

	rootCmd.AddCommand(newParseCmd(a), newMatchCmd(a), newHARCmd(a))
	return rootCmd
}

// Execute runs cookiecheck with the process arguments and returns the exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// execute runs the command tree with args. Failures are logged to errOut so
// out only carries results.
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := NewRootCmd(in, out, errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		newConsoleLogger(errOut, log.ErrorLevel).Error().Err(err).Msg("cookiecheck failed")
		return 1
	}
	return 0
}

// newConsoleLogger logs to w through a ConsoleWriter, with colors only when
// w is a file.
func newConsoleLogger(w io.Writer, level log.Level) *log.Logger {
	writer := log.NewConsoleWriter(w)
	if _, isFile := w.(*os.File); !isFile {
		writer.NoColor = true
	}
	return log.NewWithConfig(log.LoggerConfig{
		Writer:     writer,
		Level:      level,
		TimeFormat: "15:04:05",
	})
}

// init loads the configuration and builds the logger and parser.
func (a *app) init() error {
	cfg, err := ReadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.LogLevel = log.DebugLevel.String()
	}
	a.config = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.logger = newConsoleLogger(a.errOut, level)

	a.parser = cookie.NewParser(cookie.Config{
		Now:    time.Now,
		Logger: a.logger,
	})
	return nil
}

// values returns args, or the non-blank lines of stdin when args is empty.
func (a *app) values(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var values []string
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			values = append(values, line)
		}
	}
	return values, scanner.Err()
}

// stringFlag returns the flag value when it was set on the command line and
// fallback otherwise.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func boolFlag(cmd *cobra.Command, name string, value, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
