package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/nickyhof/takeql"
	"github.com/nickyhof/takeql/db"
	"github.com/nickyhof/takeql/ql"
)

// Version is set at build time via -ldflags
var Version = "dev"

// Exit codes follow sysexits(3).
const (
	exitOK       = 0
	exitUsage    = 64
	exitParse    = 65
	exitInternal = 70
)

const demoProgram = "take 42\ntake 42\ntake 42\n"

// CLI holds the state shared by every subcommand once flags are parsed.
type CLI struct {
	config *cliConfig
	engine *db.Engine
	styles styles
}

type styles struct {
	heading lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return styles{
		heading: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// inputError marks a failure to read the program text.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return "failed to read program: " + e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "✗ Internal error: %v\n", r)
			code = exitInternal
		}
	}()

	cli := &CLI{}
	rootCmd := cli.newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		noColor := cli.config != nil && cli.config.NoColor
		fmt.Fprintln(stderr, newStyles(stderr, noColor).failure.Render("✗ Error: "+err.Error()))
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var inErr *inputError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ql.ErrParse):
		return exitParse
	case errors.As(err, &inErr):
		return exitInternal
	default:
		return exitUsage
	}
}

func (cli *CLI) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "takeql",
		Short: "TakeQL - parse and execute line-oriented take programs",
		Long: `TakeQL parses a program with one command per line and executes it.

Supported commands:
  take <n>   limit the result to at most n units

Blank lines are ignored. The program is read from --expr, or from stdin.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := loadConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cli.config = cfg

			var logger *slog.Logger
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			cli.engine = takeql.Open(logger).Engine()
			cli.styles = newStyles(cmd.OutOrStdout(), cfg.NoColor)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each step to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{outputText, outputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(cli.newRunCmd())
	rootCmd.AddCommand(cli.newParseCmd())
	rootCmd.AddCommand(cli.newFormatCmd())
	rootCmd.AddCommand(cli.newDemoCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func addExprFlag(cmd *cobra.Command, expr *string) {
	cmd.Flags().StringVarP(expr, "expr", "e", "", "Program text (default: read from stdin)")
}

// readProgram returns the --expr value when given, otherwise all of stdin.
func readProgram(cmd *cobra.Command, expr string) (string, error) {
	if cmd.Flags().Changed("expr") {
		return expr, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", &inputError{err: err}
	}
	return string(data), nil
}

func (cli *CLI) newRunCmd() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Parse and execute a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readProgram(cmd, expr)
			if err != nil {
				return err
			}
			return cli.execute(cmd.OutOrStdout(), text)
		},
	}
	addExprFlag(cmd, &expr)
	return cmd
}

func (cli *CLI) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Execute the built-in demo program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.execute(cmd.OutOrStdout(), demoProgram)
		},
	}
}

func (cli *CLI) newParseCmd() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a program without executing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readProgram(cmd, expr)
			if err != nil {
				return err
			}
			program, err := cli.engine.Parse(text)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			parsed := db.ParseResult{Program: program}
			if cli.config.Output == outputJSON {
				return writeJSON(w, parsed)
			}
			fmt.Fprintln(w, cli.styles.heading.Render("Program"))
			parsed.Display(w)
			return nil
		},
	}
	addExprFlag(cmd, &expr)
	return cmd
}

func (cli *CLI) newFormatCmd() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Print the canonical text of a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readProgram(cmd, expr)
			if err != nil {
				return err
			}
			program, err := cli.engine.Parse(text)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), ql.Format(program))
			return err
		},
	}
	addExprFlag(cmd, &expr)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "TakeQL v%s\n", Version)
		},
	}
}

// execute runs text and prints the parsed program followed by the result.
// Nothing is printed when parsing fails.
func (cli *CLI) execute(w io.Writer, text string) error {
	parsed, result, err := cli.engine.Run(text)
	if err != nil {
		return err
	}

	if cli.config.Output == outputJSON {
		return writeJSON(w, struct {
			Program db.ParseResult `json:"program"`
			Result  db.QueryResult `json:"result"`
		}{parsed, result})
	}

	fmt.Fprintln(w, cli.styles.heading.Render("Program"))
	parsed.Display(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.styles.heading.Render("Result"))
	result.Display(w)
	fmt.Fprintln(w, cli.styles.success.Render("✓ OK"))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
