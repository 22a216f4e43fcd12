package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/atlasshift"
	"github.com/reoring/atlasshift/i18n"
	"github.com/reoring/atlasshift/internal/config"
	"github.com/reoring/atlasshift/internal/logging"
)

// Exit codes, one per error kind.
const (
	exitOK = iota
	exitUsage
	exitFileNotFound
	exitMalformedInput
	exitSchemaViolation
	exitWriteFailure
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		reportError(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

type app struct {
	stdout io.Writer

	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atlasshift [input] [output]",
		Short: "Shift one numeric field on every frame of a sprite atlas",
		Long: `atlasshift reads a TexturePacker-style JSON atlas, adds a delta to one
numeric member of every entry in its "frames" list (spriteSourceSize.y += 1 by
default) and writes the result atomically with two-space indentation.

Input defaults to ./run.json and output to output.json.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.cfg.Input = args[0]
			}
			if len(args) > 1 {
				a.cfg.Output = args[1]
			}
			s, err := a.shifter()
			if err != nil {
				return err
			}
			_, err = s.Shift(cmd.Context(), a.cfg.Input, a.cfg.Output)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	pf.String("field", atlasshift.DefaultField.String(), "dotted path of the number to adjust, relative to each frame")
	pf.Int64("delta", 1, "amount added to the field")
	pf.Int("indent", 2, "spaces per indentation level (0 for compact output)")
	pf.Bool("ascii-only", true, `escape non-ASCII characters as \uXXXX`)
	pf.String("json-driver", atlasshift.DefaultJSONDriver, fmt.Sprintf("JSON tokenizer %v", atlasshift.JSONDriverNames()))
	pf.String("duplicate-keys", "ignore", "duplicate object keys: ignore, warn or error")
	pf.Bool("fail-fast", false, "stop validation at the first problem")

	root.AddCommand(a.checkCmd())
	return root
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [input]",
		Short: "Validate an atlas without writing output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				a.cfg.Input = args[0]
			}
			s, err := a.shifter()
			if err != nil {
				return err
			}
			rep, err := s.Check(cmd.Context(), a.cfg.Input)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "%s: %d frames\n", rep.Input, rep.Frames)
			return nil
		},
	}
}

// setup loads config, overlays changed flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("field") {
		cfg.Field, _ = fs.GetString("field")
	}
	if fs.Changed("delta") {
		cfg.Delta, _ = fs.GetInt64("delta")
	}
	if fs.Changed("indent") {
		cfg.Indent, _ = fs.GetInt("indent")
	}
	if fs.Changed("ascii-only") {
		cfg.ASCIIOnly, _ = fs.GetBool("ascii-only")
	}
	if fs.Changed("json-driver") {
		cfg.JSONDriver, _ = fs.GetString("json-driver")
	}
	if fs.Changed("duplicate-keys") {
		cfg.DuplicateKeys, _ = fs.GetString("duplicate-keys")
	}
	if fs.Changed("fail-fast") {
		cfg.FailFast, _ = fs.GetBool("fail-fast")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	i18n.SetLanguage(cfg.Language)

	a.logger, err = logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("field", cfg.Field),
		zap.Int64("delta", cfg.Delta),
		zap.String("json_driver", cfg.JSONDriver),
	)
	return nil
}

func (a *app) shifter() (*atlasshift.Shifter, error) {
	opt, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	return atlasshift.NewShifter(opt, a.logger)
}

func exitCode(err error) int {
	switch atlasshift.KindOf(err) {
	case atlasshift.KindFileNotFound:
		return exitFileNotFound
	case atlasshift.KindMalformedInput:
		return exitMalformedInput
	case atlasshift.KindSchemaViolation:
		return exitSchemaViolation
	case atlasshift.KindWriteFailure:
		return exitWriteFailure
	default:
		return exitUsage
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "atlasshift: %v\n", err)
	iss, ok := atlasshift.AsIssues(err)
	if !ok {
		return
	}
	for _, it := range iss {
		fmt.Fprintf(w, "  %s: %s", it.Path, i18n.T(it.Code, stringParams(it.Params)))
		if it.Message != "" {
			fmt.Fprintf(w, " (%s)", it.Message)
		}
		fmt.Fprintln(w)
	}
}

func stringParams(p map[string]any) map[string]string {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = fmt.Sprint(v)
	}
	return out
}
