// Copyright
// SPDX-License-Identifier: MIT
// devtoys: terminal developer toolbox with a JSON formatter, plus format/minify filters for scripts
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devtoys/internal/catalog"
	"devtoys/internal/clipboard"
	cfg "devtoys/internal/config"
	"devtoys/internal/jsonfmt"
	"devtoys/internal/logging"
	appTUI "devtoys/internal/tui"
)

const Version = "0.3.0"

// errReported means the command already printed its diagnostic.
var errReported = errors.New("reported")

// app carries global flags and the process streams so commands stay testable.
type app struct {
	configPath string
	codec      string
	verbose    bool
	open       string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	getenv func(string) string

	conf   *cfg.Config
	logger *zap.Logger
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr, getenv: os.Getenv}
	err := newRootCmd(a).Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "devtoys:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "devtoys",
		Short: "Developer toolbox: JSON formatter and friends",
		Long: `devtoys ` + Version + `
Small developer utilities in one terminal shell. Run without a command to open the TUI.
NOTES
  • Formatting runs locally; nothing leaves the machine except what you copy.
  • Config lives at $XDG_CONFIG_HOME/devtoys/config.yaml (override with --config).
  • Logs are off unless log.file is set; -v raises the level to debug.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+cfg.DefaultPath()+")")
	pf.StringVar(&a.codec, "codec", "", "JSON codec: "+strings.Join(jsonfmt.CodecNames(), "|"))
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging (needs log.file)")
	root.Flags().StringVar(&a.open, "open", "", "route of the tool to open, e.g. /formatter/json")

	root.AddCommand(
		newTransformCmd(a, "format", "Pretty-print JSON with 2-space indentation", (*jsonfmt.Engine).Format),
		newTransformCmd(a, "minify", "Remove all insignificant whitespace from JSON", (*jsonfmt.Engine).Minify),
		newToolsCmd(a),
		newThemeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) path() string {
	if a.configPath != "" {
		return a.configPath
	}
	return cfg.DefaultPath()
}

// setup loads the config, applies flag overrides and opens the log.
func (a *app) setup() error {
	c, err := cfg.Load(a.path())
	if err != nil {
		return err
	}
	if a.codec != "" {
		codec, err := jsonfmt.CodecByName(a.codec)
		if err != nil {
			return err
		}
		c.Codec = codec.Name()
	}
	logger, err := logging.New(c.Log, a.verbose)
	if err != nil {
		return err
	}
	a.conf, a.logger = c, logger
	a.logger.Debug("config loaded", zap.String("path", a.path()), zap.String("codec", c.Codec), zap.String("theme", string(c.Theme)))
	return nil
}

func (a *app) engine() *jsonfmt.Engine {
	codec, err := jsonfmt.CodecByName(a.conf.Codec)
	if err != nil {
		codec = jsonfmt.Std
	}
	return jsonfmt.New(codec)
}

func (a *app) runTUI() error {
	var selected catalog.ID
	index := strings.Trim(a.open, "/") == strings.Trim(catalog.FormatterRoot, "/")
	if a.open != "" && !index {
		d, ok := catalog.ByRoute(a.open)
		if !ok {
			return fmt.Errorf("no tool at route %q", a.open)
		}
		selected = d.ID
	}
	path := a.path()
	return appTUI.Run(appTUI.Context{
		Theme:              a.conf.Theme,
		NoColor:            a.conf.NoColorEnabled(),
		Selected:           selected,
		ShowFormatters:     index,
		Engine:             a.engine(),
		Copier:             clipboard.New(clipboard.System, clipboard.OSC52(os.Stderr, a.getenv("TERM")), a.logger),
		ReportCopyFailures: a.conf.Clipboard.ReportFailures,
		Logger:             a.logger,
		SaveTheme: func(t cfg.Theme) error {
			c := cfg.Clone(a.conf)
			c.Theme = t
			if err := cfg.Save(path, c); err != nil {
				return err
			}
			a.conf = c
			return nil
		},
	})
}

/* ---------- format / minify ---------- */

func newTransformCmd(a *app, name, short string, op func(*jsonfmt.Engine, string) jsonfmt.Result) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [file]",
		Short: short,
		Long: short + `
Reads FILE, or stdin when FILE is omitted or "-", and writes the result to stdout.
Malformed input prints the parser diagnostic to stderr and exits 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			e := a.engine()
			res := op(e, src)
			if !res.OK() {
				a.logger.Debug(name+" failed", zap.String("codec", e.Codec().Name()), zap.Error(res.Err))
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", res.Message())
				return errReported
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return err
		},
	}
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

/* ---------- tools / theme / version ---------- */

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "version", Short: "Print version", Args: cobra.NoArgs}
	// version works even with a broken config file
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }
	cmd.Run = func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "devtoys", Version)
	}
	return cmd
}

func newToolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available tools and their routes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, d := range catalog.All() {
				mark := " "
				if !catalog.Implemented(d.ID) {
					mark = "*"
				}
				fmt.Fprintf(w, "%s %-18s %-16s %s\n", mark, d.Title, d.Route, d.Description)
			}
			fmt.Fprintln(w, "\n* placeholder, not implemented yet")
		},
	}
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|system]",
		Short:     "Show or set the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(cfg.ThemeLight), string(cfg.ThemeDark), string(cfg.ThemeSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.conf.Theme)
				return nil
			}
			t, err := cfg.ParseTheme(args[0])
			if err != nil {
				return err
			}
			c := cfg.Clone(a.conf)
			c.Theme = t
			if err := cfg.Save(a.path(), c); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			a.conf = c
			a.logger.Info("theme saved", zap.String("theme", string(t)))
			fmt.Fprintln(cmd.OutOrStdout(), "theme:", t)
			return nil
		},
	}
}
