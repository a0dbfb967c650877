// Command lox runs Lox scripts and hosts an interactive session.
//
//	lox [script]          run a script, or start the REPL without one
//	lox run <script>      run a script
//	lox repl              start the REPL
//	lox tokens <script>   print the token stream
//	lox ast <script>      print the syntax tree
//	lox fmt <script>      print the script reformatted
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/oarkflow/log"
	"github.com/urfave/cli/v2"

	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/logging"
)

// driver holds what every command needs once flags and lox.yaml are read.
type driver struct {
	cfg      *config.Config
	logger   *log.Logger
	stdout   io.Writer
	stderr   io.Writer
	errColor *color.Color
}

func main() {
	d := &driver{stdout: os.Stdout, stderr: os.Stderr}
	app := d.newApp()
	if err := app.Run(os.Args); err != nil {
		// Exit codes from actions are handled by cli itself; what reaches
		// here is a flag or argument problem.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(config.ExitUsage)
	}
}

func (d *driver) newApp() *cli.App {
	return &cli.App{
		Name:      "lox",
		Usage:     "Lox tree-walking interpreter",
		ArgsUsage: "[script]",
		Writer:    d.stdout,
		ErrWriter: d.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to lox.yaml (default: searched from the working directory up)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Diagnostic log level: trace, debug, info, warn, error",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Never color error output",
			},
		},
		Before: d.setup,
		Action: func(c *cli.Context) error {
			switch c.NArg() {
			case 0:
				return d.exit(d.repl())
			case 1:
				return d.exit(d.runFile(c.Context, c.Args().First()))
			}
			return usageError(c, "at most one script")
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run a script",
				ArgsUsage: "<script>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return usageError(c, "exactly one script")
					}
					return d.exit(d.runFile(c.Context, c.Args().First()))
				},
			},
			{
				Name:  "repl",
				Usage: "Start an interactive session",
				Action: func(c *cli.Context) error {
					return d.exit(d.repl())
				},
			},
			{
				Name:      "tokens",
				Usage:     "Print the tokens of a script",
				ArgsUsage: "<script>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return usageError(c, "exactly one script")
					}
					return d.exit(d.dumpTokens(c.Args().First()))
				},
			},
			{
				Name:      "ast",
				Usage:     "Print the syntax tree of a script",
				ArgsUsage: "<script>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return usageError(c, "exactly one script")
					}
					return d.exit(d.dumpAST(c.Args().First()))
				},
			},
			{
				Name:      "fmt",
				Usage:     "Print a script in canonical layout",
				ArgsUsage: "<script>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return usageError(c, "exactly one script")
					}
					return d.exit(d.format(c.Args().First()))
				},
			},
		},
	}
}

// setup loads lox.yaml and applies the global flags on top of it.
func (d *driver) setup(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), config.ExitUsage)
	}
	if lvl := c.String("log-level"); lvl != "" {
		if !logging.ValidLevel(lvl) {
			return cli.Exit(fmt.Sprintf("unknown log level %q", lvl), config.ExitUsage)
		}
		cfg.LogLevel = lvl
	}
	if c.Bool("no-color") {
		cfg.Color = "never"
	}

	d.cfg = cfg
	d.logger = logging.New(cfg.LogLevel, d.stderr)
	d.errColor = color.New(color.FgRed)
	if useColor(cfg.Color, d.stderr) {
		d.errColor.EnableColor()
	} else {
		d.errColor.DisableColor()
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	found, err := config.FindConfig(wd)
	if err != nil || found == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(found)
}

// useColor resolves the color mode. auto colors only a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// exit turns a status into the error cli expects from an action.
func (d *driver) exit(code int) error {
	if code == config.ExitOK {
		return nil
	}
	return cli.Exit("", code)
}

func usageError(c *cli.Context, want string) error {
	return cli.Exit(fmt.Sprintf("%s: expected %s", c.App.Name, want), config.ExitUsage)
}
