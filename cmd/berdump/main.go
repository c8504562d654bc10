// Command berdump decodes and prints BER/DER structures, such as X.509 certificates.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/berdecode/core/logging"
	"github.com/usnistgov/berdecode/core/version"
	"go.uber.org/zap"
)

var logger = logging.New("berdump")

// envOpts contains global flags prepended to the command line.
const envOpts = "BERDUMP_OPTS"

// commands contains constructors of subcommands.
// Flags carry parsed values, so that each App instance needs its own copy.
var commands []func() *cli.Command

func defineCommand(f func() *cli.Command) {
	commands = append(commands, f)
}

func makeApp() *cli.App {
	app := &cli.App{
		Version: version.V.String(),
		Usage:   "Decode BER/DER structures.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log `level` of all packages: V, D, I, W, E, F.",
			},
		},
		Before: func(c *cli.Context) error {
			if c.IsSet("log-level") {
				logging.SetAllLevels(c.String("log-level"))
			}
			return nil
		},
	}
	for _, f := range commands {
		app.Commands = append(app.Commands, f())
	}
	sort.Sort(cli.CommandsByName(app.Commands))
	return app
}

// prependEnvOpts inserts arguments from BERDUMP_OPTS environment variable after the program name.
func prependEnvOpts(args []string) ([]string, error) {
	opts, ok := os.LookupEnv(envOpts)
	if !ok || len(args) == 0 {
		return args, nil
	}
	extra, e := shellquote.Split(opts)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", envOpts, e)
	}
	return append(append([]string{args[0]}, extra...), args[1:]...), nil
}

func main() {
	args, e := prependEnvOpts(os.Args)
	if e != nil {
		log.Fatal(e)
	}
	logger.Debug("start", zap.String("args", shellquote.Join(args...)))

	if e = makeApp().Run(args); e != nil {
		log.Fatal(e)
	}
}
