package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/berdecode/ber"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// stdinName is the file name that refers to standard input.
const stdinName = "-"

// dumper decodes input files and prints them.
type dumper struct {
	cfg     dumpConfig
	decoder ber.Decoder
	printer printer
	stdin   io.Reader
}

func newDumper(cfg dumpConfig, stdin io.Reader, p printer) *dumper {
	return &dumper{
		cfg:     cfg,
		decoder: ber.Decoder{Config: cfg.Config},
		printer: p,
		stdin:   stdin,
	}
}

func (d *dumper) read(filename string) ([]byte, error) {
	if filename == stdinName {
		return io.ReadAll(d.stdin)
	}
	return os.ReadFile(filename)
}

// dumpFile decodes and prints every document in a file.
func (d *dumper) dumpFile(filename string) (e error) {
	body, e := d.read(filename)
	if e != nil {
		return e
	}

	docs, e := inputReaders[d.cfg.Input](body)
	if e != nil {
		return fmt.Errorf("%s: %w", filename, e)
	}

	for i, doc := range docs {
		elements, e := d.decoder.Decode(doc.Wire)
		logEntry := logger.With(zap.String("file", filename), zap.Int("doc", i), zap.Int("size", len(doc.Wire)))
		if e != nil {
			logEntry.Debug("decode error", zap.Error(e))
			return fmt.Errorf("%s: %w", filename, e)
		}
		logEntry.Debug("decoded", zap.Int("top-level", len(elements)))

		if e = d.printer.Print(doc, elements); e != nil {
			return e
		}
	}
	return nil
}

// Run decodes every file, continuing past failures, and returns the combined errors.
func (d *dumper) Run(filenames []string) (e error) {
	if len(filenames) == 0 {
		filenames = []string{stdinName}
	}
	for _, filename := range filenames {
		e = multierr.Append(e, d.dumpFile(filename))
	}
	return multierr.Append(e, d.printer.Flush())
}

func appStdin(c *cli.Context) io.Reader {
	if c.App.Reader == nil {
		return os.Stdin
	}
	return c.App.Reader
}

func init() {
	defineCommand(func() *cli.Command {
		return &cli.Command{
			Name:      "decode",
			Usage:     "Decode BER/DER files and print the element tree.",
			ArgsUsage: "[FILE...]",
			Flags:     makeConfigFlags(),
			Action: func(c *cli.Context) error {
				cfg, e := makeConfig(c)
				if e != nil {
					return e
				}
				logger.Debug("decode", zap.Any("config", cfg), zap.Strings("files", c.Args().Slice()))

				return newDumper(cfg, appStdin(c), newPrinter(c.App.Writer, cfg)).Run(c.Args().Slice())
			},
		}
	})
}
