package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/mergemap"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/berdecode/ber"
	"github.com/usnistgov/berdecode/core/jsonhelper"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/multierr"
)

//go:embed config.schema.json
var configSchema string

// dumpConfig contains decode command options.
type dumpConfig struct {
	ber.Config
	Format string `json:"format,omitempty"`
	Input  string `json:"input,omitempty"`
	MaxHex int    `json:"maxHex,omitempty"`
}

func (cfg *dumpConfig) applyDefaults() {
	if cfg.Format == "" {
		cfg.Format = formatText
	}
	if cfg.Input == "" {
		cfg.Input = inputAuto
	}
}

type schemaError struct {
	*gojsonschema.Result
}

func (e schemaError) Error() string {
	var b strings.Builder
	fmt.Fprintln(&b, "JSON document failed schema validation:")
	for _, desc := range e.Result.Errors() {
		fmt.Fprintln(&b, "-", desc)
	}
	return b.String()
}

func checkSchema(doc map[string]any) error {
	result, e := gojsonschema.Validate(gojsonschema.NewStringLoader(configSchema), gojsonschema.NewGoLoader(doc))
	if e != nil {
		return e
	}
	if !result.Valid() {
		return schemaError{result}
	}
	return nil
}

// loadConfig reads JSON config files in order, where later files override earlier ones.
func loadConfig(filenames []string) (cfg dumpConfig, e error) {
	merged := map[string]any{}
	for _, filename := range filenames {
		body, e := os.ReadFile(filename)
		if e != nil {
			return cfg, e
		}
		var doc map[string]any
		if e := json.Unmarshal(body, &doc); e != nil {
			return cfg, fmt.Errorf("%s: %w", filename, e)
		}
		merged = mergemap.Merge(merged, doc)
	}

	if e := checkSchema(merged); e != nil {
		return cfg, e
	}
	if e := jsonhelper.Roundtrip(merged, &cfg, jsonhelper.DisallowUnknownFields); e != nil {
		return cfg, e
	}
	return cfg, nil
}

func makeConfigFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "config",
			Usage: "JSON config `file` (repeatable, later files override earlier ones).",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output `format`: text or json.",
		},
		&cli.StringFlag{
			Name:  "input",
			Usage: "Input `format`: auto, der, pem, or hex.",
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "Maximum nesting `depth`.",
		},
		&cli.IntFlag{
			Name:  "max-elements",
			Usage: "Maximum `count` of elements per document.",
		},
		&cli.BoolFlag{
			Name:  "extended",
			Usage: "Decode BOOLEAN, NULL, ENUMERATED, large INTEGER, and ASCII string types.",
		},
		&cli.IntFlag{
			Name:  "max-hex",
			Usage: "Maximum `octets` printed for byte strings.",
		},
	}
}

// makeConfig loads config files and applies command line flags over them.
func makeConfig(c *cli.Context) (cfg dumpConfig, e error) {
	if cfg, e = loadConfig(c.StringSlice("config")); e != nil {
		return cfg, e
	}

	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("max-depth") {
		cfg.MaxDepth = c.Int("max-depth")
	}
	if c.IsSet("max-elements") {
		cfg.MaxElements = c.Int("max-elements")
	}
	if c.IsSet("extended") {
		cfg.Extended = c.Bool("extended")
	}
	if c.IsSet("max-hex") {
		cfg.MaxHex = c.Int("max-hex")
	}
	cfg.applyDefaults()

	errs := []error{cfg.Config.Validate()}
	if !formats[cfg.Format] {
		errs = append(errs, fmt.Errorf("unknown output format %q", cfg.Format))
	}
	if inputReaders[cfg.Input] == nil {
		errs = append(errs, fmt.Errorf("unknown input format %q", cfg.Input))
	}
	if cfg.MaxHex < 0 {
		errs = append(errs, fmt.Errorf("max-hex %d is negative", cfg.MaxHex))
	}
	return cfg, multierr.Combine(errs...)
}
