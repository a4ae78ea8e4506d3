package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/toonify/toon-format/go-toon/ir"
	"github.com/toonify/toon-format/go-toon/parse"
	"github.com/toonify/toon-format/go-toon/schema"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.SchemaFile == "" {
		return fmt.Errorf("%w: validate requires -s <schema-file>", cli.ErrUsage)
	}
	s, err := loadSchema(cfg.SchemaFile)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", cfg.SchemaFile, err)
	}
	total := 0
	err = eachInput(cc, args, func(name string, in []byte) error {
		y, err := parse.Parse(in, parse.ParseToon())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		errs := schema.Validate(y, s)
		for i := range errs {
			fmt.Fprintf(cc.Out, "%s: %s\n", name, errs[i].Error())
		}
		total += len(errs)
		return nil
	})
	if err != nil {
		return err
	}
	if total > 0 {
		return fmt.Errorf("%d schema violations", total)
	}
	return nil
}

// loadSchema reads a schema descriptor document, JSON by default, YAML
// for .yaml/.yml files.
func loadSchema(file string) (*schema.Schema, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var doc *ir.Node
	if strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml") {
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", schema.ErrBadSchema, err)
		}
		if doc, err = ir.FromAny(v); err != nil {
			return nil, err
		}
	} else if doc, err = parse.Parse(d, parse.ParseJSON()); err != nil {
		return nil, fmt.Errorf("%w: %w", schema.ErrBadSchema, err)
	}
	return schema.Parse(doc)
}
