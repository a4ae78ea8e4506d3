package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	toon "github.com/toonify/toon-format/go-toon"
	"github.com/toonify/toon-format/go-toon/format"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, in []byte) error {
		from := cfg.inFormat()
		if from == nil {
			f := toon.DetectFormat(in)
			from = &f
		}
		out, err := toon.Convert(in, *from, format.ToonFormat, cfg.encOpts(cc.Out)...)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		_, err = io.WriteString(cc.Out, out)
		return err
	})
}
