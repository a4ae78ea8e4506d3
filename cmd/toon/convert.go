package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	toon "github.com/toonify/toon-format/go-toon"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, in []byte) error {
		from := cfg.inFormat()
		if from == nil {
			f := toon.DetectFormat(in)
			from = &f
		}
		if cfg.Verify {
			if err := toon.VerifyRoundTrip(in, *from); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		out, err := toon.Convert(in, *from, cfg.outFormat(*from), cfg.encOpts(cc.Out)...)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		_, err = io.WriteString(cc.Out, out)
		return err
	})
}

// eachInput runs f over each named file, or stdin when no files are
// given. "-" reads stdin.
func eachInput(cc *cli.Context, files []string, f func(name string, in []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		var (
			r   io.ReadCloser
			err error
		)
		if file == "-" {
			r = io.NopCloser(os.Stdin)
		} else if r, err = os.Open(file); err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		in, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			return fmt.Errorf("error reading %q: %w", file, err)
		}
		if err := f(file, in); err != nil {
			return err
		}
	}
	return nil
}
