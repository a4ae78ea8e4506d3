package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"github.com/toonify/toon-format/go-toon/encode"
	"github.com/toonify/toon-format/go-toon/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output JSON in compact format'"`

	T bool `cli:"name=t aliases=toon desc='do i/o in toon'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w (formats: %v)", cli.ErrUsage, err, format.AllFormats())
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// inFormat resolves the input format, falling back to content detection
// on the document itself.
func (cfg *MainConfig) inFormat() *format.Format {
	switch {
	case cfg.InFormat != nil:
		return cfg.InFormat
	case cfg.T:
		f := format.ToonFormat
		return &f
	case cfg.J:
		f := format.JSONFormat
		return &f
	default:
		return nil
	}
}

// outFormat resolves the output format, defaulting to the opposite of
// the input.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.T:
		return format.ToonFormat
	case cfg.J:
		return format.JSONFormat
	case in.IsToon():
		return format.JSONFormat
	default:
		return format.ToonFormat
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ConvertConfig struct {
	*MainConfig

	Verify bool `cli:"name=verify desc='check the conversion round-trips exactly'"`

	Convert *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	SchemaFile string

	Validate *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
