package main

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/shabbyrobe/go-ebi"
)

const defaultCount = 100

// options holds the raw flag values shared by every command.
type options struct {
	configFile string
	maxDigits  int
	mod        string
	lenient    bool
	color      string
	verbose    bool
	count      int
}

// fileConfig is the layout of the --config TOML file. Sizes are int64 because
// that is what TOML integers decode to.
type fileConfig struct {
	MaxDigits *int64  `toml:"max_digits"`
	Mod       *string `toml:"mod"`
	Lenient   *bool   `toml:"lenient"`
	Color     *string `toml:"color"`
	Count     *int64  `toml:"count"`
}

// settings are the effective values after the config file and flags have
// been merged.
type settings struct {
	maxDigits int
	mod       ebi.ModMode
	lenient   bool
	color     string
	count     int
}

// resolve merges the config file (if any) with the flags. Flags that were
// set explicitly win.
func resolve(cmd *cobra.Command, opts *options) (settings, error) {
	s := settings{
		maxDigits: opts.maxDigits,
		lenient:   opts.lenient,
		color:     opts.color,
		count:     opts.count,
	}
	mod := opts.mod

	if opts.configFile != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(opts.configFile, &fc); err != nil {
			return s, errs.Wrap(err)
		}
		changed := func(name string) bool {
			f := cmd.Flags().Lookup(name)
			return f != nil && f.Changed
		}

		if fc.MaxDigits != nil && !changed("max-digits") {
			v, err := safecast.Conv[int](*fc.MaxDigits)
			if err != nil {
				return s, errs.New("config %s: max_digits: %v", opts.configFile, err)
			}
			s.maxDigits = v
		}
		if fc.Mod != nil && !changed("mod") {
			mod = *fc.Mod
		}
		if fc.Lenient != nil && !changed("lenient") {
			s.lenient = *fc.Lenient
		}
		if fc.Color != nil && !changed("color") {
			s.color = *fc.Color
		}
		if fc.Count != nil && !changed("count") {
			v, err := safecast.Conv[int](*fc.Count)
			if err != nil {
				return s, errs.New("config %s: count: %v", opts.configFile, err)
			}
			s.count = v
		}
	}

	switch strings.ToLower(mod) {
	case "truncated", "":
		s.mod = ebi.ModTruncated
	case "nonnegative":
		s.mod = ebi.ModNonNegative
	default:
		return s, errs.New("unsupported mod %q (must be truncated or nonnegative)", mod)
	}

	switch s.color {
	case "auto", "on", "off":
	default:
		return s, errs.New("unsupported color %q (must be auto, on or off)", s.color)
	}

	if s.maxDigits < 0 {
		return s, errs.New("max-digits must not be negative, found %d", s.maxDigits)
	}
	if s.count < 0 {
		return s, errs.New("count must not be negative, found %d", s.count)
	}
	return s, nil
}

// setup resolves settings and builds the logger and context used by a
// command.
func setup(cmd *cobra.Command, opts *options) (settings, *ebi.Context, error) {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: opts.color == "off"}).
		Level(level).With().Timestamp().Logger()

	s, err := resolve(cmd, opts)
	if err != nil {
		return s, nil, err
	}

	switch s.color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}

	parseMode := ebi.ParseStrict
	if s.lenient {
		parseMode = ebi.ParseLenient
	}
	ctx := ebi.NewContext(s.maxDigits).
		SetModMode(s.mod).
		SetParseMode(parseMode).
		SetLogger(log)

	log.Debug().
		Str("config", opts.configFile).
		Int("max_digits", ctx.MaxDigits()).
		Stringer("mod", ctx.ModMode()).
		Stringer("parse", ctx.ParseMode()).
		Str("color", s.color).
		Msg("settings")

	return s, ctx, nil
}

var labelColor = color.New(color.FgCyan, color.Bold)

func label(format string, args ...any) string {
	return labelColor.Sprint(fmt.Sprintf(format, args...))
}
