// Command tzcheck resolves the engine's configured time zone and reports how
// it interprets temporal values.
//
// Usage:
//
//	tzcheck [flags] [value ...]
//
// Each value is converted to a UTC timestamp. Integers are taken as
// timestamps; other values are read as date times in the configured zone.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/nebula-contrib/graphtime/internal/config"
	"github.com/nebula-contrib/graphtime/temporal"
	"github.com/nebula-contrib/graphtime/temporal/posix"
	"github.com/nebula-contrib/graphtime/temporal/tzdb"
	"github.com/nebula-contrib/graphtime/temporal/zone"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

// Fatal logs msg and exits.
func Fatal(msg string, args ...any) {
	slog.Log(context.Background(), LevelFatal, msg, args...)
	os.Exit(1)
}

// options holds the command line.
type options struct {
	configPath string
	timezone   string
	posix      string
	posixSign  bool
	dst        bool
	list       bool
	write      bool
	logLevel   string
	values     []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := pflag.NewFlagSet("tzcheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{}
	fs.StringVarP(&o.configPath, "config", "c", "", "path to the YAML configuration file")
	fs.StringVarP(&o.timezone, "timezone", "t", "", "time zone name or POSIX rule; overrides the configuration")
	fs.StringVarP(&o.posix, "posix", "p", "", "parse and describe a POSIX rule string")
	fs.BoolVar(&o.posixSign, "posix-sign", false, "read offsets in POSIX rules as west of UTC")
	fs.BoolVar(&o.dst, "dst", false, "apply daylight saving time rules")
	fs.BoolVarP(&o.list, "list", "L", false, "list the built-in time zones")
	fs.BoolVarP(&o.write, "write", "w", false, "write the effective configuration to the --config path")
	fs.StringVarP(&o.logLevel, "loglevel", "l", "info", "log level: trace, debug, info, warning, error or fatal")
	if err := fs.Parse(args); err != nil {
		// ContinueOnError leaves reporting to the caller.
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(stderr, err)
			fs.Usage()
		}
		return nil, err
	}
	o.values = fs.Args()
	return o, nil
}

// logLevel returns the level named by a prefix of one of its names.
func logLevel(value string) (slog.Level, error) {
	lv := strings.ToLower(value)
	switch {
	case lv == "":
	case strings.HasPrefix("trace", lv):
		return LevelTrace, nil
	case strings.HasPrefix("debug", lv):
		return slog.LevelDebug, nil
	case strings.HasPrefix("info", lv):
		return slog.LevelInfo, nil
	case strings.HasPrefix("warning", lv):
		return slog.LevelWarn, nil
	case strings.HasPrefix("error", lv):
		return slog.LevelError, nil
	case strings.HasPrefix("fatal", lv):
		return LevelFatal, nil
	}
	return 0, fmt.Errorf(
		"loglevel %q must be a prefix of trace, debug, info, warning, error or fatal",
		value,
	)
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	level, err := logLevel(o.logLevel)
	if err != nil {
		Fatal("Invalid flag", "error", err)
	}
	slog.SetLogLoggerLevel(level)

	if err := run(o, os.Stdout, time.Now); err != nil {
		Fatal("tzcheck failed", "error", err)
	}
}

// run executes the command described by o, writing its report to w.
func run(o *options, w io.Writer, now func() time.Time) error {
	if o.list {
		for _, name := range tzdb.Names() {
			e, _ := tzdb.Lookup(name)
			fmt.Fprintf(w, "%-32s %-6s %s\n", name, e.Abbreviation, formatOffset(e.Offset))
		}
		return nil
	}

	if o.posix != "" {
		return describeRule(w, o.posix, o.posixSign)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if o.timezone != "" {
		cfg.TimezoneName = o.timezone
	}
	cfg.POSIXSign = cfg.POSIXSign || o.posixSign
	cfg.DST = cfg.DST || o.dst
	slog.Debug("Effective config",
		"config_path", o.configPath,
		"timezone_name", cfg.TimezoneName,
		"posix_sign", cfg.POSIXSign,
		"dst", cfg.DST,
	)

	if o.write {
		if err := config.Save(o.configPath, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		slog.Info("Wrote config", "path", o.configPath)
	}

	if err := cfg.InitGlobal(); err != nil {
		return err
	}
	z := zone.Global()
	slog.Info("Initialized timezone", "name", z.Name(), "offset", z.UTCOffsetSecs())

	opts := []temporal.Option{temporal.WithClock(now)}
	if cfg.DST {
		opts = append(opts, temporal.WithDST())
	}
	ctx := zone.ContextWithZone(context.Background(), z)
	u := temporal.FromContext(ctx, opts...)

	fmt.Fprintf(w, "zone:   %v\n", z)
	fmt.Fprintf(w, "abbrev: %v\n", z.Abbreviation())
	fmt.Fprintf(w, "offset: %v\n", formatOffset(z.UTCOffsetSecs()))
	if rule := z.Rule(); rule != nil {
		fmt.Fprintf(w, "rule:   %v\n", rule)
		fmt.Fprintf(w, "posix:  %v\n", rule.POSIXString())
	}
	fmt.Fprintf(w, "local:  %v\n", u.LocalDateTime())
	fmt.Fprintf(w, "utc:    %v\n", u.UTCDateTime())

	var errs []error
	for _, val := range o.values {
		var v any = val
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			v = n
		}
		ts, err := u.ToTimestamp(v)
		if err != nil {
			slog.Error("Cannot convert value", "value", val, "error", err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "%v\t%d\n", val, ts)
	}
	return errors.Join(errs...)
}

// describeRule parses src as a POSIX rule and writes its fields to w.
func describeRule(w io.Writer, src string, posixSign bool) error {
	var opts []posix.Option
	if posixSign {
		opts = append(opts, posix.WithPOSIXSign())
	}
	rule, err := posix.Parse(src, opts...)
	if err != nil {
		return err
	}
	slog.Log(context.Background(), LevelTrace, "Parsed rule", "rule", rule)

	fmt.Fprintf(w, "std:    %v %v\n", rule.StdName, formatOffset(rule.StdOffset))
	if !rule.HasDST() {
		fmt.Fprintln(w, "dst:    none")
	} else {
		fmt.Fprintf(w, "dst:    %v %v\n", rule.DSTName, formatOffset(rule.DSTOffset))
		fmt.Fprintf(w, "start:  %v (%v)\n", rule.Start, rule.Start.Kind)
		fmt.Fprintf(w, "end:    %v (%v)\n", rule.End, rule.End.Kind)
	}
	fmt.Fprintf(w, "rule:   %v\n", rule)
	fmt.Fprintf(w, "posix:  %v\n", rule.POSIXString())
	return nil
}

// formatOffset formats secs as UTC±hh:mm[:ss].
func formatOffset(secs int32) string {
	sign := '+'
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	h, m, s := secs/3600, secs%3600/60, secs%60
	if s != 0 {
		return fmt.Sprintf("UTC%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, h, m)
}
