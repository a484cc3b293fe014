package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"portsniffer/netutil"
	"portsniffer/output"
	"portsniffer/port"
	"portsniffer/scanner"
)

// dialer overrides the network dialer; tests point it at loopback listeners.
var dialer scanner.Dialer

// usageError marks bad invocations: they print usage and never start a scan.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cf := defaultConfig()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "portsniffer [flags] <ip>",
		Short: "Concurrent TCP connect scanner for ports 1-1024",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{fmt.Errorf("expected exactly one IP address, got %d arguments", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				file := defaultConfig()
				if err := loadConfig(cfgFile, &file); err != nil {
					return usageError{err}
				}
				overlayFlags(cmd, &file, cf)
				cf = file
			}
			return run(cmd.Context(), cf, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fl := cmd.Flags()
	fl.IntVarP(&cf.Threads, "threads", "j", cf.Threads, "number of concurrent workers")
	fl.DurationVarP(&cf.Timeout, "timeout", "t", cf.Timeout, "per-port connect timeout")
	fl.StringVarP(&cfgFile, "config", "c", "", "YAML configuration file")
	fl.BoolVarP(&cf.Quiet, "quiet", "q", cf.Quiet, "do not print ports as they are found")
	fl.BoolVarP(&cf.Verbose, "verbose", "v", cf.Verbose, "debug logging on stderr")
	return cmd
}

// overlayFlags copies the flags given on the command line over values
// loaded from the config file.
func overlayFlags(cmd *cobra.Command, dst *config, src config) {
	fl := cmd.Flags()
	if fl.Changed("threads") {
		dst.Threads = src.Threads
	}
	if fl.Changed("timeout") {
		dst.Timeout = src.Timeout
	}
	if fl.Changed("quiet") {
		dst.Quiet = src.Quiet
	}
	if fl.Changed("verbose") {
		dst.Verbose = src.Verbose
	}
}

func run(ctx context.Context, cf config, addr string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(stderr, cf.Verbose)

	ip, err := netutil.ParseAddress(addr)
	if err != nil {
		return usageError{err}
	}
	tgt, err := port.NewTarget(ip, cf.Threads)
	if err != nil {
		return usageError{err}
	}
	if tgt.Workers != cf.Threads {
		log.Warn("worker count clamped", "requested", cf.Threads, "workers", tgt.Workers)
	}
	if err := netutil.RaiseFileLimit(cf.FileLimit); err != nil {
		log.Warn("could not raise open file limit", "err", err)
	}

	fmt.Fprintf(stdout, "IP:%s Threads:%d\n", tgt.Address, tgt.Workers)

	mcfg := scanner.Config{Target: tgt, Timeout: cf.Timeout, Dialer: dialer, Logger: log}
	if !cf.Quiet {
		mcfg.Progress = stdout
	}
	report, scanErr := scanner.NewManager(mcfg).Run(ctx)
	if scanErr != nil && !errors.Is(scanErr, scanner.ErrWorkerAborted) {
		return scanErr
	}

	if err := output.PrintReport(stdout, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return scanErr
}

// exitCode maps a command error to the process status. A bad invocation
// prints usage and exits cleanly without scanning.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil, errors.As(err, &ue):
		return 0
	default:
		return 1
	}
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(os.Stderr, "\n%s", cmd.UsageString())
		}
	}
	os.Exit(exitCode(err))
}
