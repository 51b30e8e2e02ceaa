package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/opd-ai/inetaddr/config"
	"github.com/opd-ai/inetaddr/inet"
)

// CLI configuration
type CLIConfig struct {
	configPath  string
	defaultPort uint
	source      string
	interfaces  string
	family      string
	strictKeys  bool
	logLevel    string
	logJSON     bool
	help        bool
	args        []string

	// set records which flags were given explicitly.
	set map[string]bool
}

// parseCLIFlags parses command-line flags and returns the configuration.
func parseCLIFlags(args []string, output io.Writer) (*CLIConfig, error) {
	cfg := &CLIConfig{set: make(map[string]bool)}

	fs := flag.NewFlagSet("inetctl", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.configPath, "config", "", "YAML configuration file")
	fs.UintVar(&cfg.defaultPort, "port", 0, "Port used for hosts without one")
	fs.StringVar(&cfg.source, "source", "", "Local address to score reachability from")
	fs.StringVar(&cfg.interfaces, "interfaces", "", "List interface addresses in scope (all, local, nonlocal, private, public)")
	fs.StringVar(&cfg.family, "family", "", "Interface address family (all, ipv4, ipv6)")
	fs.BoolVar(&cfg.strictKeys, "strict-keys", false, "Reject keys that are not compressed secp256k1 points")
	fs.StringVar(&cfg.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "Log in JSON format")
	fs.BoolVar(&cfg.help, "help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })
	cfg.args = fs.Args()

	return cfg, nil
}

// printUsage prints the usage information.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "inetctl - normalize and classify peer addresses")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  inetctl [options] [key@]host[:port]...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -config FILE        YAML configuration file")
	fmt.Fprintln(w, "  -port N             port used for hosts without one")
	fmt.Fprintln(w, "  -source ADDR        local address to score reachability from")
	fmt.Fprintln(w, "  -interfaces SCOPE   list interface addresses (all, local, nonlocal, private, public)")
	fmt.Fprintln(w, "  -family FAMILY      interface address family (all, ipv4, ipv6)")
	fmt.Fprintln(w, "  -strict-keys        reject keys that are not compressed secp256k1 points")
	fmt.Fprintln(w, "  -log-level LEVEL    debug, info, warn or error")
	fmt.Fprintln(w, "  -log-json           log in JSON format")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  inetctl 127.0.0.1:8333 '[2001:db8::1]:443' aaaaaaaaaaaaaaaa.onion")
	fmt.Fprintln(w, "  inetctl -source 8.8.8.8 -port 8333 2a01::1")
	fmt.Fprintln(w, "  inetctl -interfaces public -family ipv6")
}

// resolveConfig loads the configuration file, if any, and applies the flags
// that were given explicitly on top of it.
func resolveConfig(cli *CLIConfig) (*config.Config, error) {
	cfg := config.Default()

	if cli.configPath != "" {
		loaded, err := config.Load(cli.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cli.set["port"] {
		if cli.defaultPort > 0xffff {
			return nil, fmt.Errorf("invalid port %d: must be between 0 and 65535", cli.defaultPort)
		}
		cfg.DefaultPort = uint16(cli.defaultPort)
	}
	if cli.set["source"] {
		src, err := inet.Decode(cli.source)
		if err != nil {
			return nil, fmt.Errorf("invalid source address: %w", err)
		}
		cfg.Source = &src
	}
	if cli.set["interfaces"] {
		cfg.InterfaceScope = cli.interfaces
	}
	if cli.set["family"] {
		cfg.InterfaceFamily = cli.family
	}
	if cli.set["strict-keys"] {
		cfg.StrictKeys = cli.strictKeys
	}
	if cli.set["log-level"] {
		cfg.LogLevel = cli.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogging configures the global logrus logger.
func setupLogging(level string, json bool) error {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetOutput(os.Stderr)

	return nil
}

// run analyzes every argument and, when requested, lists interfaces. Every
// failure is collected; the returned error combines them.
func run(cli *CLIConfig, cfg *config.Config, stdout io.Writer) error {
	var errs error

	for _, arg := range cli.args {
		report, err := analyze(arg, cfg)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "run",
				"input":    arg,
				"error":    err.Error(),
			}).Debug("Address rejected")
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", arg, err))
			continue
		}
		report.write(stdout)
	}

	if cli.set["interfaces"] {
		if err := listInterfaces(cfg, stdout); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

func listInterfaces(cfg *config.Config, w io.Writer) error {
	scope, err := inet.ParseScope(cfg.InterfaceScope)
	if err != nil {
		return err
	}
	family, err := inet.ParseFamily(cfg.InterfaceFamily)
	if err != nil {
		return err
	}

	list, err := inet.SystemInterfaces()
	if err != nil {
		return err
	}

	for _, addr := range inet.FilterInterfaces(list, scope, family) {
		fmt.Fprintln(w, addr)
	}
	return nil
}

// main is the entry point for the address tool.
func main() {
	cli, err := parseCLIFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			os.Exit(0)
		}
		os.Exit(2)
	}

	if cli.help || (len(cli.args) == 0 && !cli.set["interfaces"]) {
		printUsage(os.Stdout)
		os.Exit(0)
	}

	cfg, err := resolveConfig(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Use -help for usage information.\n")
		os.Exit(1)
	}

	if err := setupLogging(cfg.LogLevel, cli.logJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cli, cfg, os.Stdout); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", e)
		}
		os.Exit(1)
	}
}
