// zewif CLI - Zcash wallet interchange format tool
//
// Inspects, converts and checks zewif documents and the zcashd-serialized
// structures they are built from.
//
// Example usage:
//
//	# Summarize an export and check its transaction ids
//	zewif inspect wallet.zewif
//
//	# Print the CBOR diagnostic notation of a document
//	zewif diag wallet.cbor
//
//	# Decode a zcashd witness and print its authentication path
//	zewif witness --protocol sprout 01ab...
//
//	# Frame a raw CBOR document as a compressed archive
//	zewif pack wallet.cbor wallet.zewif
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/spf13/pflag"

	"github.com/suffix-labs/zewif/pkg/config"
)

const version = "v0.1.0"

var errUsage = ierrors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !ierrors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "inspect":
		return cmdInspect(rest, stdout, stderr)
	case "diag":
		return cmdDiag(rest, stdout, stderr)
	case "digest":
		return cmdDigest(rest, stdout, stderr)
	case "witness":
		return cmdWitness(rest, stdout, stderr)
	case "pack":
		return cmdPack(rest, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "zewif %s\n", version)
		return nil
	case "help", "--help", "-h":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `zewif - Zcash wallet interchange format tool

Usage:
  zewif <command> [options]

Commands:
  inspect <file>               Decode a document and summarize it
  diag <file>                  Print the CBOR diagnostic notation of a document
  digest <file>                Print the structural digest of a document
  witness [--protocol p] <hex> Decode a zcashd-serialized witness
  pack <in> <out>              Frame a document as an archive
  version                      Show version information
  help                         Show this help message

Every command accepts --config <file> (or ZEWIF_CONFIG) and --log-level.
Files may be raw CBOR documents or archives.`)
}

// env is what every command gets after its flags are parsed.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	args   []string
}

// commonFlags registers the flags every command shares.
type commonFlags struct {
	configPath string
	logLevel   string
}

func newFlagSet(name string, stderr io.Writer) (*pflag.FlagSet, *commonFlags) {
	common := new(commonFlags)

	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&common.configPath, "config", "", "path to the YAML configuration (default $"+config.EnvVar+")")
	flagSet.StringVar(&common.logLevel, "log-level", "", "debug, info, warn or error (overrides the configuration)")

	return flagSet, common
}

// parse parses args, loads the configuration and builds the logger.
// wantArgs is the exact number of positional arguments the command takes.
func parse(flagSet *pflag.FlagSet, common *commonFlags, args []string, wantArgs int, stderr io.Writer) (*env, error) {
	if err := flagSet.Parse(args); err != nil {
		if ierrors.Is(err, pflag.ErrHelp) {
			return nil, errUsage
		}

		return nil, err
	}
	if flagSet.NArg() != wantArgs {
		fmt.Fprintf(stderr, "%s takes %d argument(s), got %d\n", flagSet.Name(), wantArgs, flagSet.NArg())
		flagSet.PrintDefaults()

		return nil, errUsage
	}

	cfg, err := config.Load(common.configPath)
	if err != nil {
		return nil, err
	}
	if common.logLevel != "" {
		cfg.LogLevel = common.logLevel
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return &env{cfg: cfg, logger: logger.With("command", flagSet.Name()), args: flagSet.Args()}, nil
}
