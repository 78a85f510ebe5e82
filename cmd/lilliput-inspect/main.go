// lilliput-inspect is a command-line tool for working with lilliput
// documents: dumping them in diagnostic notation, converting to and from
// JSON, YAML and CBOR, fingerprinting canonical encodings, and verifying
// untrusted input.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"

	lilliput "github.com/lilliput-format/lilliput.go"
	"github.com/lilliput-format/lilliput.go/pkg/logger"
	"github.com/lilliput-format/lilliput.go/transcode"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("missing command")
	}

	switch args[0] {
	case "dump":
		return runDump(args[1:])
	case "convert":
		return runConvert(args[1:])
	case "fingerprint":
		return runFingerprint(args[1:])
	case "verify":
		return runVerify(args[1:])
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `usage: lilliput-inspect <command> [flags]

commands:
  dump         render each value of the input in diagnostic notation
  convert      convert between lilliput, json, yaml and cbor
  fingerprint  print the BLAKE3 digest of the canonical encoding
  verify       check that the input decodes cleanly

run 'lilliput-inspect <command> --help' for the command's flags
`)
}

// makeLogger builds the tool's stderr logger.
func makeLogger(verbose bool) (zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return logger.New().Console().Level(level).Make()
}

// readInput reads the whole input, "-" meaning stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data, "-" meaning stdout.
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func runDump(args []string) error {
	flags := pflag.NewFlagSet("dump", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "-", "input file, - for stdin")
	maxDepth := flags.Int("max-depth", 0, "nesting bound, 0 for the default, -1 for unbounded")
	verbose := flags.BoolP("verbose", "v", false, "log decode progress")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log, err := makeLogger(*verbose)
	if err != nil {
		return err
	}

	data, err := readInput(*input)
	if err != nil {
		return err
	}

	opts := lilliput.DecodeOptions{MaxDepth: *maxDepth, PreserveOrder: true}
	offset := 0
	for len(data) > 0 {
		v, rest, err := lilliput.DecodePrefixWithOptions(data, opts)
		if err != nil {
			return fmt.Errorf("value starting at byte %d: %w", offset, err)
		}
		size := len(data) - len(rest)
		log.Debug().Int("offset", offset).Int("bytes", size).Str("kind", v.Kind().String()).Msg("decoded value")

		fmt.Println(v)
		offset += size
		data = rest
	}
	return nil
}

func runConvert(args []string) error {
	flags := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "-", "input file, - for stdin")
	output := flags.StringP("output", "o", "-", "output file, - for stdout")
	from := flags.String("from", "json", "input format: lilliput, json, yaml or cbor")
	to := flags.String("to", "lilliput", "output format: lilliput, json, yaml or cbor")
	canonical := flags.Bool("canonical", false, "emit lilliput in canonical form")
	verbose := flags.BoolP("verbose", "v", false, "log conversion steps")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log, err := makeLogger(*verbose)
	if err != nil {
		return err
	}

	data, err := readInput(*input)
	if err != nil {
		return err
	}
	log.Debug().Str("from", *from).Str("to", *to).Int("bytes", len(data)).Msg("converting")

	v, err := parseAs(*from, data)
	if err != nil {
		return err
	}

	out, err := renderAs(*to, v, *canonical)
	if err != nil {
		return err
	}
	return writeOutput(*output, out)
}

func parseAs(format string, data []byte) (lilliput.Value, error) {
	switch format {
	case "lilliput":
		return lilliput.Decode(data)
	case "json":
		return transcode.FromJSON(data)
	case "yaml":
		return transcode.FromYAML(data)
	case "cbor":
		return transcode.FromCBOR(data)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func renderAs(format string, v lilliput.Value, canonical bool) ([]byte, error) {
	switch format {
	case "lilliput":
		opts := lilliput.EncodeOptions{}
		if canonical {
			opts = lilliput.EncodeOptions{FloatMode: lilliput.FloatModePack, SortMapKeys: true}
		}
		return lilliput.EncodeWithOptions(v, opts)
	case "json":
		out, err := transcode.ToJSON(v)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml":
		return transcode.ToYAML(v)
	case "cbor":
		return transcode.ToCBOR(v)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func runFingerprint(args []string) error {
	flags := pflag.NewFlagSet("fingerprint", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "-", "input file, - for stdin")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	data, err := readInput(*input)
	if err != nil {
		return err
	}

	// Equal values fingerprint identically: hash the canonical bytes,
	// not the bytes as they arrived.
	canonical, err := lilliput.Canonicalize(data)
	if err != nil {
		return err
	}
	sum := blake3.Sum256(canonical)
	fmt.Printf("blake3:%s\n", hex.EncodeToString(sum[:]))
	return nil
}

func runVerify(args []string) error {
	flags := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "-", "input file, - for stdin")
	maxDepth := flags.Int("max-depth", 0, "nesting bound, 0 for the default, -1 for unbounded")
	strict := flags.Bool("strict-duplicates", false, "reject repeated map keys")
	verbose := flags.BoolP("verbose", "v", false, "log every decoded value")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log, err := makeLogger(*verbose)
	if err != nil {
		return err
	}

	data, err := readInput(*input)
	if err != nil {
		return err
	}

	opts := lilliput.DecodeOptions{MaxDepth: *maxDepth, StrictDuplicateKeys: *strict}
	dec := lilliput.NewDecoder(data, opts)
	values := 0
	for dec.More() {
		start := dec.Pos()
		if _, err := dec.DecodeValue(); err != nil {
			return fmt.Errorf("value %d starting at byte %d: %w", values, start, err)
		}
		log.Debug().Int("value", values).Int("offset", start).Int("bytes", dec.Pos()-start).Msg("ok")
		values++
	}

	fmt.Printf("ok: %d value(s), %d bytes\n", values, len(data))
	return nil
}
