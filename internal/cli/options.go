// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"memstrap/internal/engine"
	"memstrap/internal/output"
	"memstrap/internal/pipeline"
)

// ErrUsage marks errors caused by the command line or config file.
var ErrUsage = errors.New("usage error")

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input      string
	Decompress bool

	// Extraction
	MinLen    int
	Encodings []string // names as given; see EncodingList
	Search    string
	Regex     bool
	Context   int

	// Performance
	Threads int // 0 = auto

	// Output
	Output   string // file path; "" = stdout
	Format   string
	Dedup    string
	NoHeader bool

	// Diagnostics
	NoProgress      bool
	Quiet           bool
	LogLevel        string
	NoMatchExitCode int

	ConfigFile string
	Version    bool
}

// Defaults returns the values every flag starts from.
func Defaults() Options {
	return Options{
		MinLen: 4,
		Format: output.FormatCSV,
		Dedup:  pipeline.KeyOffset,
	}
}

// EncodingList resolves the requested encodings; nil means the engine
// default set.
func (o Options) EncodingList() ([]engine.Encoding, error) {
	var out []engine.Encoding
	for _, name := range o.Encodings {
		e, err := engine.ParseEncoding(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// EngineConfig maps the options onto the extraction engine.
func (o Options) EngineConfig() (engine.Config, error) {
	encs, err := o.EncodingList()
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		MinLen:       o.MinLen,
		Encodings:    encs,
		Search:       o.Search,
		Regex:        o.Regex,
		ContextBytes: o.Context,
	}, nil
}

// Finalize runs after flag parsing: it takes the positional input, merges
// the config file under the explicitly set flags and validates the result.
func Finalize(fs *pflag.FlagSet, o *Options, args []string) error {
	if o.ConfigFile != "" {
		if err := ApplyConfigFile(fs, o.ConfigFile); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
	}
	switch len(args) {
	case 0:
		return fmt.Errorf("%w: an input file is required", ErrUsage)
	case 1:
		o.Input = args[0]
	default:
		return fmt.Errorf("%w: exactly one input file expected, got %d", ErrUsage, len(args))
	}
	if err := Validate(*o); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// Validate checks value ranges and names.
func Validate(o Options) error {
	if o.MinLen < 1 {
		return errors.New("--min-len must be ≥ 1")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Context < 0 {
		return errors.New("--context must be ≥ 0")
	}
	if o.Regex && o.Search == "" {
		return errors.New("--regex requires --search")
	}
	if !slices.Contains(output.Formats, o.Format) {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if _, err := pipeline.ParseKey(o.Dedup); err != nil {
		return err
	}
	if _, err := o.EncodingList(); err != nil {
		return err
	}
	return nil
}

// ParseArgs registers the flags on fs, parses argv and finalizes the
// result. The cobra command does the same through its own FlagSet.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	opt := Defaults()
	Register(fs, &opt)
	if err := fs.Parse(argv); err != nil {
		return opt, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if opt.Version {
		return opt, nil
	}
	return opt, Finalize(fs, &opt, fs.Args())
}
