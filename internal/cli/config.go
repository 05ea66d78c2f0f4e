package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var ErrConfigKey = errors.New("unknown config key")

// Keys that only make sense on the command line.
var cliOnly = map[string]bool{"config": true, "version": true, "help": true}

// ApplyConfigFile reads a YAML mapping of long flag names to values and
// sets every flag not given explicitly on the command line:
//
//	min-len: 6
//	encoding: [ascii, gbk]
//	format: jsonl
func ApplyConfigFile(fs *pflag.FlagSet, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return applyValues(fs, raw)
}

func applyValues(fs *pflag.FlagSet, raw map[string]any) error {
	for key, val := range raw {
		f := fs.Lookup(key)
		if f == nil || cliOnly[key] {
			return fmt.Errorf("%w %q", ErrConfigKey, key)
		}
		if f.Changed {
			continue
		}
		if err := fs.Set(key, configString(val)); err != nil {
			return fmt.Errorf("config %s: %w", key, err)
		}
	}
	return nil
}

// configString renders a YAML scalar or sequence the way the flag parser
// expects it; sequences become comma lists.
func configString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
