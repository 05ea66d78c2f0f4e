// internal/cli/options_test.go
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memstrap/internal/engine"
)

func newFS() *pflag.FlagSet { return pflag.NewFlagSet("test", pflag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "mem.raw")
	if o.Input != "mem.raw" || o.MinLen != 4 || o.Format != "csv" || o.Dedup != "offset" {
		t.Errorf("bad defaults %+v", o)
	}
	encs, err := o.EncodingList()
	require.NoError(t, err)
	assert.Nil(t, encs)
}

func TestShortFlags(t *testing.T) {
	o := mustParse(t, "-n", "6", "-j", "3", "-s", "pass", "-r", "-C", "16", "-o", "out.csv", "mem.raw")
	assert.Equal(t, 6, o.MinLen)
	assert.Equal(t, 3, o.Threads)
	assert.Equal(t, "pass", o.Search)
	assert.True(t, o.Regex)
	assert.Equal(t, 16, o.Context)
	assert.Equal(t, "out.csv", o.Output)
}

func TestEncodings_RepeatableAndCommaList(t *testing.T) {
	o := mustParse(t, "-e", "ascii", "--encoding", "utf16le,gbk", "mem.raw")
	encs, err := o.EncodingList()
	require.NoError(t, err)
	assert.Equal(t, []engine.Encoding{engine.ASCII, engine.UTF16LE, engine.GBK}, encs)
}

func TestValidationErrors(t *testing.T) {
	cases := map[string][]string{
		"no input":         {},
		"two inputs":       {"a", "b"},
		"min-len zero":     {"-n", "0", "a"},
		"negative threads": {"-j", "-1", "a"},
		"negative context": {"-C", "-2", "a"},
		"regex w/o search": {"-r", "a"},
		"bad format":       {"--format", "xml", "a"},
		"bad dedup":        {"--dedup", "content", "a"},
		"bad encoding":     {"-e", "ebcdic", "a"},
		"unknown flag":     {"--nope", "a"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage), "want ErrUsage, got %v", err)
		})
	}
}

func TestUnknownEncodingIsClassified(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-e", "latin1", "a"})
	assert.ErrorIs(t, err, engine.ErrUnknownEncoding)
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	require.NoError(t, err)
	assert.True(t, o.Version)
}

func TestEngineConfig(t *testing.T) {
	o := mustParse(t, "-n", "5", "-e", "gbk", "-s", "x", "-C", "2", "a")
	cfg, err := o.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, engine.Config{MinLen: 5, Encodings: []engine.Encoding{engine.GBK}, Search: "x", ContextBytes: 2}, cfg)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "memstrap.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestConfigFile_FlagsWin(t *testing.T) {
	cfg := writeConfig(t, "min-len: 8\nformat: jsonl\nencoding: [ascii, gbk]\nno-progress: true\n")
	o := mustParse(t, "--config", cfg, "-n", "5", "mem.raw")

	assert.Equal(t, 5, o.MinLen, "explicit flag wins")
	assert.Equal(t, "jsonl", o.Format)
	assert.True(t, o.NoProgress)
	assert.Equal(t, []string{"ascii", "gbk"}, o.Encodings)
}

func TestConfigFile_Errors(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--config", writeConfig(t, "colour: red\n"), "a"})
	assert.ErrorIs(t, err, ErrConfigKey)

	_, err = ParseArgs(newFS(), []string{"--config", writeConfig(t, "version: true\n"), "a"})
	assert.ErrorIs(t, err, ErrConfigKey)

	_, err = ParseArgs(newFS(), []string{"--config", writeConfig(t, "min-len: [\n"), "a"})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = ParseArgs(newFS(), []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "a"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFile_InvalidValue(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--config", writeConfig(t, "threads: many\n"), "a"})
	assert.ErrorIs(t, err, ErrUsage)
}
