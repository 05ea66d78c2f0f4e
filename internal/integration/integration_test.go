// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memstrap/internal/app"
)

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd_CSV(t *testing.T) {
	fn := write(t, "mem.raw", []byte("\x00\x00hello world\x00\x01\x02pass=hunter2\x00"))

	code, out, errOut := run(t, "-e", "ascii", "--no-progress", fn)
	require.Equal(t, 0, code, errOut)

	want := "FilePath,Offset(Hex),Offset(Dec),Encoding,Length,Content,ContextBefore,ContextAfter\n" +
		fn + ",0x2,2,ASCII,11,hello world,,\n" +
		fn + ",0x10,16,ASCII,12,pass=hunter2,,\n"
	assert.Equal(t, want, out)
	assert.Contains(t, errOut, "scan complete")
}

func TestEndToEnd_OutputFileAndContext(t *testing.T) {
	fn := write(t, "mem.raw", []byte("\xAA\xBBsecret\x00\xDD"))
	dst := filepath.Join(t.TempDir(), "out.csv")

	code, out, errOut := run(t, "-e", "ascii", "-C", "2", "-o", dst, "--no-header", "-q", fn)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)
	assert.Empty(t, errOut, "quiet run logs nothing")

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, fn+",0x2,2,ASCII,6,secret,aabb,00dd\n", string(got))
}

func TestEndToEnd_GBKAndUTF16(t *testing.T) {
	var data []byte
	data = append(data, 0, 0)
	data = append(data, 0xD6, 0xD0, 0xCE, 0xC4, 0xB2, 0xE2, 0xCA, 0xD4) // 中文测试
	data = append(data, 0, 0, 0, 0)
	data = append(data, "H\x00e\x00l\x00l\x00o\x00\x00\x00"...)

	code, out, errOut := run(t, "-e", "gbk,utf16le", "--format", "text", "--no-header", inputFile(t, data))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0x2\t2\tGBK\t8\t中文测试\n0xE\t14\tUTF-16LE\t10\tHello\n", out)
}

func inputFile(t *testing.T, data []byte) string { return write(t, "mem.raw", data) }

func TestEndToEnd_FilterAndNoMatchExitCode(t *testing.T) {
	f := inputFile(t, []byte("\x00alpha-key\x00beta-token\x00gamma\x00"))

	code, out, _ := run(t, "-e", "ascii", "-s", "token", "--no-header", f)
	require.Equal(t, 0, code)
	assert.Equal(t, f+",0xB,11,ASCII,10,beta-token,,\n", out)

	code, out, _ = run(t, "-e", "ascii", "-s", `^[a-z]+$`, "-r", "--no-header", "--format", "text", f)
	require.Equal(t, 0, code)
	assert.Equal(t, "0x16\t22\tASCII\t5\tgamma\n", out)

	code, _, _ = run(t, "-e", "ascii", "-s", "absent", "--no-match-exit-code", "1", f)
	assert.Equal(t, 1, code)
}

func TestEndToEnd_Decompress(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("\x00\x00\x00\x00compressed-secret\x00"))
	require.NoError(t, zw.Close())
	f := write(t, "mem.raw.gz", buf.Bytes())

	code, out, errOut := run(t, "-e", "ascii", "--decompress", "--format", "text", "--no-header", f)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0x4\t4\tASCII\t17\tcompressed-secret\n", out)
	assert.Contains(t, errOut, "compression=gzip")
}

func TestExitCodes(t *testing.T) {
	f := inputFile(t, []byte("some text here"))

	code, _, errOut := run(t, filepath.Join(t.TempDir(), "missing.bin"))
	assert.Equal(t, 3, code)
	assert.Contains(t, errOut, "file does not exist")

	code, _, _ = run(t, t.TempDir())
	assert.Equal(t, 3, code, "directories are not regular files")

	code, _, _ = run(t, "-s", "(", "-r", f)
	assert.Equal(t, 2, code, "bad regex")

	code, _, errOut = run(t, "--bogus", f)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--help")

	code, _, _ = run(t, "-r", f)
	assert.Equal(t, 2, code, "--regex without --search")

	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "memstrap version "))

	code, out, _ = run(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--min-len")
}

func TestCanceledContext_Exit130(t *testing.T) {
	f := inputFile(t, []byte("\x00some text here\x00"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errB bytes.Buffer
	code := app.RunContext(ctx, []string{f}, &out, &errB)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d (%s)", code, errB.String())
	}
	if out.Len() != 0 {
		t.Fatalf("canceled run must not write results, got %q", out.String())
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	if testing.Short() {
		t.Skip("writes a 34 MiB input")
	}
	const size = 34 << 20
	data := make([]byte, size)
	put := func(off int, s string) { copy(data[off:], s) }
	put(100, "first-string")
	put(17<<20-50, "before-the-boundary")  // ends before chunk 1 starts
	put(17<<20+100, "inside-the-overlap")   // seen by both chunks
	put(17<<20+5000, "past-the-overlap")
	put(size-30, "tail-string")
	copy(data[1<<20:], []byte("W\x00i\x00d\x00e\x00!\x00"))
	f := write(t, "big.raw", data)

	runWith := func(threads int) string {
		code, out, errOut := run(t, "--threads", fmt.Sprint(threads), "--format", "jsonl", "--no-progress", f)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errOut)
		}
		return out
	}

	serial := runWith(1)
	parallel := runWith(4)
	assert.Equal(t, serial, parallel)
	// Five ASCII strings plus the UTF-16 text, which also reads as
	// big-endian starting one zero byte earlier.
	assert.Equal(t, 7, strings.Count(serial, "\n"))
	assert.Contains(t, serial, `"content":"inside-the-overlap"`)
}
