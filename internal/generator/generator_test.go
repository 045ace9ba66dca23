package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsna6ce/html2cheader/internal/config"
)

// setupInput writes content to dir/name and returns a defaulted config
// that converts it into dir/out.h.
func setupInput(t *testing.T, name, content string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(in, []byte(content), 0644))

	cfg := &config.Config{Input: in, Output: filepath.Join(dir, "out.h")}
	config.ApplyDefaults(cfg)
	require.NoError(t, config.Validate(cfg))
	return cfg
}

func readOutput(t *testing.T, cfg *config.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_Example(t *testing.T) {
	cfg := setupInput(t, "a.html", "<p>Hi</p>\nend\n")

	res, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, "a_html", res.Identifier)
	assert.Equal(t, 2, res.Lines)

	want := "#pragma once\n" +
		`String a_html = "<p>Hi</p>\n"` + "\n" +
		`"end\n";`
	got := readOutput(t, cfg)
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), res.Bytes)
}

func TestGenerate_EmptyFile(t *testing.T) {
	cfg := setupInput(t, "empty.html", "")

	res, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Lines)
	assert.Equal(t, "#pragma once\nString empty_html = ;", readOutput(t, cfg))
}

func TestGenerate_QuoteEscaping(t *testing.T) {
	cfg := setupInput(t, "q.txt", "say \"hi\"\n")

	_, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, "#pragma once\n"+`String q_txt = "say \"hi\"\n";`, readOutput(t, cfg))
}

func TestGenerate_CRLFInput(t *testing.T) {
	lf := setupInput(t, "page.html", "<a>\n  <b>\n</a>\n")
	crlf := setupInput(t, "page.html", "<a>\r\n  <b>\r\n</a>\r\n")

	_, err := Generate(lf)
	require.NoError(t, err)
	_, err = Generate(crlf)
	require.NoError(t, err)

	assert.Equal(t, readOutput(t, lf), readOutput(t, crlf))
}

func TestGenerate_LoneCRStaysOnOneLine(t *testing.T) {
	cfg := setupInput(t, "mac.txt", "a\rb\nend\n")

	res, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lines)

	got := readOutput(t, cfg)
	assert.NotContains(t, got, "\r")
	assert.Equal(t, "#pragma once\n"+`String mac_txt = "a\rb\n"`+"\n"+`"end\n";`, got)
}

func TestGenerate_SegmentCount(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100} {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = strings.Repeat("x", i%5)
		}
		cfg := setupInput(t, "n.txt", strings.Join(lines, "\n")+"\n")

		res, err := Generate(cfg)
		require.NoError(t, err)
		assert.Equal(t, n, res.Lines)

		out := strings.Split(readOutput(t, cfg), "\n")
		// One guard line, then one line per literal segment.
		assert.Len(t, out, n+1, "n=%d", n)
	}
}

// unquote reverses the transformation for one output line.
func unquote(t *testing.T, seg string) string {
	t.Helper()
	seg = strings.TrimSuffix(seg, ";")
	require.True(t, strings.HasPrefix(seg, `"`), "segment %q", seg)
	require.True(t, strings.HasSuffix(seg, `\n"`), "segment %q", seg)
	body := seg[1 : len(seg)-3]
	return strings.ReplaceAll(body, `\"`, `"`)
}

func TestGenerate_RoundTrip(t *testing.T) {
	input := []string{
		`<html lang="en">`,
		"  <body class=\"main\">   ",
		"",
		"\tHello, \"world\"!\t",
		"日本語 \"引用\"",
		`""`,
		"end",
	}
	cfg := setupInput(t, "index.html", strings.Join(input, "\n"))

	_, err := Generate(cfg)
	require.NoError(t, err)

	out := strings.Split(readOutput(t, cfg), "\n")
	require.Equal(t, "#pragma once", out[0])
	prefix := "String index_html = "
	require.True(t, strings.HasPrefix(out[1], prefix))
	out[1] = strings.TrimPrefix(out[1], prefix)

	var got []string
	for _, seg := range out[1:] {
		got = append(got, unquote(t, seg))
	}

	var want []string
	for _, line := range input {
		want = append(want, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	assert.Equal(t, want, got)
}

func TestGenerate_Idempotent(t *testing.T) {
	cfg := setupInput(t, "a.html", "<p class=\"x\">Hi</p>\nend\n")

	_, err := Generate(cfg)
	require.NoError(t, err)
	first := readOutput(t, cfg)

	_, err = Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, readOutput(t, cfg))
}

func TestGenerate_Options(t *testing.T) {
	cfg := setupInput(t, "style.css", "a { content: \"\\201C\"; }\n")
	cfg.Header.Type = "const char*"
	cfg.Header.Name = "kStyle"
	cfg.Header.Guard = config.GuardIfndef
	cfg.Header.EscapeBackslashes = true

	res, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, "kStyle", res.Identifier)

	want := "#ifndef KSTYLE_H\n" +
		"#define KSTYLE_H\n" +
		`const char* kStyle = "a { content: \"\\201C\"; }\n";` + "\n" +
		"#endif // KSTYLE_H"
	assert.Equal(t, want, readOutput(t, cfg))
}

func TestGenerate_OverwritesExisting(t *testing.T) {
	cfg := setupInput(t, "a.html", "new\n")
	require.NoError(t, os.WriteFile(cfg.Output, []byte("old content that is longer"), 0644))

	_, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, "#pragma once\n"+`String a_html = "new\n";`, readOutput(t, cfg))
}

func TestGenerate_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Input: filepath.Join(dir, "missing.html"), Output: filepath.Join(dir, "out.h")}
	config.ApplyDefaults(cfg)

	_, err := Generate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read input")

	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "no output expected")
}

func TestGenerate_InvalidUTF8(t *testing.T) {
	cfg := setupInput(t, "bin.dat", "ok\n\xff\xfe\n")

	_, err := Generate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "no output expected")
}

func TestGenerate_UnwritableOutput(t *testing.T) {
	cfg := setupInput(t, "a.html", "x\n")
	cfg.Output = filepath.Join(filepath.Dir(cfg.Input), "no", "such", "dir", "out.h")

	_, err := Generate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write output")
}

func TestGenerate_KeepsOutputMode(t *testing.T) {
	cfg := setupInput(t, "a.html", "x\n")
	require.NoError(t, os.WriteFile(cfg.Output, []byte("old"), 0600))
	require.NoError(t, os.Chmod(cfg.Output, 0600))

	_, err := Generate(cfg)
	require.NoError(t, err)

	fi, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}
