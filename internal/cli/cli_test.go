package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anujrohit1/pubfilter/internal/domain"
)

type result struct {
	code   int
	stdout string
	body   []byte
	calls  int
}

// runWith writes input (unless nil) to a temp example.json, serves respBody
// with status, and runs the root command against both.
func runWith(t *testing.T, input *string, status int, respBody string, args ...string) result {
	t.Helper()

	dir := t.TempDir()
	source := filepath.Join(dir, SourceFile)
	if input != nil {
		require.NoError(t, os.WriteFile(source, []byte(*input), 0o644))
	}

	res := result{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res.calls++
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		res.body = b
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd(target{source: source, url: srv.URL + "/service/generate"})
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	res.code = run(context.Background(), cmd, args)
	res.stdout = out.String()
	return res
}

func str(s string) *string { return &s }

func TestRun_PrintsValidKeys(t *testing.T) {
	res := runWith(t, str(`[{"id":1,"private":false},{"id":2,"private":true}]`),
		http.StatusOK, `{"x": {"valid": true}, "y": {"valid": false}, "z": {}}`)

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "x\n", res.stdout)
	assert.JSONEq(t, `[{"id":1,"private":false}]`, string(res.body))
}

func TestRun_KeysInResponseOrder(t *testing.T) {
	res := runWith(t, str(`{}`), http.StatusOK, `{"b": {"valid": true}, "a": {"valid": true}, "c": {"valid": "true"}}`)

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "b\na\n", res.stdout)
	assert.Equal(t, `{}`, string(res.body))
}

func TestRun_NonObjectResponse(t *testing.T) {
	res := runWith(t, str(`[]`), http.StatusOK, `[1,2,3]`)

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "Response JSON is not an object/dict.\n", res.stdout)
}

func TestRun_MissingFile(t *testing.T) {
	res := runWith(t, nil, http.StatusOK, `{}`)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "File ")
	assert.Contains(t, res.stdout, SourceFile)
	assert.Contains(t, res.stdout, "not found.")
	assert.Zero(t, res.calls)
}

func TestRun_InvalidJSON(t *testing.T) {
	res := runWith(t, str(`{"a":}`), http.StatusOK, `{}`)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Invalid JSON in ")
	assert.Contains(t, res.stdout, SourceFile)
	assert.Contains(t, res.stdout, "invalid character '}'")
	assert.Zero(t, res.calls)
}

func TestRun_ScalarRoot(t *testing.T) {
	res := runWith(t, str(`42`), http.StatusOK, `{}`)

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "JSON root structure is not a list or dict.\n", res.stdout)
	assert.Zero(t, res.calls)
}

func TestRun_ServerError(t *testing.T) {
	res := runWith(t, str(`[]`), http.StatusInternalServerError, `boom`)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Failed to make POST request")
	assert.Contains(t, res.stdout, "500 Server Error")
	assert.Equal(t, 1, res.calls)
}

func TestRun_InvalidResponseJSON(t *testing.T) {
	res := runWith(t, str(`[]`), http.StatusOK, `<html></html>`)

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Response is not valid JSON.\n", res.stdout)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "pubfilter.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pubfilter:\n  http:\n    max_response_bytes: -1\n"), 0o644))

	res := runWith(t, str(`[]`), http.StatusOK, `{}`, "--config", cfgPath)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Invalid config in "+cfgPath)
	assert.Zero(t, res.calls)
}

func TestRun_LogFileFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")

	res := runWith(t, str(`[{"private":false}]`), http.StatusOK, `{}`, "--log-file", logPath)
	require.Equal(t, 0, res.code)

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"pipeline.submitted"`)
	assert.Contains(t, string(b), `"kept":1`)
}

func TestRun_UnknownFlag(t *testing.T) {
	res := runWith(t, str(`[]`), http.StatusOK, `{}`, "--nope")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "unknown flag")
	assert.Zero(t, res.calls)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(defaultTarget())
	cmd.SetOut(&out)

	code := run(context.Background(), cmd, []string{"version"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "pubfilter dev (commit=none, date=unknown)\n", out.String())
}

func TestDefaultTarget(t *testing.T) {
	tg := defaultTarget()
	assert.Equal(t, "example.json", tg.source)
	assert.Equal(t, "https://example.com/service/generate", tg.url)
}

func TestDiagnostic(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&domain.OpError{Kind: domain.KindFileNotFound, Path: "example.json", Err: os.ErrNotExist}, "File example.json not found."},
		{&domain.OpError{Kind: domain.KindReadFailed, Path: "example.json", Err: errors.New("permission denied")}, "Failed to read example.json: permission denied"},
		{&domain.OpError{Kind: domain.KindInvalidJSON, Path: "example.json", Err: errors.New("bad")}, "Invalid JSON in example.json: bad"},
		{&domain.OpError{Kind: domain.KindInvalidRootShape}, "JSON root structure is not a list or dict."},
		{&domain.OpError{Kind: domain.KindRequestFailed, Err: errors.New("refused")}, "Failed to make POST request: refused"},
		{&domain.OpError{Kind: domain.KindInvalidResponseJSON}, "Response is not valid JSON."},
		{&domain.OpError{Kind: domain.KindUnexpectedResponseShape}, "Response JSON is not an object/dict."},
		{errors.New("plain"), "plain"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, diagnostic(c.err))
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, domain.Report{Shape: domain.ReportObject, Keys: []string{"k1", "k2"}})
	assert.Equal(t, "k1\nk2\n", buf.String())

	buf.Reset()
	printReport(&buf, domain.Report{Shape: domain.ReportObject})
	assert.Empty(t, buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 0, exitCode(&domain.OpError{Op: "report.shape", Kind: domain.KindUnexpectedResponseShape}))
	assert.Equal(t, 1, exitCode(&domain.OpError{Kind: domain.KindRequestFailed}))
	assert.Equal(t, 1, exitCode(errors.New("unknown flag: --nope")))
}
