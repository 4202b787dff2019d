package health

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbertLnz/spring-initializr-cli/internal/config"
	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
)

type stubSource struct {
	doc   *metadata.Document
	err   error
	calls int
}

func (s *stubSource) Fetch(context.Context) (*metadata.Document, error) {
	s.calls++
	return s.doc, s.err
}

func fixture(t *testing.T) *metadata.Document {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("..", "metadata", "testdata", "metadata.json"))
	require.NoError(t, err)
	doc, err := metadata.Parse(body)
	require.NoError(t, err)
	return doc
}

func validConfig() config.Config {
	return config.Config{
		Metadata:     config.MetadataConfig{URL: "https://start.spring.io"},
		Tool:         config.ToolConfig{Command: "spring", Args: []string{"init"}},
		BuildSystems: []string{"Maven", "Gradle"},
	}
}

// newTestChecker wires fake PATH lookups and process output.
func newTestChecker(cfg config.Config, src *stubSource, installed map[string]string) *Checker {
	c := NewChecker(cfg, src)
	c.lookPath = func(file string) (string, error) {
		if _, ok := installed[file]; ok {
			return "/usr/local/bin/" + file, nil
		}
		return "", exec.ErrNotFound
	}
	c.output = func(_ context.Context, name string, _ ...string) ([]byte, error) {
		return []byte(installed[name]), nil
	}
	return c
}

func byName(r *Report) map[string]CheckResult {
	out := make(map[string]CheckResult, len(r.Results))
	for _, res := range r.Results {
		out[res.Name] = res
	}
	return out
}

func TestRunAll_Healthy(t *testing.T) {
	src := &stubSource{doc: fixture(t)}
	c := newTestChecker(validConfig(), src, map[string]string{
		"spring": "\nSpring CLI v3.3.5\n",
		"java":   "openjdk version \"21.0.2\" 2024-01-16\nOpenJDK Runtime Environment",
	})

	r := c.RunAll(context.Background())
	require.Equal(t, 6, r.Total)
	assert.True(t, r.Healthy)
	assert.Equal(t, 6, r.Passed)
	assert.Equal(t, 1, src.calls, "metadata is fetched once for both network checks")

	res := byName(r)
	assert.Equal(t, "/usr/local/bin/spring", res["tool"].Message)
	assert.Equal(t, "Spring CLI v3.3.5", res["tool-version"].Message)
	assert.Equal(t, `openjdk version "21.0.2" 2024-01-16`, res["java"].Message)
	assert.Equal(t, "4 dependencies offered", res["metadata-shape"].Message)
	assert.Equal(t, CategoryNetwork, res["metadata"].Category)
}

func TestRunAll_ToolMissing(t *testing.T) {
	c := newTestChecker(validConfig(), &stubSource{doc: fixture(t)}, map[string]string{})

	r := c.RunAll(context.Background())
	assert.False(t, r.Healthy)

	res := byName(r)
	assert.Equal(t, StatusFail, res["tool"].Status)
	assert.Equal(t, "spring not found on PATH", res["tool"].Message)
	assert.Equal(t, StatusWarn, res["tool-version"].Status)
	assert.Equal(t, StatusWarn, res["java"].Status)
}

func TestRunAll_MetadataUnavailable(t *testing.T) {
	src := &stubSource{err: &metadata.FetchError{URL: "https://start.spring.io", StatusCode: 503}}
	c := newTestChecker(validConfig(), src, map[string]string{"spring": "v", "java": "v"})

	res := byName(c.RunCategory(context.Background(), CategoryNetwork))
	require.Len(t, res, 2)
	assert.Equal(t, StatusFail, res["metadata"].Status)
	assert.Contains(t, res["metadata"].Message, "503")
	assert.Equal(t, StatusWarn, res["metadata-shape"].Status)
}

func TestRunCategory_BrokenShape(t *testing.T) {
	doc, err := metadata.Parse([]byte(`{"language":{},"bootVersion":{"values":[{"id":"3.3.5"}]},"packaging":{"values":[{"id":"jar"}]},"javaVersion":{"values":[{"id":"17"}]},"dependencies":{"values":[]}}`))
	require.NoError(t, err)
	c := newTestChecker(validConfig(), &stubSource{doc: doc}, nil)

	res := byName(c.RunCategory(context.Background(), CategoryNetwork))
	assert.Equal(t, StatusPass, res["metadata"].Status)
	assert.Equal(t, StatusFail, res["metadata-shape"].Status)
	assert.Equal(t, "unusable categories: language", res["metadata-shape"].Message)
}

func TestRunCategory_InvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Metadata.URL = "ftp://example.com"
	cfg.BuildSystems = nil
	c := newTestChecker(cfg, &stubSource{}, nil)

	r := c.RunCategory(context.Background(), CategoryConfig)
	require.Len(t, r.Results, 1)
	assert.False(t, r.Healthy)
	assert.Contains(t, r.Results[0].Message, "metadata.url")
	assert.Contains(t, r.Results[0].Message, "buildSystems")
}

func TestRunAll_CancelledContext(t *testing.T) {
	src := &stubSource{doc: fixture(t)}
	c := newTestChecker(validConfig(), src, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := c.RunAll(ctx)
	assert.Equal(t, r.Total, r.Failed)
	assert.Zero(t, src.calls)
	for _, res := range r.Results {
		assert.Equal(t, "context cancelled", res.Message)
	}
}

func TestToolVersionFailure(t *testing.T) {
	c := newTestChecker(validConfig(), &stubSource{}, map[string]string{"spring": ""})
	c.output = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}

	res := byName(c.RunCategory(context.Background(), CategorySystem))
	assert.Equal(t, StatusWarn, res["tool-version"].Status)
	assert.Contains(t, res["tool-version"].Message, "exit status 1")
}

func TestFormatReport(t *testing.T) {
	r := buildReport([]CheckResult{
		{Name: "tool", Category: CategorySystem, Status: StatusPass, Message: "/usr/bin/spring"},
		{Name: "metadata", Category: CategoryNetwork, Status: StatusFail, Message: "connection refused", Duration: 1500 * time.Millisecond},
		{Name: "config", Category: CategoryConfig, Status: StatusWarn, Message: "odd"},
	}, 2*time.Second)

	out := FormatReport(r, styles.PlainTheme())
	assert.Contains(t, out, "Spring Initializr Doctor")
	assert.Contains(t, out, "Metadata Service")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "1/3 passed, 1 warning(s), 1 failed")
	assert.Contains(t, out, "UNHEALTHY")
	assert.True(t, strings.Index(out, "System") < strings.Index(out, "Configuration"))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "x", StatusFail.Symbol())
	assert.Equal(t, "unknown", Status(9).String())
}
