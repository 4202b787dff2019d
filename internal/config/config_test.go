package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://start.spring.io", cfg.Metadata.URL)
	assert.Equal(t, time.Duration(0), cfg.Metadata.Timeout)
	assert.Equal(t, "spring", cfg.Tool.Command)
	assert.Equal(t, []string{"init"}, cfg.Tool.Args)
	assert.Equal(t, "com.example", cfg.Defaults.Group)
	assert.Equal(t, "demo", cfg.Defaults.Name)
	assert.Equal(t, []string{"Maven", "Gradle"}, cfg.BuildSystems)
	assert.False(t, cfg.Loop)
	assert.True(t, cfg.HideIncompatible)
	assert.Empty(t, Validate(cfg))
}

func TestReadIn_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "initializr.yaml")
	body := "metadata:\n  url: http://localhost:8080\n  timeout: 5s\nloop: true\ntool:\n  command: /opt/spring/bin/spring\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	v := viper.New()
	Prepare(v, path)
	found, err := ReadIn(v)
	require.NoError(t, err)
	assert.True(t, found)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Metadata.URL)
	assert.Equal(t, 5*time.Second, cfg.Metadata.Timeout)
	assert.True(t, cfg.Loop)
	assert.Equal(t, "/opt/spring/bin/spring", cfg.Tool.Command)
	assert.Equal(t, []string{"init"}, cfg.Tool.Args)
}

func TestReadIn_ExplicitMissingFile(t *testing.T) {
	v := viper.New()
	Prepare(v, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := ReadIn(v)
	assert.Error(t, err)
}

func TestPrepare_EnvOverride(t *testing.T) {
	t.Setenv("INITIALIZR_METADATA_URL", "https://initializr.internal.example")

	v := viper.New()
	Prepare(v, filepath.Join(t.TempDir(), "unused.yaml"))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://initializr.internal.example", cfg.Metadata.URL)
}

func TestValidate_ReportsEveryIssue(t *testing.T) {
	cfg := &Config{
		Metadata:     MetadataConfig{URL: "ftp://example.com", Timeout: -time.Second},
		Tool:         ToolConfig{Command: " "},
		BuildSystems: []string{"Maven", ""},
	}

	errs := Validate(cfg)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"metadata.url", "metadata.timeout", "tool.command", "buildSystems[1]"}, fields)
}

func TestValidate_EmptyBuildSystems(t *testing.T) {
	cfg := &Config{
		Metadata: MetadataConfig{URL: "https://start.spring.io"},
		Tool:     ToolConfig{Command: "spring"},
	}
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "buildSystems: at least one build system is required", errs[0].Error())
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore(&Config{Loop: true})
	snap := s.Get()
	snap.Loop = false
	assert.True(t, s.Get().Loop)

	s.Set(&Config{DryRun: true})
	assert.True(t, s.Get().DryRun)
	assert.False(t, s.Get().Loop)
}

func TestStore_ReloadCoalescesBursts(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("loop", true)

	s := NewStore(&Config{})
	s.debounce = 20 * time.Millisecond

	reloads := make(chan fsnotify.Event, 4)
	handle := s.changed(v, func(e fsnotify.Event, err error) {
		assert.NoError(t, err)
		reloads <- e
	})

	for _, name := range []string{"a.yaml", "b.yaml", "c.yaml"} {
		handle(fsnotify.Event{Name: name, Op: fsnotify.Write})
	}

	select {
	case e := <-reloads:
		assert.Equal(t, "c.yaml", e.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload")
	}
	assert.True(t, s.Get().Loop)

	select {
	case e := <-reloads:
		t.Fatalf("unexpected second reload for %s", e.Name)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStore_InvalidReloadKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "initializr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tool:\n  command: /opt/spring/bin/spring\n"), 0644))

	v := viper.New()
	Prepare(v, path)
	_, err := ReadIn(v)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	s := NewStore(cfg)

	bad := "metadata:\n  url: ftp://x\ntool:\n  command: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))
	require.NoError(t, v.ReadInConfig())

	var got error
	calls := 0
	s.reload(v, fsnotify.Event{Name: path, Op: fsnotify.Write}, func(e fsnotify.Event, err error) {
		calls++
		got = err
	})

	assert.Equal(t, 1, calls)
	require.Error(t, got)
	assert.ErrorContains(t, got, "tool.command")
	assert.ErrorContains(t, got, "metadata.url")
	assert.Equal(t, "/opt/spring/bin/spring", s.Get().Tool.Command)
	assert.Equal(t, "https://start.spring.io", s.Get().Metadata.URL)

	good := "tool:\n  command: spring3\n"
	require.NoError(t, os.WriteFile(path, []byte(good), 0644))
	require.NoError(t, v.ReadInConfig())

	s.reload(v, fsnotify.Event{Name: path, Op: fsnotify.Write}, func(e fsnotify.Event, err error) {
		got = err
	})
	assert.NoError(t, got)
	assert.Equal(t, "spring3", s.Get().Tool.Command)
}

func TestJoinIssues(t *testing.T) {
	assert.NoError(t, JoinIssues(nil))

	err := JoinIssues([]ValidationError{
		{Field: "tool.command", Message: "required field is empty"},
		{Field: "buildSystems", Message: "at least one build system is required"},
	})
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tool.command", ve.Field)
	assert.ErrorContains(t, err, "buildSystems")
}
