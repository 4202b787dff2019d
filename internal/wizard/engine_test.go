package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
)

const testDocument = `{
  "language": {"type": "single-select", "default": "java", "values": [
    {"id": "java", "name": "Java"}, {"id": "kotlin", "name": "Kotlin"}, {"id": "groovy", "name": "Groovy"}]},
  "bootVersion": {"type": "single-select", "default": "3.3.5", "values": [
    {"id": "3.4.0-SNAPSHOT", "name": "3.4.0 (SNAPSHOT)"}, {"id": "3.3.5", "name": "3.3.5"}]},
  "packaging": {"type": "single-select", "default": "jar", "values": [
    {"id": "jar", "name": "Jar"}, {"id": "war", "name": "War"}]},
  "javaVersion": {"type": "single-select", "default": "17", "values": [
    {"id": "21", "name": "21"}, {"id": "17", "name": "17"}]},
  "dependencies": {"type": "hierarchical-multi-select", "values": [
    {"name": "Developer Tools", "values": [
      {"id": "devtools", "name": "Spring Boot DevTools"},
      {"id": "lombok", "name": "Lombok", "description": "Boilerplate reduction"}]},
    {"name": "Web", "values": [
      {"id": "web", "name": "Spring Web"},
      {"id": "graphql", "name": "Spring for GraphQL", "versionRange": "[3.0.0,3.4.0-M1)"}]}]},
  "groupId": {"type": "text", "default": "org.acme"}
}`

type fakeSource struct {
	doc   *metadata.Document
	err   error
	calls int
}

func (f *fakeSource) Fetch(context.Context) (*metadata.Document, error) {
	f.calls++
	return f.doc, f.err
}

func docFrom(t *testing.T, body string) *metadata.Document {
	t.Helper()
	doc, err := metadata.Parse([]byte(body))
	require.NoError(t, err)
	return doc
}

// scriptedPrompter answers from per-step scripts and records every question.
type scriptedPrompter struct {
	selects map[Step]int
	multi   []int
	inputs  map[Step]string
	abortAt Step
	abort   bool

	asked []Question
}

func (s *scriptedPrompter) record(q Question) error {
	s.asked = append(s.asked, q)
	if s.abort && q.Step == s.abortAt {
		return ErrAborted
	}
	return nil
}

func (s *scriptedPrompter) Select(q Question) (int, error) {
	if err := s.record(q); err != nil {
		return 0, err
	}
	if idx, ok := s.selects[q.Step]; ok {
		return idx, nil
	}
	return q.Default, nil
}

func (s *scriptedPrompter) MultiSelect(q Question) ([]int, error) {
	if err := s.record(q); err != nil {
		return nil, err
	}
	return s.multi, nil
}

func (s *scriptedPrompter) Input(q Question) (string, error) {
	if err := s.record(q); err != nil {
		return "", err
	}
	return s.inputs[q.Step], nil
}

func (s *scriptedPrompter) steps() []Step {
	out := make([]Step, len(s.asked))
	for i, q := range s.asked {
		out[i] = q.Step
	}
	return out
}

func (s *scriptedPrompter) question(step Step) (Question, bool) {
	for _, q := range s.asked {
		if q.Step == step {
			return q, true
		}
	}
	return Question{}, false
}

func defaultOptions() Options {
	return Options{
		BuildSystems: []string{"Maven", "Gradle"},
		Defaults: TextDefaults{
			Group:       "com.example",
			Name:        "demo",
			Description: "Demo project for Spring Boot",
			Version:     "0.0.1-SNAPSHOT",
		},
		HideIncompatible: true,
	}
}

func TestEngineRun_FullPass(t *testing.T) {
	src := &fakeSource{doc: docFrom(t, testDocument)}
	p := &scriptedPrompter{
		selects: map[Step]int{StepLanguage: 1, StepBuildSystem: 1},
		multi:   []int{3, 1, 3},
		inputs: map[Step]string{
			StepName:        "inventory",
			StepDescription: `a "quoted" project`,
		},
	}

	res, err := NewEngine(src, p, defaultOptions(), nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Empty(t, res.StepErrors)
	assert.Equal(t, []Step{
		StepLanguage, StepBuildSystem, StepBootVersion, StepGroup, StepName,
		StepDescription, StepVersion, StepPackaging, StepJavaVersion, StepDependencies,
	}, p.steps())

	assert.Equal(t, AnswerSet{
		Language:     "kotlin",
		BuildSystem:  "Gradle",
		BootVersion:  "3.3.5",
		Group:        "org.acme",
		Name:         "inventory",
		Description:  `a "quoted" project`,
		Version:      "0.0.1-SNAPSHOT",
		Packaging:    "jar",
		JavaVersion:  "17",
		Dependencies: []string{"lombok", "graphql"},
	}, res.Answers)
}

func TestEngineRun_DefaultsArePreselected(t *testing.T) {
	p := &scriptedPrompter{}
	_, err := NewEngine(&fakeSource{doc: docFrom(t, testDocument)}, p, defaultOptions(), nil).Run(context.Background())
	require.NoError(t, err)

	q, _ := p.question(StepBootVersion)
	assert.Equal(t, []string{"3.4.0 (SNAPSHOT)", "3.3.5"}, q.Options)
	assert.Equal(t, 1, q.Default)

	q, _ = p.question(StepJavaVersion)
	assert.Equal(t, 1, q.Default)

	q, _ = p.question(StepGroup)
	assert.Equal(t, "org.acme", q.DefaultText, "server text default wins over config")

	q, _ = p.question(StepName)
	assert.Equal(t, "demo", q.DefaultText)
}

func TestEngineRun_UnmatchedDefaultUsesFirstEntry(t *testing.T) {
	body := `{
		"language": {"default": "scala", "values": [{"id": "java", "name": "Java"}, {"id": "kotlin", "name": "Kotlin"}]},
		"bootVersion": {"values": [{"id": "3.3.5", "name": "3.3.5"}]},
		"packaging": {"values": [{"id": "jar", "name": "Jar"}]},
		"javaVersion": {"values": [{"id": "17", "name": "17"}]},
		"dependencies": {"values": []}
	}`
	p := &scriptedPrompter{}
	res, err := NewEngine(&fakeSource{doc: docFrom(t, body)}, p, defaultOptions(), nil).Run(context.Background())
	require.NoError(t, err)

	q, _ := p.question(StepLanguage)
	assert.Equal(t, 0, q.Default)
	assert.Equal(t, "java", res.Answers.Language)
	assert.Empty(t, res.StepErrors)
}

func TestEngineRun_FailedCategorySkipsOnlyItsStep(t *testing.T) {
	body := `{
		"language": {"default": "java", "values": [{"id": "java", "name": "Java"}]},
		"bootVersion": {"default": "3.3.5", "values": [{"id": "3.3.5", "name": "3.3.5"}]},
		"packaging": {"values": "broken"},
		"javaVersion": {"default": "17", "values": [{"id": "17", "name": "17"}]},
		"dependencies": {"values": [{"name": "Web", "values": [{"id": "web", "name": "Spring Web"}]}]}
	}`
	p := &scriptedPrompter{multi: []int{0}}
	res, err := NewEngine(&fakeSource{doc: docFrom(t, body)}, p, defaultOptions(), nil).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.StepErrors, 1)
	assert.Equal(t, StepPackaging, res.StepErrors[0].Step)
	var se *metadata.SchemaError
	assert.ErrorAs(t, res.StepErrors[0], &se)

	assert.Empty(t, res.Answers.Packaging)
	assert.Equal(t, "17", res.Answers.JavaVersion)
	assert.Equal(t, []string{"web"}, res.Answers.Dependencies)
	assert.NotContains(t, p.steps(), StepPackaging)
	assert.Contains(t, p.steps(), StepJavaVersion)
	assert.Contains(t, p.steps(), StepDependencies)
}

func TestEngineRun_FetchErrorStopsBeforePrompting(t *testing.T) {
	fetchErr := &metadata.FetchError{URL: "https://start.spring.io", StatusCode: 503}
	p := &scriptedPrompter{}

	res, err := NewEngine(&fakeSource{err: fetchErr}, p, defaultOptions(), nil).Run(context.Background())
	assert.Nil(t, res)
	var fe *metadata.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Empty(t, p.asked)
}

func TestEngineRun_AbortEndsPass(t *testing.T) {
	p := &scriptedPrompter{abort: true, abortAt: StepDescription}
	res, err := NewEngine(&fakeSource{doc: docFrom(t, testDocument)}, p, defaultOptions(), nil).Run(context.Background())
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrAborted))
	assert.Equal(t, StepDescription, p.asked[len(p.asked)-1].Step)
}

func TestEngineRun_FreeTextEmptyWithoutDefault(t *testing.T) {
	opts := defaultOptions()
	opts.Defaults.Description = ""
	p := &scriptedPrompter{inputs: map[Step]string{StepName: ""}}

	res, err := NewEngine(&fakeSource{doc: docFrom(t, testDocument)}, p, opts, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", res.Answers.Description)
	assert.Equal(t, "demo", res.Answers.Name)
}

func TestEngineRun_IncompatibleDependenciesHidden(t *testing.T) {
	p := &scriptedPrompter{selects: map[Step]int{StepBootVersion: 0}}
	_, err := NewEngine(&fakeSource{doc: docFrom(t, testDocument)}, p, defaultOptions(), nil).Run(context.Background())
	require.NoError(t, err)

	q, ok := p.question(StepDependencies)
	require.True(t, ok)
	assert.Equal(t, []string{"Spring Boot DevTools", "Lombok", "Spring Web"}, q.Options)
	assert.Equal(t, "Boilerplate reduction", q.Hints[1])

	opts := defaultOptions()
	opts.HideIncompatible = false
	p = &scriptedPrompter{selects: map[Step]int{StepBootVersion: 0}}
	_, err = NewEngine(&fakeSource{doc: docFrom(t, testDocument)}, p, opts, nil).Run(context.Background())
	require.NoError(t, err)
	q, _ = p.question(StepDependencies)
	assert.Len(t, q.Options, 4)
}

func TestEngineRun_NoDependenciesOffered(t *testing.T) {
	body := `{
		"language": {"values": [{"id": "java", "name": "Java"}]},
		"bootVersion": {"values": [{"id": "3.3.5", "name": "3.3.5"}]},
		"packaging": {"values": [{"id": "jar", "name": "Jar"}]},
		"javaVersion": {"values": [{"id": "17", "name": "17"}]},
		"dependencies": {"values": [{"name": "Empty"}]}
	}`
	p := &scriptedPrompter{}
	res, err := NewEngine(&fakeSource{doc: docFrom(t, body)}, p, defaultOptions(), nil).Run(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, p.steps(), StepDependencies)
	assert.NotNil(t, res.Answers.Dependencies)
	assert.Empty(t, res.Answers.Dependencies)
}

func TestEngineRun_NoBuildSystems(t *testing.T) {
	opts := defaultOptions()
	opts.BuildSystems = nil
	res, err := NewEngine(&fakeSource{doc: docFrom(t, testDocument)}, &scriptedPrompter{}, opts, nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.StepErrors, 1)
	assert.Equal(t, StepBuildSystem, res.StepErrors[0].Step)
	assert.Empty(t, res.Answers.BuildSystem)
}

func TestEngineRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEngine(&fakeSource{doc: docFrom(t, testDocument)}, &scriptedPrompter{}, defaultOptions(), nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranscribe(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"b", "d"}, Transcribe(ids, []int{3, 1, 3}))
	assert.Equal(t, []string{}, Transcribe(ids, nil))
	assert.Equal(t, []string{"a"}, Transcribe(ids, []int{-1, 0, 9}))
}

func TestStepLabels(t *testing.T) {
	assert.Len(t, StepLabels(), StepCount)
	assert.Equal(t, "java version", StepJavaVersion.String())
	assert.Equal(t, "unknown", Step(42).String())
}
