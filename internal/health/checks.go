package health

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlbertLnz/spring-initializr-cli/internal/config"
	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
)

// versionTimeout bounds each "--version" probe.
const versionTimeout = 10 * time.Second

// registerChecks registers the checks in display order.
func (c *Checker) registerChecks() {
	c.add("tool", CategorySystem, c.checkTool)
	c.add("tool-version", CategorySystem, c.checkToolVersion)
	c.add("java", CategorySystem, c.checkJava)

	c.add("metadata", CategoryNetwork, c.checkMetadata)
	c.add("metadata-shape", CategoryNetwork, c.checkMetadataShape)

	c.add("config", CategoryConfig, c.checkConfig)
}

// ---------------------------------------------------------------------------
// System checks
// ---------------------------------------------------------------------------

func (c *Checker) checkTool(ctx context.Context) CheckResult {
	path, err := c.lookPath(c.cfg.Tool.Command)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s not found on PATH", c.cfg.Tool.Command)}
	}
	return CheckResult{Status: StatusPass, Message: path}
}

func (c *Checker) checkToolVersion(ctx context.Context) CheckResult {
	if _, err := c.lookPath(c.cfg.Tool.Command); err != nil {
		return CheckResult{Status: StatusWarn, Message: "skipped, tool not installed"}
	}

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := c.output(ctx, c.cfg.Tool.Command, "--version")
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%s --version failed: %v", c.cfg.Tool.Command, err)}
	}
	line := firstLine(out)
	if line == "" {
		return CheckResult{Status: StatusWarn, Message: "empty version output"}
	}
	return CheckResult{Status: StatusPass, Message: line}
}

// checkJava only warns: the generator downloads a project archive and does
// not need a JDK, but building the result does.
func (c *Checker) checkJava(ctx context.Context) CheckResult {
	if _, err := c.lookPath("java"); err != nil {
		return CheckResult{Status: StatusWarn, Message: "java not found; generated projects cannot be built"}
	}

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	// java -version prints to stderr.
	out, err := c.output(ctx, "java", "-version")
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("java -version failed: %v", err)}
	}
	return CheckResult{Status: StatusPass, Message: firstLine(out)}
}

// ---------------------------------------------------------------------------
// Network checks
// ---------------------------------------------------------------------------

func (c *Checker) fetch(ctx context.Context) (*metadata.Document, error) {
	if !c.fetched {
		c.doc, c.fetchErr = c.source.Fetch(ctx)
		c.fetched = true
	}
	return c.doc, c.fetchErr
}

func (c *Checker) checkMetadata(ctx context.Context) CheckResult {
	doc, err := c.fetch(ctx)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s (%d categories)", c.cfg.Metadata.URL, len(doc.Keys()))}
}

func (c *Checker) checkMetadataShape(ctx context.Context) CheckResult {
	doc, err := c.fetch(ctx)
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: "skipped, metadata unavailable"}
	}

	var broken []string
	for _, key := range []string{metadata.KeyLanguage, metadata.KeyBootVersion, metadata.KeyPackaging, metadata.KeyJavaVersion} {
		if _, err := metadata.Resolve(doc, key); err != nil {
			broken = append(broken, key)
		}
	}
	deps, err := metadata.ResolveDependencies(doc)
	if err != nil {
		broken = append(broken, metadata.KeyDependencies)
	}

	if len(broken) > 0 {
		return CheckResult{Status: StatusFail, Message: "unusable categories: " + strings.Join(broken, ", ")}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d dependencies offered", len(deps))}
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) checkConfig(ctx context.Context) CheckResult {
	issues := config.Validate(&c.cfg)
	if len(issues) == 0 {
		return CheckResult{Status: StatusPass, Message: "valid"}
	}
	msgs := make([]string, len(issues))
	for i, v := range issues {
		msgs[i] = v.Error()
	}
	return CheckResult{Status: StatusFail, Message: strings.Join(msgs, "; ")}
}

// firstLine returns the first non-empty line of out, trimmed.
func firstLine(out []byte) string {
	sc := bufio.NewScanner(strings.NewReader(string(out)))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line
		}
	}
	return ""
}
