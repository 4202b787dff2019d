package command

import (
	"strings"

	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// Build maps a completed AnswerSet onto the scaffolding tool's arguments:
// one "--flag=value" element per flag followed by the project name as the
// destination directory. Values are never split or shell-escaped; each one
// travels as a single argv element, so spaces and quotes survive untouched.
// Build is pure and deterministic.
func Build(a wizard.AnswerSet) []string {
	build := strings.ToLower(a.BuildSystem)

	return []string{
		flag("name", a.Name),
		flag("groupId", a.Group),
		flag("artifactId", a.Name),
		flag("version", a.Version),
		flag("description", a.Description),
		flag("package-name", PackageName(a.Group, a.Name)),
		flag("dependencies", strings.Join(a.Dependencies, ",")),
		flag("build", build),
		flag("type", build+"-project"),
		flag("java-version", a.JavaVersion),
		flag("language", strings.ToLower(a.Language)),
		flag("boot-version", a.BootVersion),
		flag("packaging", strings.ToLower(a.Packaging)),
		a.Name,
	}
}

// PackageName joins the lower-cased group and the project name.
func PackageName(group, name string) string {
	return strings.ToLower(group) + "." + name
}

func flag(name, value string) string {
	return "--" + name + "=" + value
}

// Argv prefixes args with the tool command and its leading arguments,
// producing the full vector handed to process creation.
func Argv(program string, leading []string, args []string) []string {
	argv := make([]string, 0, 1+len(leading)+len(args))
	argv = append(argv, program)
	argv = append(argv, leading...)
	return append(argv, args...)
}
