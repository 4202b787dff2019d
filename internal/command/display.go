package command

import (
	"regexp"
	"strings"
)

var safeToken = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// Display renders argv for humans, single-quoting elements a POSIX shell
// would split or interpret. It is for printing only; execution always uses
// the argv slice itself.
func Display(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = quote(a)
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if safeToken.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
