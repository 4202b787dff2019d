package views

import (
	"fmt"
	"io"
)

// Banner prints the application title and the metadata endpoint in use.
func Banner(w io.Writer, term Terminal, endpoint string) {
	theme := term.Theme()
	title := theme.Title.Render("Spring Initializr CLI")
	sub := theme.Label.Render("metadata: ") + theme.Subtitle.Render(endpoint)
	fmt.Fprintln(w, theme.Border.Render(title+"\n"+sub))
}
