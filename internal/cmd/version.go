package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/views"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the build version, git commit, build date, and Go runtime details.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		term := views.DetectTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), vp.GetBool("noColor"))
		th := term.Theme()
		w := term.Out

		fmt.Fprintln(w, th.Title.Render("spring-initializr")+"  "+th.Value.Render("v"+Version))
		fmt.Fprintln(w)
		fmt.Fprintln(w, th.Label.Render("VERSION")+"   "+th.Value.Render(Version))
		fmt.Fprintln(w, th.Label.Render("COMMIT")+"    "+th.Value.Render(GitCommit))
		fmt.Fprintln(w, th.Label.Render("BUILT")+"     "+th.Value.Render(BuildDate))
		fmt.Fprintln(w, th.Label.Render("GO")+"        "+th.Value.Render(runtime.Version()))
		fmt.Fprintln(w, th.Label.Render("OS/ARCH")+"   "+th.Value.Render(runtime.GOOS+"/"+runtime.GOARCH))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
