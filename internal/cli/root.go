package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "routejump",
		Short: "Jump from Django {% url %} tags to their urls.py declarations",
		Long: `Routejump reads a template line, extracts the route name from its
{% url 'namespace:name' %} tag and finds the urls.py line that declares it.

Every lookup rescans the project; nothing is indexed or cached.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("root", "", "Project root (default: current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	jumpCmd := &cobra.Command{
		Use:   "jump [line text]",
		Short: "Resolve the url tag on a template line to its declaration",
		Example: `  routejump jump --file templates/blog/post_list.html --line 5
  routejump jump "{% url 'blog:post_detail' post.pk %}" --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: RunJump,
	}
	jumpCmd.Flags().String("text", "", "Template line text containing the url tag")
	jumpCmd.Flags().StringP("file", "f", "", "Template file containing the url tag")
	jumpCmd.Flags().IntP("line", "l", 0, "1-based line number in --file")
	jumpCmd.Flags().Bool("json", false, "Print machine-readable location")
	jumpCmd.Flags().String("format", "", "Output format: text|json|yaml (default from config)")

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check which urls.py files would be searched and whether they parse",
		RunE:  RunDoctor,
	}
	doctorCmd.Flags().Bool("json", false, "Print machine-readable doctor output")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the goto_url tool over MCP stdio",
		Args:  cobra.NoArgs,
		RunE:  RunServe,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "routejump %s\n", version)
		},
	}

	rootCmd.AddCommand(
		jumpCmd,
		doctorCmd,
		serveCmd,
		versionCmd,
	)

	return rootCmd
}
