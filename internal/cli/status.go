package cli

import (
	"fmt"

	"github.com/agentx-labs/reslink/internal/linker"
	"github.com/agentx-labs/reslink/internal/platform"
	"github.com/agentx-labs/reslink/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status <root_dir> <build_dir>",
	Short: "Show the state of the resource link",
	Long: `Report what occupies <build_dir>/res without changing anything:

  linked    symlink to <root_dir>/res
  dangling  symlink to <root_dir>/res, which does not exist
  stale     symlink to some other location
  occupied  a regular file or directory
  missing   nothing there yet

Exits non-zero unless the link is linked.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, _, lg, err := prepare(cmd, args, false)
		if err != nil {
			return err
		}
		defer lg.Close()

		status, err := linker.New(lg, nil).Inspect(inv)
		if err != nil {
			return fmt.Errorf("inspecting resource link: %w", err)
		}

		icon, style := "!!", ui.Warning
		switch status.State {
		case linker.StateLinked:
			icon, style = "OK", ui.Success
		case linker.StateMissing:
			icon = "--"
		}

		out := cmd.OutOrStdout()
		line := fmt.Sprintf("  [%s] %-9s %s", icon, status.State, status.Destination)
		if status.Target != "" {
			line += " -> " + status.Target
		}
		fmt.Fprintln(out, ui.Render(style, line))

		if status.State == linker.StateMissing && !platform.IsSymlinkSupported() {
			fmt.Fprintln(out, ui.Render(ui.Warning, "       symlinks are not available; enable Developer Mode or run elevated"))
		}

		if status.State != linker.StateLinked {
			return fmt.Errorf("resource link is %s", status.State)
		}
		return nil
	},
}
