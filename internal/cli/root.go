package cli

import (
	"fmt"

	"github.com/agentx-labs/reslink/internal/branding"
	"github.com/agentx-labs/reslink/internal/config"
	"github.com/agentx-labs/reslink/internal/linker"
	"github.com/agentx-labs/reslink/internal/logging"
	"github.com/agentx-labs/reslink/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagResourceDir string
	flagLogLevel    string
	flagLogFile     string
	flagQuiet       bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagResourceDir, "resource-dir", config.DefaultResourceDir, "Name of the resource directory under root and build")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Also write JSON logs to this file (rotated)")
	pf.BoolVar(&flagQuiet, "quiet", false, "Only print warnings and errors")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <root_dir> <build_dir>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` links <root_dir>/res into <build_dir>/res as a relative symlink so
a freshly built binary can find its resources. If <build_dir>/res already
exists in any form it is left untouched.

Example (CMake post-build step):
  reslink ${CMAKE_SOURCE_DIR} ${CMAKE_CURRENT_BINARY_DIR}`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, settings, lg, err := prepare(cmd, args, true)
		if err != nil {
			return err
		}
		defer lg.Close()

		res, err := linker.New(lg, nil).EnsureResourceLink(inv)
		if err != nil {
			return fmt.Errorf("linking resources: %w", err)
		}

		if settings.Quiet {
			return nil
		}
		out := cmd.OutOrStdout()
		if res.Created {
			fmt.Fprintln(out, ui.Render(ui.Success, fmt.Sprintf("Linked %s -> %s", res.Destination, res.Target)))
		} else {
			fmt.Fprintln(out, ui.Render(ui.Muted, fmt.Sprintf("%s already exists, nothing to do", res.Destination)))
		}
		return nil
	},
}

// prepare validates the positional arguments before anything else, then
// resolves settings and opens the logger. The log file sink is only opened
// when withLogFile is set, so read-only commands never create it.
func prepare(cmd *cobra.Command, args []string, withLogFile bool) (config.Invocation, *config.Settings, *logging.Logger, error) {
	inv, err := config.FromArgs(args)
	if err != nil {
		return config.Invocation{}, nil, nil, err
	}

	settings, err := config.Load(inv.RootDir, cmd.Flags())
	if err != nil {
		return config.Invocation{}, nil, nil, err
	}
	if err := config.CheckRequires(settings.Requires, buildVersion); err != nil {
		return config.Invocation{}, nil, nil, err
	}
	inv.ResourceDir = settings.ResourceDir

	opts := logging.Options{
		Level:   settings.LogLevel,
		Quiet:   settings.Quiet,
		Console: cmd.OutOrStdout(),
	}
	if withLogFile {
		opts.File = settings.LogFile
	}
	lg, err := logging.New(opts)
	if err != nil {
		return config.Invocation{}, nil, nil, err
	}
	if settings.ProjectFile != "" {
		lg.Debug("loaded project file", "path", settings.ProjectFile)
	}
	return inv, settings, lg, nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed here; the caller only sets the exit status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.RenderStderr(ui.Error, "Error: "+err.Error()))
	}
	return err
}
