package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/welaika/wordless-cli/cmd"
	"github.com/welaika/wordless-cli/constants"
	"github.com/welaika/wordless-cli/entity"
	"github.com/welaika/wordless-cli/ui"
)

var rootCmd = &cobra.Command{
	Use:           "wordless",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "Wordless. Structured WordPress themes.",
	Long:          "Scaffold WordPress installations with the Wordless plugin and themes, compile and deploy them.\n\n Docs: " + constants.WordlessDocsURL,
}

// errReported is returned once a failure has already been shown to the user.
var errReported = errors.New("reported")

/* contextualize converts a HandlerFunction to a cobra function and reports
 * its outcome as a single status line
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		defer func() {
			if r := recover(); r != nil {
				_ = panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args)
				err = errReported
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		msg, fnErr := fn(ctx, req)
		outcome := entity.NewOutcome(msg, fnErr)
		if !outcome.OK() || outcome.Message != "" {
			ui.Report(outcome)
		}
		if !outcome.OK() {
			return errReported
		}
		return nil
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print external commands before running them")
	rootCmd.PersistentFlags().String("wordfile", constants.DefaultWordfile, "Path of the project configuration file")
	rootCmd.PersistentPreRunE = contextualize(handler.Setup, handler.Panic)

	newCmd := &cobra.Command{
		Use:   "new [NAME]",
		Short: "Download WordPress in NAME, install the Wordless plugin and create a Wordless theme",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.New, handler.Panic),
	}
	newCmd.Flags().StringP("locale", "l", "", "WordPress locale (default is en_US)")
	rootCmd.AddCommand(newCmd)

	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install the Wordless plugin into an existing WordPress installation",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Install, handler.Panic),
	}
	installCmd.Flags().String("repo", "", "Clone the plugin from this repository (overrides wordless_repo)")
	rootCmd.AddCommand(installCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "theme [NAME]",
		Short: "Create a new Wordless theme NAME",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Theme, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "compile",
		Short: "Compile static assets",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Compile, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Clean static assets",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Clean, handler.Panic),
	})

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy your WordPress using the deploy_command defined in your Wordfile",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Deploy, handler.Panic),
	}
	deployCmd.Flags().BoolP("refresh", "r", false, "Compile static assets before deploying and clean them after")
	deployCmd.Flags().StringP("command", "c", "", "Use a custom deploy command")
	rootCmd.AddCommand(deployCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Config, handler.Panic),
	})

	docsCmd := &cobra.Command{
		Use:   "docs [PAGE]",
		Short: "Open the Wordless documentation in the browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Docs, handler.Panic),
	}
	docsCmd.Flags().Bool("list", false, "List the available pages")
	rootCmd.AddCommand(docsCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of the wordless CLI",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Version, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate completion script",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE:      contextualize(handler.Completion, handler.Panic),
	})
}

func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil || errors.Is(err, errReported) {
		return err
	}

	if strings.Contains(err.Error(), "unknown command") && len(args) > 0 {
		suggStr := "\nS"

		suggestions := rootCmd.SuggestionsFor(args[0])
		if len(suggestions) > 0 {
			suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
		}

		ui.Error(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
			"ee \"wordless --help\" for available commands.",
			args[0], rootCmd.CommandPath(), suggStr))
	} else {
		ui.Error(err.Error())
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}
