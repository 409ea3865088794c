package cmd

import (
	"github.com/spf13/cobra"
)

type args struct {
	version    string
	LogLevel   string
	ConfigPath string
	EnvFile    string
	TextFormat bool
}

// InitCommands initializes and returns the root command for the application.
func InitCommands(version string) *cobra.Command {
	args := &args{
		version: version,
	}

	cmd := &cobra.Command{
		Use:   "surveybot",
		Short: "Feed Survey Telegram Bot",
		Long:  "Feed Survey Telegram Bot walks respondents through the algorithm and digital life survey and shows their results.",
	}

	cmd.PersistentFlags().StringVar(&args.ConfigPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&args.EnvFile, "env", "", "optional .env file loaded into the environment")
	cmd.PersistentFlags().StringVar(&args.LogLevel, "loglevel", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&args.TextFormat, "logtext", false, "log in text format, otherwise JSON")

	cmd.AddCommand(botCommand(args), resultCommand(args))

	return cmd
}

func botCommand(arg *args) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context(), arg)
		},
	}
}

func resultCommand(arg *args) *cobra.Command {
	return &cobra.Command{
		Use:   "result <id>",
		Short: "Fetch a survey result from the backend and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			return runResult(cmd.Context(), arg, cmdArgs[0], cmd.OutOrStdout())
		},
	}
}
