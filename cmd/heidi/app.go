package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"heidi/internal/platform/config"
	"heidi/internal/platform/logger"
	"heidi/pkg/chi"
	"heidi/pkg/nhs"
	"heidi/pkg/number"
)

const (
	Version = "0.1.0"
	appName = "heidi"
)

func rootCmd() *cobra.Command {
	cfg := config.FromEnv()
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Work with health identifiers",
		Long: `heidi helps dealing with health identifiers such as NHS Numbers
or CHI Numbers.

An NHS Number is the health identifier for England, Wales and the Isle of
Man. A CHI Number is the health identifier for Scotland. Both are ten digits
long and carry a Modulus 11 check digit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logger.New(logLevel))
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(checkCmd())
	cmd.AddCommand(generateCmd(cfg.Format))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <nhs|chi> <number>",
		Short: "Validate a health identifier number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := strings.ToLower(args[0])
			raw := args[1]
			slog.Debug("checking number", "type", kind)

			switch kind {
			case "nhs":
				n, err := nhs.Parse(raw)
				if err != nil {
					return fmt.Errorf("NHS Number '%s' is invalid: %w", raw, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "NHS Number '%s' is valid.\n", n.Official())
			case "chi":
				n, err := chi.Parse(raw)
				if err != nil {
					return fmt.Errorf("CHI Number '%s' is invalid: %w", raw, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "CHI Number '%s' is valid.\n", n)
			default:
				return fmt.Errorf("unknown identifier type: %s", args[0])
			}
			return nil
		},
	}
}

func generateCmd(defaultFormat string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "generate <nhs|chi>",
		Short: "Generate a random valid health identifier number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := number.ParseFormat(format)
			if err != nil {
				return err
			}

			switch strings.ToLower(args[0]) {
			case "nhs":
				n, err := nhs.Lottery(nhs.CryptoSource{})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n.Display(f))
			case "chi":
				return fmt.Errorf("generation is not supported for chi numbers")
			default:
				return fmt.Errorf("unknown identifier type: %s", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", defaultFormat,
		"Output format (compact, official). Official display requires a particular spacing, e.g. an NHS Number uses 3-3-4: 123 456 7890")

	return cmd
}
