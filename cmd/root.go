// Package commands implements CLI commands
package commands

import (
	"bytes"
	"fmt"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
	"keyaudit/authkeys"
	"keyaudit/clipboard"
	"keyaudit/keyblob"
	"keyaudit/report"
	"keyaudit/util"
	"os"
	"path/filepath"
)

var (
	// These variables are populated by the persistent flags and are available to all subcommands.
	wantSHA256    bool
	showSSHFP     bool
	outputFormat  string
	noColor       bool
	debug         bool
	enableLogging bool
	copyOutput    bool
)

var rootCmd = &cobra.Command{
	Use:     fmt.Sprintf("%s [file]", util.ProgramName),
	Version: util.GitHead,
	Short:   "Lists the SSH public keys in an authorized_keys file.",
	Long: fmt.Sprintf(`Decodes every key in an authorized_keys style file and prints its type, size,
exponent and fingerprints. The file defaults to ~/%s (or %s); use - for standard input.`, util.DefaultKeyFile, util.EnvVarFile),
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	// This function runs before any subcommand executes.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()

		if !cmd.Flags().Changed("output") {
			if envOutput := os.Getenv(util.EnvVarOutput); envOutput != "" {
				outputFormat = envOutput
			}
		}
		if !cmd.Flags().Changed("no-color") && os.Getenv(util.EnvVarNoColor) != "" {
			noColor = true
		}
		if showSSHFP {
			wantSHA256 = true
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := keyFilePath(args)
		if err != nil {
			return err
		}

		records, err := authkeys.ScanFile(cmd.Context(), path, decodeOptions())
		if err != nil {
			return err
		}

		return render(cmd, records, report.Options{
			Format:     outputFormat,
			ShowSHA256: wantSHA256,
			SSHFP:      showSSHFP,
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Hide the default completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&wantSHA256, "sha256", false, "compute SHA-256 fingerprints")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", report.FormatTable, fmt.Sprintf("output format: table, yaml, json (or %s)", util.EnvVarOutput))
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, fmt.Sprintf("disable colored output (or %s)", util.EnvVarNoColor))
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log field lengths and decode errors")
	rootCmd.PersistentFlags().BoolVar(&enableLogging, "log", false, "enable logging output.")
	rootCmd.PersistentFlags().BoolVar(&copyOutput, "copy", false, "copy the output to the clipboard")
	rootCmd.Flags().BoolVar(&showSSHFP, "sshfp", false, "also print SSHFP records (implies --sha256)")
}

func configureLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	switch {
	case debug:
		log.SetLevel(log.DebugLevel)
	case enableLogging:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
}

func decodeOptions() keyblob.Options {
	return keyblob.Options{
		WantSHA256: wantSHA256,
		Debug:      debug,
		Logger:     log.StandardLogger(),
	}
}

// keyFilePath resolves the input file from the argument, the environment,
// then the default location.
func keyFilePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if envFile := os.Getenv(util.EnvVarFile); envFile != "" {
		return envFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, util.DefaultKeyFile), nil
}

// render writes the report to the command's output and, with --copy, to the clipboard.
func render(cmd *cobra.Command, records []keyblob.KeyRecord, opts report.Options) error {
	out := cmd.OutOrStdout()
	opts.Color = !noColor && isInteractiveTTY(out)

	var buf bytes.Buffer
	if err := report.Write(&buf, records, opts); err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return err
	}

	if copyOutput {
		return copyToClipboard(cmd, records, opts)
	}
	return nil
}

func copyToClipboard(cmd *cobra.Command, records []keyblob.KeyRecord, opts report.Options) error {
	// Escape codes are useless on the clipboard.
	opts.Color = false
	var buf bytes.Buffer
	if err := report.Write(&buf, records, opts); err != nil {
		return err
	}
	return copyText(cmd, buf.String())
}

func copyText(cmd *cobra.Command, text string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	if err := clipboard.Copy(cmd.Context(), []byte(text)); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	log.WithField("bytes", len(text)).Info("Copied output to clipboard")
	return nil
}

func isInteractiveTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
