package commands

import (
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"keyaudit/authkeys"
	"keyaudit/report"
	"keyaudit/util"
)

var sshfpHost string

var sshfpCmd = &cobra.Command{
	Use:   "sshfp [file]",
	Short: "Prints SSHFP records for the keys in a file",
	Long: fmt.Sprintf(`Prints an SSHFP line for every key that could be decoded. The file defaults to ~/%s
(or %s); use - for standard input. Keys that fail to decode are skipped.`, util.DefaultKeyFile, util.EnvVarFile),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := keyFilePath(args)
		if err != nil {
			return err
		}

		opts := decodeOptions()
		opts.WantSHA256 = true
		records, err := authkeys.ScanFile(cmd.Context(), path, opts)
		if err != nil {
			return err
		}

		block := report.SSHFPBlock(records, sshfpHost)
		if _, err := io.WriteString(cmd.OutOrStdout(), block); err != nil {
			return err
		}
		if copyOutput {
			return copyText(cmd, block)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sshfpCmd)
	sshfpCmd.Flags().StringVar(&sshfpHost, "host", "", "prefix each record with \"<host> IN\"")
}
