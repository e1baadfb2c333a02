package commands

import (
	"encoding/base64"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"
	"io"
	"keyaudit/authkeys"
	"keyaudit/keyblob"
	"keyaudit/report"
	"strings"
)

var errCheckFailed = errors.New("key could not be decoded")

var checkCmd = &cobra.Command{
	Use:   "check [public key line]",
	Short: "Decodes a single public key and explains the result",
	Long: `Decodes one authorized_keys line given as an argument or on standard input, prints the
decoded record and compares it with golang.org/x/crypto/ssh. Exits non-zero when the key
could not be decoded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var line string
		if len(args) == 1 {
			line = args[0]
		} else {
			bytes, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read public key from stdin: %w", err)
			}
			line = string(bytes)
		}

		line = strings.TrimSpace(line)
		tok, ok := authkeys.ParseLine(line, 1)
		if !ok {
			return fmt.Errorf("no public key found in input")
		}

		opts := decodeOptions()
		opts.WantSHA256 = true
		rec := keyblob.Decode(tok.KeyType, tok.KeyData, tok.Comment, tok.LineNumber, opts)

		if err := render(cmd, []keyblob.KeyRecord{rec}, report.Options{Format: outputFormat, ShowSHA256: true}); err != nil {
			return err
		}

		// Keep stdout parseable for yaml and json.
		out := cmd.OutOrStdout()
		if outputFormat != report.FormatTable && outputFormat != "" {
			out = cmd.ErrOrStderr()
		}
		if reason := decodeFailure(tok, rec); reason != "" {
			fmt.Fprintf(out, "decode: %s\n", reason)
		}
		fmt.Fprintf(out, "x/crypto/ssh: %s\n", crossCheck(line, rec))

		if rec.Failed {
			return errCheckFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// decodeFailure repeats the decode without the fallback to report why it failed.
func decodeFailure(tok authkeys.Token, rec keyblob.KeyRecord) string {
	if !rec.Failed {
		return ""
	}
	if rec.KeyType == keyblob.TypeSSH1 {
		return "SSH-1 key data is not decoded"
	}
	blob, err := base64.StdEncoding.DecodeString(tok.KeyData)
	if err != nil {
		return fmt.Errorf("%w: %v", keyblob.ErrInvalidEncoding, err).Error()
	}
	if _, err := keyblob.DecodeBlob(blob, tok.LineNumber, tok.Comment, keyblob.Options{}); err != nil {
		return err.Error()
	}
	return "unknown error"
}

// crossCheck compares rec with what x/crypto/ssh makes of the same line.
func crossCheck(line string, rec keyblob.KeyRecord) string {
	pub, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
	if err != nil {
		return fmt.Sprintf("rejected (%v)", err)
	}
	if rec.Failed {
		return fmt.Sprintf("accepted as %s", pub.Type())
	}

	var mismatches []string
	if pub.Type() != rec.KeyType {
		mismatches = append(mismatches, "type")
	}
	if ssh.FingerprintLegacyMD5(pub) != rec.FingerprintMD5 {
		mismatches = append(mismatches, "md5")
	}
	if strings.TrimPrefix(ssh.FingerprintSHA256(pub), "SHA256:") != rec.FingerprintSHA256 {
		mismatches = append(mismatches, "sha256")
	}
	if len(mismatches) > 0 {
		return "mismatch: " + strings.Join(mismatches, ", ")
	}
	return "agrees"
}

