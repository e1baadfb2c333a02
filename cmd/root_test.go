package commands

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
	"gopkg.in/yaml.v3"
	"keyaudit/keyblob"
	"keyaudit/util"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, stdin, args...)
	return out, err
}

func runWithStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func ed25519Line(t *testing.T, seed byte, comment string) string {
	t.Helper()
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := range key {
		key[i] = seed
	}
	pub, err := ssh.NewPublicKey(key)
	require.NoError(t, err)
	return strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub))) + " " + comment
}

func writeKeyFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func TestRoot_JSON(t *testing.T) {
	path := writeKeyFile(t,
		"# team keys",
		ed25519Line(t, 7, "carol@example.com"),
		"ssh-rsa "+strings.Repeat("1", 32)+" legacy",
		"ssh-rsa AAAAD3NzaC11bmtub3du bad",
	)

	out, err := run(t, "", path, "--sha256", "-o", "json")
	require.NoError(t, err)

	var records []keyblob.KeyRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)

	assert.Equal(t, 2, records[0].LineNumber)
	assert.Equal(t, "ssh-ed25519", records[0].KeyType)
	assert.Equal(t, 248, records[0].ModulusBits)
	assert.NotEmpty(t, records[0].FingerprintSHA256)
	assert.Equal(t, "carol@example.com", records[0].Comment)

	assert.Equal(t, keyblob.TypeSSH1, records[1].KeyType)
	assert.Equal(t, keyblob.NotImplemented, records[1].FingerprintMD5)

	assert.True(t, records[2].Failed)
	assert.Equal(t, keyblob.CouldNotDecode, records[2].FingerprintSHA256)
}

func TestRoot_TableWithSSHFP(t *testing.T) {
	path := writeKeyFile(t, ed25519Line(t, 1, "a"), ed25519Line(t, 2, "b"))

	out, err := run(t, "", path, "--sshfp")
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "SHA256")
	assert.Contains(t, out, "2 keys, 2 decoded, 0 failed")
	assert.Equal(t, 2, strings.Count(out, "SSHFP 4 2 "))
}

func TestRoot_FileFromEnvironment(t *testing.T) {
	path := writeKeyFile(t, ed25519Line(t, 3, "from-env"))
	t.Setenv(util.EnvVarFile, path)
	t.Setenv(util.EnvVarOutput, "yaml")

	out, err := run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "comment: from-env")
	assert.Contains(t, out, "type: ssh-ed25519")
}

func TestRoot_MissingFile(t *testing.T) {
	_, err := run(t, "", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot_UnknownFormat(t *testing.T) {
	path := writeKeyFile(t, ed25519Line(t, 1, "a"))

	_, err := run(t, "", path, "-o", "csv")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestSSHFP(t *testing.T) {
	path := writeKeyFile(t, ed25519Line(t, 4, "host key"), "ssh-rsa AAAA broken")

	out, err := run(t, "", "sshfp", path, "--host", "web1.example.com.")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "web1.example.com. IN SSHFP 4 2 "))
}

func TestCheck_Valid(t *testing.T) {
	out, err := run(t, "", "check", ed25519Line(t, 9, "dave"))
	require.NoError(t, err)

	assert.Contains(t, out, "ssh-ed25519")
	assert.Contains(t, out, "x/crypto/ssh: agrees")
	assert.NotContains(t, out, "decode:")
}

func TestCheck_FromStdin(t *testing.T) {
	out, err := run(t, ed25519Line(t, 5, "eve")+"\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "eve")
}

func TestCheck_UnknownType(t *testing.T) {
	blob := ssh.Marshal(struct {
		Name string
		Key  []byte
	}{"ssh-unknowntype", make([]byte, 32)})
	line := "ssh-unknowntype " + b64(blob) + " mystery"

	out, err := run(t, "", "check", line)
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "could_not_decode")
	assert.Contains(t, out, "decode: unknown key type")
	assert.Contains(t, out, "x/crypto/ssh: ")
}

func TestCheck_NoKey(t *testing.T) {
	_, err := run(t, "", "check", "just some words")
	assert.ErrorContains(t, err, "no public key found")
}

func TestCheck_StructuredOutputStaysParseable(t *testing.T) {
	blob := ssh.Marshal(struct {
		Name string
		Key  []byte
	}{"ssh-unknowntype", make([]byte, 32)})

	out, errOut, err := runWithStderr(t, "", "check", "-o", "json", "ssh-unknowntype "+b64(blob)+" mystery")
	assert.ErrorIs(t, err, errCheckFailed)

	var records []keyblob.KeyRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.True(t, records[0].Failed)
	assert.Contains(t, errOut, "decode: unknown key type")
	assert.Contains(t, errOut, "x/crypto/ssh: rejected")

	out, errOut, err = runWithStderr(t, "", "check", "-o", "yaml", ed25519Line(t, 6, "frank"))
	require.NoError(t, err)
	var fromYAML []keyblob.KeyRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "frank", fromYAML[0].Comment)
	assert.Contains(t, errOut, "x/crypto/ssh: agrees")
}
