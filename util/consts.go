// Package util provides reused functions and constants
package util

const ProgramName = "keyaudit"

// GitHead is set at build time with -ldflags "-X keyaudit/util.GitHead=..."
var GitHead = "dev"

// DefaultKeyFile is relative to the user's home directory.
const DefaultKeyFile = ".ssh/authorized_keys"

const EnvVarFile = "KEYAUDIT_FILE"
const EnvVarOutput = "KEYAUDIT_OUTPUT"
const EnvVarNoColor = "NO_COLOR"
