package cli

import "github.com/spf13/pflag"

// registerPlainFlag adds the shared --plain flag to a command's flag set.
// Plain mode prints line output instead of the live progress view and is
// implied when the process is not attached to a terminal.
func registerPlainFlag(fs *pflag.FlagSet, plain *bool) {
	fs.BoolVar(plain, "plain", false, "Print plain line output instead of the live progress view")
}
