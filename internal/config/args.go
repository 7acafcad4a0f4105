package config

import (
	"strings"

	"github.com/spf13/pflag"
)

// SplitArgs separates the tokens of args that name flags registered on fs
// from everything else. Unregistered tokens are positional even when they
// start with a dash, so "-Foo" is a class name and "--weird" an argument,
// never a flag that swallows its neighbour.
func SplitArgs(fs *pflag.FlagSet, args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		n, ok := flagTokens(fs, arg)
		if !ok {
			positional = append(positional, arg)
			continue
		}
		if n == 2 && i+1 < len(args) {
			flags = append(flags, arg, args[i+1])
			i++
			continue
		}
		flags = append(flags, arg)
	}
	return flags, positional
}

// flagTokens reports whether arg is a registered flag and how many tokens it
// spans: 2 when its value is the following argument, 1 otherwise.
func flagTokens(fs *pflag.FlagSet, arg string) (int, bool) {
	switch {
	case len(arg) < 2 || arg[0] != '-' || arg == "--":
		return 0, false
	case strings.HasPrefix(arg, "--"):
		name, _, hasValue := strings.Cut(arg[2:], "=")
		f := fs.Lookup(name)
		if f == nil {
			return 0, false
		}
		if hasValue || f.NoOptDefVal != "" {
			return 1, true
		}
		return 2, true
	}

	// Shorthand group such as "-iV" or "-odir".
	group := arg[1:]
	for j := 0; j < len(group); j++ {
		f := fs.ShorthandLookup(group[j : j+1])
		if f == nil {
			return 0, false
		}
		if f.NoOptDefVal == "" {
			if j+1 < len(group) {
				return 1, true
			}
			return 2, true
		}
	}
	return 1, true
}
