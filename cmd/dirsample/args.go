package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// getoptArgs removes options the flag set does not know, the way getopt(3)
// skips them: an unknown short option never takes the next argument as a
// value, unknown letters inside a cluster are dropped, and unknown long
// options are removed together with any inline "=value". Everything after
// "--" is kept verbatim.
func getoptArgs(flags *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return append(out, args[i:]...)

		case strings.HasPrefix(arg, "--"):
			name, _, inline := strings.Cut(arg[2:], "=")
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			out = append(out, arg)
			if !inline && takesValue(f) && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}

		case len(arg) > 1 && arg[0] == '-':
			kept, needsNext := shortCluster(flags, arg[1:])
			if kept == "" {
				continue
			}
			out = append(out, "-"+kept)
			if needsNext && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}

		default:
			out = append(out, arg)
		}
	}

	return out
}

// shortCluster filters a cluster such as "ixp" down to known shorthands.
// A shorthand that takes a value consumes the rest of the cluster, or the
// next argument when the cluster ends with it.
func shortCluster(flags *pflag.FlagSet, cluster string) (kept string, needsNext bool) {
	var b strings.Builder
	for j := 0; j < len(cluster); j++ {
		f := flags.ShorthandLookup(cluster[j : j+1])
		if f == nil {
			continue
		}
		b.WriteByte(cluster[j])
		if takesValue(f) {
			rest := cluster[j+1:]
			if rest == "" {
				return b.String(), true
			}
			b.WriteString(rest)
			return b.String(), false
		}
	}
	return b.String(), false
}

func takesValue(f *pflag.Flag) bool {
	return f.NoOptDefVal == ""
}
