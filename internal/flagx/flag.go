// Package flagx helps several independent flag sets share one command line.
// Each loader keeps only the arguments it understands and parses those with
// its own flag.FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args that belong to allowedFlags, keeping
// their values and original order.
//
// Both "-f value" and "-f=value" forms are recognised. A value is only taken
// from the following argument when that argument does not start with '-'.
// Everything else is dropped.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if allowed[name] {
				out = append(out, arg)
			}
			continue
		}

		if !allowed[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// The last occurrence wins; an empty string means no file was requested.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
