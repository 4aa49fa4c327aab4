package main

import (
	"os"
	"strings"

	"datetime-picker/internal/cli"
)

// slotShorthand reports the slot named by an "@slot" token.
func slotShorthand(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "@") || len(s) == 1 {
		return "", false
	}
	return s[1:], true
}

// rewriteSlotShorthandArgs turns `dtpick @<slot>` into `dtpick pick --slot <slot>`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first (`dtpick --dir x @due`), so
// the first positional token is searched for rather than argv[1].
func rewriteSlotShorthandArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	// Unknown flags are skipped without their value so a slot token is never
	// swallowed.
	valueFlags := map[string]bool{
		"--dir":    true,
		"--format": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	rewrite := func(i int, slot string) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "pick", "--slot", slot)
		out = append(out, argv[i+1:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}
		if slot, ok := slotShorthand(a); ok {
			return rewrite(i, slot)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteSlotShorthandArgs(os.Args)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
