// Package command builds ryzenadj command lines from sparse value maps.
package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mwynn/ryzenadj-mcp/internal/options"
)

// Build assembles the ryzenadj argument list for the given value map. The
// first element is always the binary. Numeric options are emitted in catalog
// order and only when their enabled flag is truthy; the value is coerced to
// an integer, zero when absent or malformed. Boolean options follow, also in
// catalog order, only when set. Build never fails: a map with nothing
// enabled yields a single-element list, which callers must treat as
// "nothing to apply" rather than executing it.
func Build(values map[string]any, binary string) []string {
	args := []string{binary}

	for _, spec := range options.NumericOptions {
		if !truthy(values[spec.EnabledKey()]) {
			continue
		}
		args = append(args, spec.CLI, strconv.Itoa(intValue(values[spec.Key])))
	}

	for _, opt := range options.BooleanOptions {
		if truthy(values[opt.Key]) {
			args = append(args, opt.CLI)
		}
	}

	return args
}

// HasSettings reports whether the built argument list carries anything beyond
// the binary itself.
func HasSettings(args []string) bool {
	return len(args) > 1
}

var bareWordPattern = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// Join renders an argument list as a single shell-safe command string.
// Arguments consisting solely of safe characters are left bare; everything
// else is single-quoted with embedded quotes escaped.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}

// Quote returns s in a form safe to embed in a POSIX shell command line.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if bareWordPattern.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// truthy interprets a value-map entry as a flag. Booleans are taken as-is;
// numbers count as set when non-zero. Anything else is false.
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val != 0
	case float64:
		return val != 0
	default:
		return false
	}
}

// intValue coerces a value-map entry to an integer, zero when missing or not
// a number. JSON decoding produces float64, so both paths matter.
func intValue(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
	}
	return 0
}
