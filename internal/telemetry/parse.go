// Package telemetry extracts typed values from ryzenadj --info output. The
// info format is human-readable text with no stability guarantee, so every
// extraction is best-effort: a metric or option that cannot be found is left
// at its sentinel or default rather than failing the whole parse.
package telemetry

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mwynn/ryzenadj-mcp/internal/options"
)

// Unavailable is the sentinel reported for a metric that could not be found
// in the info output.
const Unavailable = "N/A"

// Metric keys present in every snapshot.
const (
	MetricSTAPM     = "stapm"
	MetricPPTFast   = "ppt_fast"
	MetricPPTSlow   = "ppt_slow"
	MetricCPUTemp   = "cpu_temp"
	MetricPowerDraw = "power_draw"
)

// MetricKeys lists the snapshot metrics in display order.
var MetricKeys = []string{
	MetricSTAPM,
	MetricPPTFast,
	MetricPPTSlow,
	MetricCPUTemp,
	MetricPowerDraw,
}

// infoPatterns maps each metric to its match patterns, most specific first.
// Patterns are applied to lowercased text; the first pattern that matches
// wins and its first capture group is the metric value.
var infoPatterns = map[string][]*regexp.Regexp{
	MetricSTAPM: {
		regexp.MustCompile(`stapm[^\n]*?(-?\d+(?:\.\d+)?)`),
	},
	MetricPPTFast: {
		regexp.MustCompile(`ppt\s*fast[^\n]*?(-?\d+(?:\.\d+)?)`),
		regexp.MustCompile(`fast[^\n]*?(-?\d+(?:\.\d+)?)`),
	},
	MetricPPTSlow: {
		regexp.MustCompile(`ppt\s*slow[^\n]*?(-?\d+(?:\.\d+)?)`),
		regexp.MustCompile(`slow[^\n]*?(-?\d+(?:\.\d+)?)`),
	},
	MetricCPUTemp: {
		regexp.MustCompile(`(?:cpu\s*temp|tctl|temperature)[^\n]*?(-?\d+(?:\.\d+)?)`),
	},
	MetricPowerDraw: {
		regexp.MustCompile(`(?:current\s*power\s*draw|package\s*power|cpu\s*power)[^\n]*?(-?\d+(?:\.\d+)?)`),
	},
}

// ParseInfo extracts the snapshot metrics from info output. Every key in
// MetricKeys is present in the result; metrics with no matching pattern are
// set to Unavailable. ParseInfo never fails.
func ParseInfo(output string) map[string]string {
	text := strings.ToLower(output)
	parsed := make(map[string]string, len(MetricKeys))
	for _, key := range MetricKeys {
		parsed[key] = Unavailable
		for _, pattern := range infoPatterns[key] {
			if m := pattern.FindStringSubmatch(text); m != nil {
				parsed[key] = m[1]
				break
			}
		}
	}
	return parsed
}

var numberPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)`)

// ParseBaseline reconstructs a full profile value map from info output:
// every catalog option whose flag token (dashes stripped, or dashes replaced
// by spaces) appears on a line gets the first number on that line, marked
// enabled. Options with no matching line keep their catalog default and stay
// disabled.
//
// ryzenadj reports some limits in display units rather than the raw units
// its flags take; when multiplying the parsed value by the option's display
// scale would still fit under the option's maximum, the scale is applied.
// The comparison is made against the unscaled value on purpose — this is the
// historical behavior and changing it would reinterpret existing captures.
func ParseBaseline(output string) map[string]any {
	values := options.DefaultValues()
	lines := strings.Split(output, "\n")

	for _, spec := range options.NumericOptions {
		token := strings.ToLower(strings.TrimLeft(spec.CLI, "-"))
		tokenAlt := strings.ReplaceAll(token, "-", " ")

		for _, line := range lines {
			lowered := strings.ToLower(line)
			if !strings.Contains(lowered, token) && !strings.Contains(lowered, tokenAlt) {
				continue
			}

			m := numberPattern.FindString(line)
			if m == "" {
				continue
			}

			f, err := strconv.ParseFloat(m, 64)
			if err != nil {
				continue
			}
			parsed := int(f)

			if spec.UIScale > 1 && parsed <= spec.Maximum/spec.UIScale {
				parsed *= spec.UIScale
			}
			if parsed < 0 {
				parsed = 0
			}

			values[spec.Key] = parsed
			values[spec.EnabledKey()] = true
			break
		}
	}

	return values
}
