package executor

import "strings"

// Outcome is the user-facing classification of a completed invocation.
type Outcome string

const (
	// OutcomeSuccess is a zero exit with no special handling.
	OutcomeSuccess Outcome = "success"
	// OutcomeWarning is a non-zero exit whose output only contains known
	// non-fatal capability warnings. ryzenadj emits these on hardware that
	// does not support every flag, and they should not be reported as
	// failures.
	OutcomeWarning Outcome = "warning"
	// OutcomeFailure is everything else.
	OutcomeFailure Outcome = "failure"
)

// warningPhrases are the known non-fatal phrasings ryzenadj emits when a
// flag is unsupported on the running hardware.
var warningPhrases = []string{
	"not supported on this family",
	"is not supported",
}

// fatalPhrases are symptoms that always indicate a real failure, even when a
// warning phrase is also present.
var fatalPhrases = []string{
	"permission denied",
	"command not found",
	"no such file",
	"failed to",
	"traceback",
	"unable to",
	"polkit",
	"authentication",
}

// WarningDominated reports whether the combined output contains a known
// warning phrase and no fatal phrase.
func WarningDominated(stdout, stderr string) bool {
	text := strings.ToLower(stdout + "\n" + stderr)

	hasWarning := false
	for _, phrase := range warningPhrases {
		if strings.Contains(text, phrase) {
			hasWarning = true
			break
		}
	}
	if !hasWarning {
		return false
	}

	for _, phrase := range fatalPhrases {
		if strings.Contains(text, phrase) {
			return false
		}
	}
	return true
}

// Classify maps a completed Result to its Outcome: success passes through,
// and a failed result whose output is warning-dominated is downgraded to
// OutcomeWarning.
func Classify(res Result) Outcome {
	if res.Success {
		return OutcomeSuccess
	}
	if WarningDominated(res.Stdout, res.Stderr) {
		return OutcomeWarning
	}
	return OutcomeFailure
}
