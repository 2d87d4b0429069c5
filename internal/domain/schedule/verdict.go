package schedule

// Verdict codes returned by the work-rule validators. A violated rule is a
// reportable outcome for the caller, not an application error.
const (
	VerdictNoContract        = "NO_CONTRACT"
	VerdictDailyLimit        = "DAILY_LIMIT_EXCEEDED"
	VerdictWeeklyLimit       = "WEEKLY_LIMIT_EXCEEDED"
	VerdictInsufficientBreak = "INSUFFICIENT_BREAK"
	VerdictRestGapTooShort   = "REST_GAP_TOO_SHORT"
	VerdictNoWeeklyRest      = "NO_WEEKLY_REST"
	VerdictNotAuthorized     = "SHIFT_12X36_NOT_AUTHORIZED"
	VerdictMissingPairedRest = "MISSING_PAIRED_REST"
)

// Verdict is the outcome of a single work-rule check. Code and Detail are set
// only on violations; the minute fields carry whichever measurement the rule
// produced.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`

	JourneyMinutes       int `json:"journey_minutes,omitempty"`
	WeeklyMinutes        int `json:"weekly_minutes,omitempty"`
	RequiredBreakMinutes int `json:"required_break_minutes,omitempty"`
	RestGapMinutes       int `json:"rest_gap_minutes,omitempty"`
	RestDays             int `json:"rest_days,omitempty"`
}

// Ok returns a passing verdict.
func Ok() Verdict {
	return Verdict{Valid: true}
}

// Fail returns a failing verdict with the given code and human-readable detail.
func Fail(code, detail string) Verdict {
	return Verdict{Valid: false, Code: code, Detail: detail}
}
