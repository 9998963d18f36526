package validator

import "unicode/utf8"

// StrengthLabel classifies a password strength score.
type StrengthLabel string

const (
	StrengthEmpty  StrengthLabel = "empty"
	StrengthWeak   StrengthLabel = "weak"
	StrengthMedium StrengthLabel = "medium"
	StrengthStrong StrengthLabel = "strong"
)

// Tone maps the label to an alert/progress tone. Empty has no tone.
func (l StrengthLabel) Tone() string {
	switch l {
	case StrengthWeak:
		return "danger"
	case StrengthMedium:
		return "warning"
	case StrengthStrong:
		return "success"
	default:
		return ""
	}
}

// Score thresholds.
const (
	mediumThreshold = 30
	strongThreshold = 60
	maxScore        = 100
)

// Strength is the result of scoring a password.
type Strength struct {
	Score float64       `json:"score"`
	Label StrengthLabel `json:"label"`
	Hint  string        `json:"hint"`
}

// Percent returns the score rounded down to a whole percentage.
func (s Strength) Percent() int {
	return int(s.Score)
}

// ScorePassword rates a password on an additive 0-100 scale:
// 25 for 8+ characters, 25 more for 12+, 25 for mixed case,
// 12.5 for a digit and 12.5 for any character outside ASCII letters and digits.
func ScorePassword(password string) Strength {
	if password == "" {
		return Strength{Label: StrengthEmpty, Hint: "Enter a password to see strength"}
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	length := utf8.RuneCountInString(password)
	score := 0.0
	if length >= 8 {
		score += 25
	}
	if length >= 12 {
		score += 25
	}
	if lower && upper {
		score += 25
	}
	if digit {
		score += 12.5
	}
	if symbol {
		score += 12.5
	}
	score = min(score, maxScore)

	switch {
	case score < mediumThreshold:
		return Strength{Score: score, Label: StrengthWeak, Hint: "Weak password"}
	case score < strongThreshold:
		return Strength{Score: score, Label: StrengthMedium, Hint: "Medium strength"}
	default:
		return Strength{Score: score, Label: StrengthStrong, Hint: "Strong password"}
	}
}
