package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/smitstech/Shutdowner/internal/i18n"
)

// ErrPartCount is returned by ParseClock when the line does not hold 1 to 3 parts
var ErrPartCount = errors.New("expected 1 to 3 time parts")

// MaxField is the largest value the console accepts in a single time field.
// It keeps h*3600 well inside int range on 32-bit platforms.
const MaxField = 99999

// StrictInt accepts empty input or a non-negative decimal integer.
// Check narrows the accepted range; nil accepts every value.
// OnReject is called with a message key whenever input is refused.
type StrictInt struct {
	Check    func(v int) bool
	OnReject func(messageKey string)
}

// Range returns a check accepting values in [0, max]
func Range(max int) func(int) bool {
	return func(v int) bool {
		return v >= 0 && v <= max
	}
}

// Validate reports whether text is acceptable. Accepted non-empty input is
// returned normalized ("007" becomes "7").
func (v StrictInt) Validate(text string) (string, bool) {
	if text == "" {
		return text, true
	}

	if isDigits(text) {
		n, err := strconv.Atoi(text)
		if err == nil && (v.Check == nil || v.Check(n)) {
			return strconv.Itoa(n), true
		}
	}

	if v.OnReject != nil {
		v.OnReject(i18n.KeyOnlyInts)
	}
	return text, false
}

// ParseField converts validated field text to an int. Empty counts as zero.
func ParseField(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}

// Fields holds the three time inputs as the user typed them
type Fields struct {
	Hours   string
	Minutes string
	Seconds string
}

// Values returns the fields as integers, empty fields as zero
func (f Fields) Values() (h, m, s int) {
	return ParseField(f.Hours), ParseField(f.Minutes), ParseField(f.Seconds)
}

// Clear empties every field
func (f *Fields) Clear() {
	*f = Fields{}
}

// ParseClock splits "hh:mm:ss", "hh mm ss", "mm:ss" or "ss" into fields,
// validating each part with v. Parts fill from the right, so "90" is 90
// seconds and "5:00" five minutes.
func ParseClock(v StrictInt, line string) (Fields, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ':' || r == ' ' || r == '\t'
	})
	if len(parts) == 0 || len(parts) > 3 {
		return Fields{}, fmt.Errorf("%w, got %d", ErrPartCount, len(parts))
	}

	normalized := make([]string, 3)
	offset := 3 - len(parts)
	for i, p := range parts {
		n, ok := v.Validate(p)
		if !ok {
			return Fields{}, fmt.Errorf("invalid time part %q", p)
		}
		normalized[offset+i] = n
	}

	return Fields{
		Hours:   normalized[0],
		Minutes: normalized[1],
		Seconds: normalized[2],
	}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
