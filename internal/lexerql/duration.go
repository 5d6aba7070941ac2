package lexerql

import (
	"strconv"
	"strings"
	"text/scanner"
	"time"

	"github.com/go-faster/errors"
	"github.com/prometheus/common/model"
)

// IsDurationRune returns true, if r is a non-digit rune that could start
// a duration suffix.
func IsDurationRune[R char](r R) bool {
	switch rune(r) {
	case 'n', 'u', 'µ', 'μ', 'm', 's', 'h', 'd', 'w', 'y', 't':
		return true
	default:
		return false
	}
}

func isDurationTextRune(r rune) bool {
	return IsDigit(r) || IsLetter(r) || r == '.' || r == 'µ' || r == 'μ'
}

// ScanDuration scans duration suffix after given number and validates it.
func ScanDuration(s *scanner.Scanner, number string) (string, error) {
	var sb strings.Builder
	sb.WriteString(number)

	for {
		ch := s.Peek()
		if !isDurationTextRune(ch) {
			break
		}
		sb.WriteRune(ch)
		s.Next()
	}

	duration := sb.String()
	_, err := ParseDuration(duration)
	return duration, err
}

// Long unit names of timespan literals, like "10microseconds".
var longUnits = []struct {
	name string
	unit time.Duration
}{
	{"microseconds", time.Microsecond},
	{"microsecond", time.Microsecond},
	{"milliseconds", time.Millisecond},
	{"millisecond", time.Millisecond},
	{"seconds", time.Second},
	{"second", time.Second},
	{"minutes", time.Minute},
	{"minute", time.Minute},
	{"hours", time.Hour},
	{"hour", time.Hour},
	{"days", 24 * time.Hour},
	{"day", 24 * time.Hour},
	{"ticks", 100 * time.Nanosecond},
	{"tick", 100 * time.Nanosecond},
	{"min", time.Minute},
}

// ParseDuration parses Prometheus or Go duration, or a single number with
// long unit name.
func ParseDuration(s string) (time.Duration, error) {
	d, err := model.ParseDuration(s)
	if err == nil {
		return time.Duration(d), nil
	}
	err1 := err

	d2, err := time.ParseDuration(s)
	if err == nil {
		return d2, nil
	}

	for _, u := range longUnits {
		number, ok := strings.CutSuffix(s, u.name)
		if !ok || number == "" {
			continue
		}
		v, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parse %q", s)
		}
		return time.Duration(v * float64(u.unit)), nil
	}
	return 0, err1
}
