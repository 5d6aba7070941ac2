// Package lexerql provides utilities shared by query language lexers.
package lexerql

import "text/scanner"

type char interface {
	byte | rune
}

// IsDigit returns true, if r is an ASCII digit.
func IsDigit[R char](r R) bool {
	return r >= '0' && r <= '9'
}

// IsLetter returns true, if r is an ASCII letter.
func IsLetter[R char](r R) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// IsIdentStartRune returns true, if r is a valid first character of identifier.
func IsIdentStartRune[R char](r R) bool {
	return IsLetter(r) || r == '_'
}

// IsIdentRune returns true, if r is a valid character of identifier.
func IsIdentRune[R char](r R) bool {
	return IsLetter(r) || IsDigit(r) || r == '_'
}

// ScanComment reads runes until newline.
func ScanComment(s *scanner.Scanner) {
	for {
		ch := s.Next()
		if ch == scanner.EOF || ch == '\n' {
			break
		}
	}
}
