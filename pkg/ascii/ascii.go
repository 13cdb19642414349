// Package ascii holds the byte classification helpers used by the view
// scanner. Only 7-bit ASCII is recognised; every other byte is left alone.
package ascii

func IsUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func IsLower(c byte) bool { return c >= 'a' && c <= 'z' }

func IsAlpha(c byte) bool { return IsUpper(c) || IsLower(c) }

func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsSpace reports space, tab, newline, vertical tab, form feed and carriage return.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - ('a' - 'A')
	}
	return c
}

func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// ToDigit returns the value of a decimal digit, or -1.
func ToDigit(c byte) int {
	if IsDigit(c) {
		return int(c - '0')
	}
	return -1
}
