package sequence

import (
	"strconv"
	"strings"
)

// Run is a maximal block of identical consecutive digits within a term.
type Run struct {
	Count int
	Digit byte
}

// Encode reads value aloud: every run of identical digits becomes its
// decimal length followed by the digit. Encode("1211") == "111221".
//
// value is expected to hold only '0'-'9'; other bytes are encoded the same
// way but the result is no longer a look-and-say term.
func Encode(value string) string {
	if value == "" {
		return ""
	}
	var sb strings.Builder
	// a successor is at most twice as long as its predecessor
	sb.Grow(2 * len(value))
	var buf [20]byte
	for i := 0; i < len(value); {
		j := i + 1
		for j < len(value) && value[j] == value[i] {
			j++
		}
		if count := j - i; count < 10 {
			sb.WriteByte('0' + byte(count))
		} else {
			sb.Write(strconv.AppendInt(buf[:0], int64(count), 10))
		}
		sb.WriteByte(value[i])
		i = j
	}
	return sb.String()
}

// EncodeRuns splits value into its runs, left to right.
func EncodeRuns(value string) []Run {
	var runs []Run
	for i := 0; i < len(value); {
		j := i + 1
		for j < len(value) && value[j] == value[i] {
			j++
		}
		runs = append(runs, Run{Count: j - i, Digit: value[i]})
		i = j
	}
	return runs
}

// ValidDigits reports whether value is non-empty and made of decimal digits only.
func ValidDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
