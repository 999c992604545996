package common

import "fmt"

// IntToStringFixedWidth converts an integer to a string of a specified width,
// left-padding with spaces. Longer numbers are not truncated.
func IntToStringFixedWidth(num int, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
