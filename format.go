package geokml

import (
	"fmt"
	"math/rand"
	"strings"
)

// wrapCols is the column width Formatter reflows to.
const wrapCols = 100

// indent is prepended to every wrapped line.
const indent = "    "

// Formatter reflows a message by greedy word-wrap to the default column
// width and indents every line uniformly. Pure text utility, no state.
func Formatter(sentence string) string {
	return wrapIndent(sentence, wrapCols)
}

func wrapIndent(sentence string, maxCols int) string {
	var b strings.Builder
	for _, line := range strings.Split(sentence, "\n") {
		b.WriteString("\n")
		counter := 0
		for _, word := range strings.Split(line, " ") {
			if maxCols < counter+len(word) {
				b.WriteString("\n")
				counter = 0
			}
			b.WriteString(word + " ")
			counter += len(word) + 1
		}
	}
	return strings.ReplaceAll(b.String(), "\n", "\n"+indent)
}

// backWord renders the offending keyword, its runtime type and its value for
// inclusion in a validation error.
func backWord(kward string, value interface{}) string {
	return fmt.Sprintf("\nThe value you passed ---> kward: %s: type: %T, value: %v", kward, value, value)
}

// truncateValue keeps error messages readable when the offending value is a
// long sequence: only the first few elements are shown.
func truncateValue(value interface{}) interface{} {
	items, ok := asSlice(value)
	if !ok || len(items) <= 5 {
		return value
	}
	return fmt.Sprintf("%v ... (%d items)", items[:5], len(items))
}

// GenerateID returns a random A-Z 0-9 identifier used to name styles and
// placemarks.
func GenerateID(length int) string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	id := make([]byte, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}
