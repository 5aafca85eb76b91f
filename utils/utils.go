package utils

import "strings"

// AddToLogMessage appends one line to a per-request log accumulator. The
// builder is flushed once when the handler returns.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";\n")
}
