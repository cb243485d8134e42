package platform

import "strings"

// QuoteArg quotes a single argument so that the Windows command-line parser
// (CommandLineToArgvW and the MSVC runtime) reads it back unchanged.
//
// Backslashes are literal unless they precede a double quote, so a run of
// backslashes is doubled only when it is followed by a quote or by the end of
// the argument (which becomes the closing quote). Quotes are escaped with a
// single backslash.
//
//	hello        -> hello
//	hello world  -> "hello world"
//	hello"world  -> "hello\"world"
//	hello\world  -> hello\world
//	hello\"world -> "hello\\\"world"
//	hello world\ -> "hello world\\"
func QuoteArg(arg string) string {
	if arg == "" {
		return arg
	}

	if !strings.ContainsAny(arg, " \t\"") {
		return arg
	}

	if !strings.ContainsAny(arg, "\"\\") {
		return `"` + arg + `"`
	}

	// Walk backwards so we know whether a backslash run ends at a quote.
	quoted := make([]byte, 0, len(arg)*2+2)
	quoteHit := true
	for i := len(arg) - 1; i >= 0; i-- {
		c := arg[i]
		quoted = append(quoted, c)

		switch {
		case quoteHit && c == '\\':
			quoted = append(quoted, '\\')
		case c == '"':
			quoteHit = true
			quoted = append(quoted, '\\')
		default:
			quoteHit = false
		}
	}

	for i, j := 0, len(quoted)-1; i < j; i, j = i+1, j-1 {
		quoted[i], quoted[j] = quoted[j], quoted[i]
	}

	return `"` + string(quoted) + `"`
}

// JoinArgs quotes every argument and joins them into one parameter string.
// Each argument is followed by a single space, including the last one.
func JoinArgs(args []string) string {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(QuoteArg(arg))
		b.WriteByte(' ')
	}
	return b.String()
}
