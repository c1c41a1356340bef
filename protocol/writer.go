package protocol

import "io"

// Command formatting. Word arguments are always wrapped in double quotes
// on the wire so that multi-word phrases travel as a single atom. Every
// command line carries a trailing space before CRLF, the framing dict
// servers are commonly tested against.

// FormatDefine formats a DEFINE command for the given database and word.
func FormatDefine(database, word string) string {
	return CmdDefine + " " + database + " " + quote(word) + " " + CRLF
}

// FormatMatch formats a MATCH command.
func FormatMatch(database, strategy, word string) string {
	return CmdMatch + " " + database + " " + strategy + " " + quote(word) + " " + CRLF
}

// FormatShowDatabases formats a SHOW DB command.
func FormatShowDatabases() string {
	return CmdShowDatabases + " " + CRLF
}

// FormatShowStrategies formats a SHOW STRAT command.
func FormatShowStrategies() string {
	return CmdShowStrategies + " " + CRLF
}

// FormatQuit formats a QUIT command.
func FormatQuit() string {
	return CmdQuit + " " + CRLF
}

// WriteCommand writes one preformatted command line to w.
func WriteCommand(w io.Writer, cmd string) error {
	_, err := io.WriteString(w, cmd)
	return err
}

func quote(word string) string {
	return `"` + word + `"`
}
