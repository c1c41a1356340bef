package protocol

import "fmt"

// Status is the parsed form of a reply status line: a 3-digit code
// followed by free text.
type Status struct {
	Code    int
	Message string
}

func (s Status) String() string {
	return fmt.Sprintf("%d %q", s.Code, s.Message)
}

// ParseStatus parses a status line of the form "<3-digit code> <text>".
// The text may be empty, in which case the space separator is optional.
func ParseStatus(line string) (Status, error) {
	if len(line) < 3 {
		return Status{}, &ParseError{Message: "status line too short: " + line}
	}

	code := 0
	for i := 0; i < 3; i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return Status{}, &ParseError{Message: "malformed status code: " + line}
		}
		code = code*10 + int(c-'0')
	}

	if len(line) == 3 {
		return Status{Code: code}, nil
	}
	if line[3] != ' ' {
		return Status{}, &ParseError{Message: "malformed status line: " + line}
	}

	return Status{Code: code, Message: line[4:]}, nil
}

// IsPreliminary reports whether the status is a 1yz reply, announcing
// a text block to follow.
func (s Status) IsPreliminary() bool {
	return s.Code/100 == 1
}

// IsPositiveCompletion reports whether the status is a 2yz reply,
// terminating a successful exchange.
func (s Status) IsPositiveCompletion() bool {
	return s.Code/100 == 2
}

// IsTransientFailure reports whether the status is a 4yz reply.
func (s Status) IsTransientFailure() bool {
	return s.Code/100 == 4
}

// IsPermanentFailure reports whether the status is a 5yz reply.
func (s Status) IsPermanentFailure() bool {
	return s.Code/100 == 5
}
