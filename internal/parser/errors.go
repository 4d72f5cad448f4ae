package parser

import (
	"errors"
	"fmt"

	"kismet/internal/span"
)

// errNoMatch is the recoverable Error outcome of §7: an alternative
// simply did not match at the current position. Callers that see it
// either try another alternative or, if no alternative remains,
// promote it into a Failure at the appropriate pinned span.
var errNoMatch = errors.New("parser: no match")

// Failure is the unrecoverable outcome of §7: a token has committed
// the parse to a production that could not complete. Any Failure
// aborts the entire parse; no partial tree is ever returned alongside
// one.
type Failure struct {
	Span    span.Span
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Span, f.Message)
}

// fail builds a Failure pinned at s.
func (p *Parser) fail(s span.Span, format string, args ...interface{}) error {
	return &Failure{Span: s, Message: fmt.Sprintf(format, args...)}
}
