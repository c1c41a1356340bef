// Package dict implements a client for the DICT protocol (RFC 2229).
//
// A Conn holds one persistent connection to a dictionary server and
// exposes the four query operations: Define, Match, Databases and
// Strategies. Each operation is a strictly sequential write-then-read
// exchange; a mutex serializes operations so the reply stream cannot be
// interleaved.
package dict

import (
	"net"
	"strings"
	"sync"
	"time"

	"github.com/attiln/godict/protocol"
)

// DefaultPort is the IANA-assigned DICT port.
const DefaultPort = "2628"

// Dictionary is the query surface shared by Conn and BreakerConn.
type Dictionary interface {
	Define(word, database string) ([]Definition, error)
	Match(word, strategy, database string) ([]string, error)
	Databases() ([]Database, error)
	Strategies() ([]Strategy, error)
}

// Conn is a single DICT session over one transport connection.
//
// All operations and Close are mutually exclusive: the protocol has no
// request identifiers, so an interleaved exchange would desynchronize
// the reply parser irrecoverably.
type Conn struct {
	addr string
	conn net.Conn
	r    *protocol.Reader

	mu     sync.Mutex
	closed bool

	// catalog memoizes the server's database list in reply order.
	// Populated at most once per session; the server's list is assumed
	// static for the session's duration.
	dbOrder []string
	dbIndex map[string]Database

	stats *statsCollector
}

var _ Dictionary = (*Conn)(nil)

// Dial connects to addr and performs the greeting exchange. If addr
// carries no port, the default DICT port is used.
func Dial(addr string) (*Conn, error) {
	return DialTimeout(addr, 0)
}

// DialTimeout is Dial with a connect timeout. The timeout covers only
// connection establishment; reads block indefinitely afterward.
func DialTimeout(addr string, timeout time.Duration) (*Conn, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, DefaultPort)
	}

	nc, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, &ConnectionError{Op: "dial", Err: err}
	}
	return NewConn(nc)
}

// NewConn wraps an established transport and reads the server greeting.
// The greeting must be a 220 status line; on any other reply, a malformed
// line or a transport failure, the transport is closed and the returned
// error describes the failed greeting.
func NewConn(nc net.Conn) (*Conn, error) {
	c := &Conn{
		addr:    nc.RemoteAddr().String(),
		conn:    nc,
		r:       protocol.NewReader(nc),
		dbIndex: make(map[string]Database),
		stats:   newStatsCollector(),
	}

	if _, err := c.r.ExpectStatus(protocol.CodeBanner); err != nil {
		nc.Close()
		return nil, &ConnectionError{Op: "greeting", Err: err}
	}
	return c, nil
}

// Addr returns the remote address of the connection.
func (c *Conn) Addr() string {
	return c.addr
}

// Close sends QUIT and closes the transport. Errors from both steps are
// swallowed: the connection is being torn down regardless. Safe to call
// more than once.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		protocol.WriteCommand(c.conn, protocol.FormatQuit())
	}
	c.conn.Close()
}

// Define requests all definitions for word in the given database.
// database may be a catalog name or one of the reserved targets
// AllDatabases and FirstMatch.
//
// A 552 "no match" reply is a successful call returning an empty slice.
func (c *Conn) Define(word, database string) ([]Definition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.exchange(protocol.CmdDefine, protocol.FormatDefine(database, word))
	if err != nil {
		return nil, err
	}

	switch st.Code {
	case protocol.CodeNoMatch:
		c.stats.recordDefine(0)
		return []Definition{}, nil
	case protocol.CodeDefinitionsFound:
	default:
		return nil, c.unexpected(protocol.CmdDefine, st)
	}

	defs := []Definition{}
	for {
		st, err := c.r.ReadStatus()
		if err != nil {
			return nil, c.failed(protocol.CmdDefine, "reading definition header", err)
		}
		if st.IsPositiveCompletion() {
			break
		}
		if st.Code != protocol.CodeDefinitionFollows {
			return nil, c.unexpected(protocol.CmdDefine, st)
		}

		// 151 header text: <word> <database> <description>
		// Some servers quote the description, others send it bare; either
		// way it is everything after the database token.
		atoms := protocol.SplitAtoms(st.Message)
		if len(atoms) < 3 {
			return nil, c.failed(protocol.CmdDefine, "malformed definition header: "+st.Message, nil)
		}
		db := Database{Name: atoms[1], Description: strings.Join(atoms[2:], " ")}

		body, err := c.r.ReadTextBlock()
		if err != nil {
			return nil, c.failed(protocol.CmdDefine, "reading definition body", err)
		}

		var text strings.Builder
		for _, line := range body {
			text.WriteString(line)
			text.WriteString(protocol.CRLF)
		}
		defs = append(defs, Definition{Word: word, Database: db, Text: text.String()})
	}

	c.stats.recordDefine(len(defs))
	return defs, nil
}

// Match requests words matching word under the given strategy. The result
// preserves first-seen order and suppresses duplicates, even when the
// server reports the same word from several databases.
//
// A 552 "no match" reply is a successful call returning an empty slice.
func (c *Conn) Match(word, strategy, database string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.exchange(protocol.CmdMatch, protocol.FormatMatch(database, strategy, word))
	if err != nil {
		return nil, err
	}

	switch st.Code {
	case protocol.CodeNoMatch:
		c.stats.recordMatch(0)
		return []string{}, nil
	case protocol.CodeMatchesFound:
	default:
		return nil, c.unexpected(protocol.CmdMatch, st)
	}

	lines, err := c.r.ReadTextBlock()
	if err != nil {
		return nil, c.failed(protocol.CmdMatch, "reading matches", err)
	}

	words := []string{}
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		// match line: <database> <word>
		atoms := protocol.SplitAtoms(line)
		if len(atoms) < 2 {
			return nil, c.failed(protocol.CmdMatch, "malformed match line: "+line, nil)
		}
		w := atoms[1]
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	if err := c.readTerminal(protocol.CmdMatch); err != nil {
		return nil, err
	}

	c.stats.recordMatch(len(words))
	return words, nil
}

// Databases returns the databases the server offers, in the order the
// server lists them. The list is fetched once per session and memoized;
// subsequent calls return the cached catalog without network activity.
func (c *Conn) Databases() ([]Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.dbOrder) > 0 {
		return c.catalog(), nil
	}

	st, err := c.exchange(protocol.CmdShowDatabases, protocol.FormatShowDatabases())
	if err != nil {
		return nil, err
	}
	if st.Code != protocol.CodeDatabasesPresent {
		return nil, c.unexpected(protocol.CmdShowDatabases, st)
	}

	lines, err := c.r.ReadTextBlock()
	if err != nil {
		return nil, c.failed(protocol.CmdShowDatabases, "reading database list", err)
	}

	// Parse into a staging catalog first: on failure nothing is committed
	// and the next call re-queries.
	order := make([]string, 0, len(lines))
	index := make(map[string]Database, len(lines))
	for _, line := range lines {
		atoms := protocol.SplitAtoms(line)
		if len(atoms) < 2 {
			return nil, c.failed(protocol.CmdShowDatabases, "malformed database line: "+line, nil)
		}
		name := atoms[0]
		if _, dup := index[name]; !dup {
			order = append(order, name)
		}
		index[name] = Database{Name: name, Description: strings.Join(atoms[1:], " ")}
	}

	if err := c.readTerminal(protocol.CmdShowDatabases); err != nil {
		return nil, err
	}

	c.dbOrder = order
	c.dbIndex = index
	c.stats.recordDatabaseList()
	return c.catalog(), nil
}

// Strategies returns the matching strategies the server supports, in
// server order, with duplicate names suppressed.
func (c *Conn) Strategies() ([]Strategy, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.exchange(protocol.CmdShowStrategies, protocol.FormatShowStrategies())
	if err != nil {
		return nil, err
	}
	if st.Code != protocol.CodeStrategiesPresent {
		return nil, c.unexpected(protocol.CmdShowStrategies, st)
	}

	lines, err := c.r.ReadTextBlock()
	if err != nil {
		return nil, c.failed(protocol.CmdShowStrategies, "reading strategy list", err)
	}

	strategies := []Strategy{}
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		atoms := protocol.SplitAtoms(line)
		if len(atoms) < 2 {
			return nil, c.failed(protocol.CmdShowStrategies, "malformed strategy line: "+line, nil)
		}
		if _, dup := seen[atoms[0]]; dup {
			continue
		}
		seen[atoms[0]] = struct{}{}
		strategies = append(strategies, Strategy{
			Name:        atoms[0],
			Description: strings.Join(atoms[1:], " "),
		})
	}

	if err := c.readTerminal(protocol.CmdShowStrategies); err != nil {
		return nil, err
	}

	c.stats.recordStrategyList()
	return strategies, nil
}

// Stats returns a snapshot of operation counters for this connection.
func (c *Conn) Stats() Stats {
	return c.stats.snapshot()
}

// exchange writes one command line and reads the initial status line.
// Must be called with the mutex held.
func (c *Conn) exchange(cmd, line string) (protocol.Status, error) {
	if c.closed {
		c.stats.recordError()
		return protocol.Status{}, ErrConnectionClosed
	}
	if err := protocol.WriteCommand(c.conn, line); err != nil {
		return protocol.Status{}, c.failed(cmd, "writing command", err)
	}
	st, err := c.r.ReadStatus()
	if err != nil {
		return protocol.Status{}, c.failed(cmd, "reading status", err)
	}
	return st, nil
}

// readTerminal consumes the 2xz status line closing an exchange.
func (c *Conn) readTerminal(cmd string) error {
	st, err := c.r.ReadStatus()
	if err != nil {
		return c.failed(cmd, "reading terminal status", err)
	}
	if !st.IsPositiveCompletion() {
		return c.unexpected(cmd, st)
	}
	return nil
}

func (c *Conn) failed(cmd, msg string, err error) error {
	c.stats.recordError()
	return &ProtocolError{Cmd: cmd, Message: msg, Err: err}
}

func (c *Conn) unexpected(cmd string, st protocol.Status) error {
	c.stats.recordError()
	return &ProtocolError{
		Cmd:     cmd,
		Message: "unexpected status " + st.String(),
	}
}

// catalog returns the memoized databases in insertion order.
func (c *Conn) catalog() []Database {
	dbs := make([]Database, 0, len(c.dbOrder))
	for _, name := range c.dbOrder {
		dbs = append(dbs, c.dbIndex[name])
	}
	return dbs
}
