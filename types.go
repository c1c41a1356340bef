package dict

// Reserved database targets. They are accepted as the database argument of
// Define and Match but never appear as catalog entries.
const (
	// AllDatabases queries every database the server offers.
	AllDatabases = "*"

	// FirstMatch queries databases in server order and stops at the first
	// database with a hit.
	FirstMatch = "!"
)

// Database identifies one dictionary offered by a server.
type Database struct {
	Name        string // unique identity token, e.g. "wn"
	Description string // human-readable description
}

// Strategy identifies one matching strategy supported by a server,
// e.g. "exact" or "prefix".
type Strategy struct {
	Name        string
	Description string
}

// Definition is one definition returned by Define.
//
// Text holds the body verbatim, one CRLF-terminated line per body line,
// without the "." line that terminates the block on the wire. Database is
// taken from the definition's own reply header, not from the session
// catalog, so it is valid even for databases never enumerated.
type Definition struct {
	Word     string
	Database Database
	Text     string
}
