package protocol

// Line terminator for commands and replies (RFC 2229 uses CRLF throughout).
const CRLF = "\r\n"

// TextTerminator is the line that ends a multi-line text block.
const TextTerminator = "."

// Client commands.
const (
	CmdDefine         = "DEFINE"
	CmdMatch          = "MATCH"
	CmdShowDatabases  = "SHOW DB"
	CmdShowStrategies = "SHOW STRAT"
	CmdQuit           = "QUIT"
)

// Status codes from RFC 2229 section 2.4.2.
const (
	// Preliminary replies (1yz) - text blocks follow
	CodeDatabasesPresent  = 110 // n databases present - text follows
	CodeStrategiesPresent = 111 // n strategies available - text follows
	CodeDatabaseInfo      = 112 // database information follows
	CodeHelpText          = 113 // help text follows
	CodeServerInfo        = 114 // server information follows
	CodeDefinitionsFound  = 150 // n definitions retrieved - definitions follow
	CodeDefinitionFollows = 151 // word database name - text follows
	CodeMatchesFound      = 152 // n matches found - text follows

	// Completion replies (2yz)
	CodeStatusInfo = 210 // status information
	CodeBanner     = 220 // server ready (greeting) / text msg-id
	CodeClosing    = 221 // closing connection
	CodeAuthOK     = 230 // authentication successful
	CodeOK         = 250 // command complete

	// Transient failures (4yz)
	CodeTemporarilyUnavailable = 420 // server temporarily unavailable
	CodeShuttingDown           = 421 // server shutting down at operator request

	// Permanent failures (5yz)
	CodeBadCommand              = 500 // syntax error, command not recognized
	CodeBadParameters           = 501 // syntax error, illegal parameters
	CodeCommandNotImplemented   = 502 // command not implemented
	CodeParameterNotImplemented = 503 // command parameter not implemented
	CodeAccessDenied            = 530 // access denied
	CodeAuthDenied              = 531 // access denied, use SHOW INFO
	CodeUnknownMechanism        = 532 // access denied, unknown mechanism
	CodeInvalidDatabase         = 550 // invalid database, use SHOW DB
	CodeInvalidStrategy         = 551 // invalid strategy, use SHOW STRAT
	CodeNoMatch                 = 552 // no match
	CodeNoDatabases             = 554 // no databases present
	CodeNoStrategies            = 555 // no strategies available
)
