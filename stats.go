package dict

import "sync/atomic"

// Stats contains counters of operations performed on a connection.
// All fields are safe for concurrent access.
type Stats struct {
	Defines       uint64 // Define calls completed
	Matches       uint64 // Match calls completed
	DatabaseLists uint64 // Databases calls that went to the wire
	StrategyLists uint64 // Strategies calls completed
	Definitions   uint64 // total definitions returned across Define calls
	MatchWords    uint64 // total match strings returned across Match calls
	Errors        uint64 // failed operations
}

// statsCollector provides internal methods for updating stats.
// Not exported - the connection updates its own stats.
type statsCollector struct {
	stats *Stats
}

func newStatsCollector() *statsCollector {
	return &statsCollector{stats: &Stats{}}
}

func (c *statsCollector) recordDefine(definitions int) {
	atomic.AddUint64(&c.stats.Defines, 1)
	atomic.AddUint64(&c.stats.Definitions, uint64(definitions))
}

func (c *statsCollector) recordMatch(words int) {
	atomic.AddUint64(&c.stats.Matches, 1)
	atomic.AddUint64(&c.stats.MatchWords, uint64(words))
}

func (c *statsCollector) recordDatabaseList() {
	atomic.AddUint64(&c.stats.DatabaseLists, 1)
}

func (c *statsCollector) recordStrategyList() {
	atomic.AddUint64(&c.stats.StrategyLists, 1)
}

func (c *statsCollector) recordError() {
	atomic.AddUint64(&c.stats.Errors, 1)
}

func (c *statsCollector) snapshot() Stats {
	return Stats{
		Defines:       atomic.LoadUint64(&c.stats.Defines),
		Matches:       atomic.LoadUint64(&c.stats.Matches),
		DatabaseLists: atomic.LoadUint64(&c.stats.DatabaseLists),
		StrategyLists: atomic.LoadUint64(&c.stats.StrategyLists),
		Definitions:   atomic.LoadUint64(&c.stats.Definitions),
		MatchWords:    atomic.LoadUint64(&c.stats.MatchWords),
		Errors:        atomic.LoadUint64(&c.stats.Errors),
	}
}
