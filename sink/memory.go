package sink

// Memory is the default sink: it stores every pushed frame in memory and
// renders nothing. It is the natural resume source and the sink every test
// reaches for.
type Memory struct {
	State
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory { return &Memory{} }

// Compile-time assertion: *Memory satisfies the Sink contract.
var _ Sink = (*Memory)(nil)
