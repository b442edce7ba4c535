package repl

// Entry is one processed input line.
type Entry struct {
	Line     string // trimmed line
	Accepted bool
	State    State // state when the line arrived
}

// Transcript keeps the most recent lines of a session in memory.
type Transcript struct {
	entries []Entry
	maxSize int
	dropped int
}

// NewTranscript creates a Transcript holding at most maxSize entries.
// A maxSize of zero or less disables recording.
func NewTranscript(maxSize int) *Transcript {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Transcript{
		entries: make([]Entry, 0),
		maxSize: maxSize,
	}
}

// Add records an entry, evicting the oldest one when full.
func (t *Transcript) Add(e Entry) {
	if t.maxSize == 0 {
		t.dropped++
		return
	}
	t.entries = append(t.entries, e)
	if len(t.entries) > t.maxSize {
		t.entries = t.entries[1:]
		t.dropped++
	}
}

// Get returns the entry at index (0 = most recent).
func (t *Transcript) Get(index int) (Entry, bool) {
	if index < 0 || index >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1-index], true
}

// Len returns the number of retained entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Dropped returns how many entries were evicted or never recorded.
func (t *Transcript) Dropped() int {
	return t.dropped
}

// Entries returns a copy of the retained entries, oldest first.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
