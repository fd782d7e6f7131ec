package stick

// MaxScoreStore persists the single best score across sessions.
// ReadMaxScore reports false when nothing has been stored yet.
type MaxScoreStore interface {
	ReadMaxScore() (int, bool)
	WriteMaxScore(score int)
}

// MemoryBest keeps the best score in memory. It is the fallback when no
// database is available.
type MemoryBest struct {
	score int
	set   bool
}

// NewMemoryBest creates a store that already holds score.
func NewMemoryBest(score int) *MemoryBest {
	return &MemoryBest{score: score, set: true}
}

// ReadMaxScore implements MaxScoreStore.
func (m *MemoryBest) ReadMaxScore() (int, bool) {
	return m.score, m.set
}

// WriteMaxScore implements MaxScoreStore.
func (m *MemoryBest) WriteMaxScore(score int) {
	m.score = score
	m.set = true
}
