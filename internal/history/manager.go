package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pdf-checker/backend/internal/models"
)

// MaxRecords bounds the history to prevent unbounded memory growth.
const MaxRecords = 100

// RecordMaxAge is how long records are kept before background cleanup.
const RecordMaxAge = 30 * time.Minute

// Manager keeps an in-memory, bounded history of completed checks.
// Nothing is ever written to disk.
type Manager struct {
	mu      sync.RWMutex
	records map[string]*models.CheckRecord
	order   []string // newest first
	max     int
}

// NewManager creates a manager with the default record limit.
func NewManager() *Manager {
	return NewManagerWithLimit(MaxRecords)
}

// NewManagerWithLimit creates a manager keeping at most max records.
func NewManagerWithLimit(max int) *Manager {
	if max < 1 {
		max = MaxRecords
	}
	return &Manager{
		records: make(map[string]*models.CheckRecord),
		max:     max,
	}
}

// Record stores a completed check and returns it with its assigned ID.
// The oldest record is evicted once the limit is reached.
func (m *Manager) Record(f models.SelectedFile, o models.Outcome, d *models.FileDetails) *models.CheckRecord {
	rec := &models.CheckRecord{
		ID:        uuid.New().String(),
		File:      f,
		Outcome:   o,
		Details:   d,
		CheckedAt: time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ID] = rec
	m.order = append([]string{rec.ID}, m.order...)

	for len(m.order) > m.max {
		oldest := m.order[len(m.order)-1]
		m.order = m.order[:len(m.order)-1]
		delete(m.records, oldest)
	}

	return rec
}

// Get retrieves a record by ID.
func (m *Manager) Get(id string) (*models.CheckRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	return rec, ok
}

// Recent returns the newest records, up to limit. A non-positive limit
// returns everything.
func (m *Manager) Recent(limit int) []*models.CheckRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var list []*models.CheckRecord
	for _, id := range m.order {
		if limit > 0 && len(list) >= limit {
			break
		}
		list = append(list, m.records[id])
	}
	return list
}

// Delete removes a record. Returns false if the ID is unknown.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return false
	}
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all records.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]*models.CheckRecord)
	m.order = nil
}

// Len returns the number of stored records.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// CleanupOld removes records older than maxAge and reports how many
// were removed. Called periodically from the server loop.
func (m *Manager) CleanupOld(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	kept := m.order[:0]
	for _, id := range m.order {
		if m.records[id].CheckedAt.Before(cutoff) {
			delete(m.records, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	m.order = kept

	return removed
}
