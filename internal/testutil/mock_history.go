// mock_history.go - In-memory history mock for handler tests
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/pdf-checker/backend/internal/models"
)

// MockHistory implements the api.History interface for testing.
type MockHistory struct {
	mu      sync.RWMutex
	records map[string]*models.CheckRecord
	order   []string
	nextID  int
}

// NewMockHistory creates an empty mock history.
func NewMockHistory() *MockHistory {
	return &MockHistory{
		records: make(map[string]*models.CheckRecord),
	}
}

func (m *MockHistory) Record(f models.SelectedFile, o models.Outcome, d *models.FileDetails) *models.CheckRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	rec := &models.CheckRecord{
		ID:        fmt.Sprintf("test-check-%d", m.nextID),
		File:      f,
		Outcome:   o,
		Details:   d,
		CheckedAt: time.Now(),
	}
	m.records[rec.ID] = rec
	m.order = append([]string{rec.ID}, m.order...)
	return rec
}

func (m *MockHistory) Get(id string) (*models.CheckRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	return rec, ok
}

func (m *MockHistory) Recent(limit int) []*models.CheckRecord {
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

func (m *MockHistory) Delete(id string) bool {
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

func (m *MockHistory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = make(map[string]*models.CheckRecord)
	m.order = nil
}

// Len returns the number of stored records.
func (m *MockHistory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
