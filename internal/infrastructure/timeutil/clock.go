// Package timeutil holds the clock abstraction and timezone helpers used to
// decide which calendar day is "today".
package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so date checks can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock uses the system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time. It is safe for concurrent use, so it
// can back an HTTP server under test.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock fixed at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// NewMockClockFromDate creates a mock clock at noon UTC of a YYYY-MM-DD date.
// Panics on a malformed date (tests only).
func NewMockClockFromDate(date string) *MockClock {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("invalid date: " + err.Error())
	}
	return NewMockClock(d.Add(12 * time.Hour))
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// AdvanceDays moves the clock forward by whole calendar days.
func (m *MockClock) AdvanceDays(days int) {
	m.mu.Lock()
	m.now = m.now.AddDate(0, 0, days)
	m.mu.Unlock()
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
