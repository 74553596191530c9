// File: memo.go
// Title: Bounded Memo Tables
// Description: Small RWMutex-guarded lookup tables that remember the result of
//              pure conversions. Results never depend on the table; it only
//              saves repeated work for hot inputs such as identifiers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: String interning cache in stringx.go
// - 2026-10-16 v0.2.0: Generalized into per-conversion memo tables

package stringx

import "sync"

const (
	defaultMemoLimit = 1000
	memoKeepAfterTrim = 500
)

type memoTable struct {
	mu      sync.RWMutex
	entries map[string]string
	limit   int
}

func newMemoTable(limit int) *memoTable {
	return &memoTable{entries: make(map[string]string), limit: limit}
}

// lookup returns the remembered value for key or computes and stores it.
func (m *memoTable) lookup(key string, compute func(string) string) string {
	m.mu.RLock()
	value, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return value
	}

	value = compute(key)

	m.mu.Lock()
	if len(m.entries) >= m.limit {
		for k := range m.entries {
			delete(m.entries, k)
			if len(m.entries) <= memoKeepAfterTrim {
				break
			}
		}
	}
	m.entries[key] = value
	m.mu.Unlock()

	return value
}

func (m *memoTable) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *memoTable) reset() {
	m.mu.Lock()
	m.entries = make(map[string]string)
	m.mu.Unlock()
}

var (
	snakeMemo  = newMemoTable(defaultMemoLimit)
	kebabMemo  = newMemoTable(defaultMemoLimit)
	camelMemo  = newMemoTable(defaultMemoLimit)
	pascalMemo = newMemoTable(defaultMemoLimit)
	titleMemo  = newMemoTable(defaultMemoLimit)
)

func allMemoTables() []*memoTable {
	return []*memoTable{snakeMemo, kebabMemo, camelMemo, pascalMemo, titleMemo}
}

// ResetCaches empties every conversion memo table.
func ResetCaches() {
	for _, m := range allMemoTables() {
		m.reset()
	}
}

// CacheSize reports how many conversions are currently remembered.
func CacheSize() int {
	total := 0
	for _, m := range allMemoTables() {
		total += m.len()
	}
	return total
}
