package services

import "sync"

// leagueLocker serializes writers per league. Schedule generation and result
// recording are read-modify-write sequences over the league's match list, so
// they must not interleave for the same league (at-most-one concurrent
// writer; see ScheduleService).
type leagueLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLeagueLocker() *leagueLocker {
	return &leagueLocker{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the league's mutex and returns the matching unlock func.
func (l *leagueLocker) lock(leagueID string) func() {
	l.mu.Lock()
	m, ok := l.locks[leagueID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[leagueID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
