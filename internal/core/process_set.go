package core

import "fmt"

// ProcessSet holds the processes pending a run. Each Add assigns the next
// Order value; orders are never reused, so removing a process cannot make two
// later additions tie.
type ProcessSet struct {
	processes []Process
	nextOrder int
	nextLabel int
}

func NewProcessSet() *ProcessSet {
	return &ProcessSet{nextLabel: 1}
}

// Add appends a process and returns it. An empty id is replaced by the next
// automatic label ("P1", "P2", ...).
func (s *ProcessSet) Add(id string, arrival, burst int) Process {
	if s.nextLabel == 0 {
		s.nextLabel = 1
	}
	if id == "" {
		id = fmt.Sprintf("P%d", s.nextLabel)
	}
	p := Process{ID: id, Arrival: arrival, Burst: burst, Order: s.nextOrder}
	s.processes = append(s.processes, p)
	s.nextOrder++
	s.nextLabel++
	return p
}

// Remove drops the process at index. Out of range indexes are ignored.
func (s *ProcessSet) Remove(index int) {
	if index < 0 || index >= len(s.processes) {
		return
	}
	updated := make([]Process, 0, len(s.processes)-1)
	updated = append(updated, s.processes[:index]...)
	s.processes = append(updated, s.processes[index+1:]...)
}

func (s *ProcessSet) Clear() {
	s.processes = nil
	s.nextOrder = 0
	s.nextLabel = 1
}

func (s *ProcessSet) Len() int {
	return len(s.processes)
}

// Snapshot returns a copy that callers may hand to a scheduler.
func (s *ProcessSet) Snapshot() []Process {
	out := make([]Process, len(s.processes))
	copy(out, s.processes)
	return out
}
