// Package seatmap tracks which seats of a floor plan a user has picked.
//
// A Selector is owned by a single goroutine for its whole life (one request,
// one interactive session). It is not safe for concurrent use.
package seatmap

import (
	"maps"
	"math"
	"slices"

	"cowork-booking/internal/data/entity"
)

// Unbounded is the maximum used when the caller does not set one.
const Unbounded = math.MaxInt

// ChangeFunc receives the full selection after every state-changing toggle.
// The order of ids is not stable between calls.
type ChangeFunc func(ids []string)

type Option func(*Selector)

// WithMaxSelectable caps the selection size. Values below zero are treated
// as zero.
func WithMaxSelectable(max int) Option {
	return func(s *Selector) {
		if max < 0 {
			max = 0
		}
		s.max = max
	}
}

type Selector struct {
	seats    []entity.Seat
	index    map[string]int
	booked   map[string]struct{}
	selected map[string]struct{}
	max      int
	onChange ChangeFunc
}

// New builds a selector over seats. booked lists seat ids that can never be
// selected; onChange may be nil.
func New(seats []entity.Seat, booked []string, onChange ChangeFunc, opts ...Option) *Selector {
	s := &Selector{
		seats:    slices.Clone(seats),
		index:    make(map[string]int, len(seats)),
		booked:   make(map[string]struct{}, len(booked)),
		selected: map[string]struct{}{},
		max:      Unbounded,
		onChange: onChange,
	}
	for i, seat := range s.seats {
		s.index[seat.ID] = i
	}
	for _, id := range booked {
		s.booked[id] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Toggle flips the selection of seatID and reports whether the selection
// changed. Unknown seats, booked seats and additions beyond the maximum are
// ignored without calling back.
func (s *Selector) Toggle(seatID string) bool {
	if _, ok := s.index[seatID]; !ok {
		return false
	}
	if s.IsBooked(seatID) {
		return false
	}

	next := maps.Clone(s.selected)
	if _, ok := next[seatID]; ok {
		delete(next, seatID)
	} else {
		if len(next) >= s.max {
			return false
		}
		next[seatID] = struct{}{}
	}

	s.selected = next
	if s.onChange != nil {
		s.onChange(s.Selection())
	}
	return true
}

// Selection returns a snapshot of the selected seat ids.
func (s *Selector) Selection() []string {
	return slices.Collect(maps.Keys(s.selected))
}

func (s *Selector) Len() int {
	return len(s.selected)
}

func (s *Selector) Max() int {
	return s.max
}

func (s *Selector) AtCapacity() bool {
	return len(s.selected) >= s.max
}

func (s *Selector) IsSelected(seatID string) bool {
	_, ok := s.selected[seatID]
	return ok
}

func (s *Selector) IsBooked(seatID string) bool {
	_, ok := s.booked[seatID]
	return ok
}

// Booked returns the booked ids that belong to the layout.
func (s *Selector) Booked() []string {
	ids := make([]string, 0, len(s.booked))
	for _, seat := range s.seats {
		if s.IsBooked(seat.ID) {
			ids = append(ids, seat.ID)
		}
	}
	return ids
}
