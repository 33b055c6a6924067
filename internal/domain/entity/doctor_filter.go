package entity

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidMode    = errors.New("invalid consultation mode")
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// Mode is the consultation mode a doctor must offer.
type Mode string

const (
	ModeAll    Mode = ""
	ModeVideo  Mode = "video"
	ModeClinic Mode = "clinic"
)

// ParseMode converts a raw query value into a Mode.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeAll, ModeVideo, ModeClinic:
		return Mode(raw), nil
	}
	return ModeAll, ErrInvalidMode
}

// Allows reports whether the doctor offers this mode. ModeAll allows everyone.
func (m Mode) Allows(d Doctor) bool {
	switch m {
	case ModeVideo:
		return d.VideoConsult
	case ModeClinic:
		return d.InClinic
	}
	return true
}

// SortKey selects the ordering of the derived doctor list.
type SortKey string

const (
	SortNone       SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case SortNone, SortFees, SortExperience:
		return SortKey(raw), nil
	}
	return SortNone, ErrInvalidSortKey
}

// SpecialtySet is the set of selected specialty display names.
type SpecialtySet map[string]struct{}

func NewSpecialtySet(names ...string) SpecialtySet {
	set := make(SpecialtySet, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func (s SpecialtySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Toggle adds name when absent and removes it when present. A blank name
// is ignored: it has no URL form and would filter out every record.
func (s SpecialtySet) Toggle(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	if s.Has(name) {
		delete(s, name)
		return
	}
	s[name] = struct{}{}
}

// Names returns the members in lexical order.
func (s SpecialtySet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s SpecialtySet) Clone() SpecialtySet {
	return NewSpecialtySet(s.Names()...)
}

// DoctorFilter is the user-selected filter state.
type DoctorFilter struct {
	Mode        Mode
	Specialties SpecialtySet
	Sort        SortKey
}

// Clone returns a copy that shares no mutable state with f.
func (f DoctorFilter) Clone() DoctorFilter {
	return DoctorFilter{
		Mode:        f.Mode,
		Specialties: f.Specialties.Clone(),
		Sort:        f.Sort,
	}
}
