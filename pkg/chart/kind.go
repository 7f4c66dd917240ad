package chart

import (
	"fmt"
	"strings"
)

// Kind is the visualization style. The set is closed: every switch over Kind
// in this package handles all four values.
type Kind int

const (
	KindLine Kind = iota
	KindBar
	KindPoint
	KindPie
)

var kindNames = [...]string{
	KindLine:  "line",
	KindBar:   "bar",
	KindPoint: "point",
	KindPie:   "pie",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Cartesian reports whether the kind is drawn on axes.
func (k Kind) Cartesian() bool {
	return k != KindPie
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name {
			return Kind(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
