package hadamard

import (
	"fmt"
	"strconv"
	"strings"
)

type axisKind uint8

const (
	axesDefault axisKind = iota
	axesSingle
	axesPair
	axesAll
)

// AxisSpec selects the axes a transform runs over. The zero value is the
// default selection, which is every axis of the tensor.
//
// Build one with DefaultAxes, Axis, Axes, AllAxes or ParseAxes.
type AxisSpec struct {
	kind axisKind
	a, b int
	rank int // non-zero when AllAxes was spelled out for a specific rank
}

// DefaultAxes selects every axis of the tensor.
func DefaultAxes() AxisSpec {
	return AxisSpec{}
}

// Axis selects a single axis.
func Axis(i int) AxisSpec {
	return AxisSpec{kind: axesSingle, a: i}
}

// Axes selects a pair of distinct axes. Order is irrelevant.
func Axes(i, j int) AxisSpec {
	return AxisSpec{kind: axesPair, a: i, b: j}
}

// AllAxes selects every axis of the tensor.
func AllAxes() AxisSpec {
	return AxisSpec{kind: axesAll}
}

// ParseAxes parses a command-line axis selection. Accepted forms are
// "" or "default", "all", a single index ("1") and a comma separated list
// of distinct indices ("0,2" or "0,1,2").
func ParseAxes(s string) (AxisSpec, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "default":
		return DefaultAxes(), nil
	case "all":
		return AllAxes(), nil
	}

	parts := strings.Split(strings.Trim(s, "()[]"), ",")
	idx := make([]int, 0, len(parts))
	seen := make(map[int]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return AxisSpec{}, fmt.Errorf("%w: %q is not an axis index", ErrInvalidAxisSpec, p)
		}
		if v < 0 || seen[v] {
			return AxisSpec{}, fmt.Errorf("%w: %q", ErrInvalidAxisSpec, s)
		}
		seen[v] = true
		idx = append(idx, v)
	}

	switch len(idx) {
	case 1:
		return Axis(idx[0]), nil
	case 2:
		return Axes(idx[0], idx[1]), nil
	case 3:
		if seen[0] && seen[1] && seen[2] {
			return AxisSpec{kind: axesAll, rank: 3}, nil
		}
	}
	return AxisSpec{}, fmt.Errorf("%w: %q", ErrInvalidAxisSpec, s)
}

// IsDefault reports whether s is the default selection.
func (s AxisSpec) IsDefault() bool {
	return s.kind == axesDefault
}

// String returns a human-readable form that ParseAxes accepts.
func (s AxisSpec) String() string {
	switch s.kind {
	case axesSingle:
		return strconv.Itoa(s.a)
	case axesPair:
		return fmt.Sprintf("%d,%d", s.a, s.b)
	case axesAll:
		if s.rank == 3 {
			return "0,1,2"
		}
		return "all"
	default:
		return "default"
	}
}

// axisMask is a canonical axis set: bit k is set when axis k is transformed.
type axisMask uint8

const (
	mask0   axisMask = 1 << 0
	mask1   axisMask = 1 << 1
	mask2   axisMask = 1 << 2
	mask01           = mask0 | mask1
	mask12           = mask1 | mask2
	mask02           = mask0 | mask2
	mask012          = mask0 | mask1 | mask2
)

func fullMask(rank int) axisMask {
	return axisMask(1<<rank - 1)
}

// has reports whether axis k is in the set.
func (m axisMask) has(k int) bool {
	return m&(1<<k) != 0
}

// resolve validates the selection against rank and returns its canonical set.
func (s AxisSpec) resolve(rank int) (axisMask, error) {
	inRange := func(i int) bool { return i >= 0 && i < rank }

	switch s.kind {
	case axesDefault:
		return fullMask(rank), nil
	case axesAll:
		if s.rank != 0 && s.rank != rank {
			return 0, fmt.Errorf("%w: axes %s on a %dD tensor", ErrInvalidAxisSpec, s, rank)
		}
		return fullMask(rank), nil
	case axesSingle:
		if !inRange(s.a) {
			return 0, fmt.Errorf("%w: axis %d out of range for a %dD tensor", ErrInvalidAxisSpec, s.a, rank)
		}
		return 1 << s.a, nil
	case axesPair:
		if !inRange(s.a) || !inRange(s.b) {
			return 0, fmt.Errorf("%w: axes (%d, %d) out of range for a %dD tensor", ErrInvalidAxisSpec, s.a, s.b, rank)
		}
		if s.a == s.b {
			return 0, fmt.Errorf("%w: axes (%d, %d) repeat an axis", ErrInvalidAxisSpec, s.a, s.b)
		}
		return 1<<s.a | 1<<s.b, nil
	}
	return 0, fmt.Errorf("%w: unknown selection", ErrInvalidAxisSpec)
}
