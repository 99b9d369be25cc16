package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Sticky pins a column to one edge of a horizontally scrolled table.
type Sticky string

const (
	StickyNone  Sticky = ""
	StickyLeft  Sticky = "left"
	StickyRight Sticky = "right"
)

// Valid reports whether s is a known sticky value.
func (s Sticky) Valid() bool {
	switch s {
	case StickyNone, StickyLeft, StickyRight:
		return true
	}
	return false
}

// Responsive controls the minimum terminal width at which a column is shown.
type Responsive string

const (
	ResponsiveAlways Responsive = "always"
	ResponsiveSmall  Responsive = "sm"
	ResponsiveMedium Responsive = "md"
	ResponsiveLarge  Responsive = "lg"
)

// Valid reports whether r is a known responsive value. Empty means always.
func (r Responsive) Valid() bool {
	switch r {
	case "", ResponsiveAlways, ResponsiveSmall, ResponsiveMedium, ResponsiveLarge:
		return true
	}
	return false
}

// MinTerminalWidth is the narrowest terminal that still shows the column.
func (r Responsive) MinTerminalWidth() int {
	switch r {
	case ResponsiveSmall:
		return 60
	case ResponsiveMedium:
		return 90
	case ResponsiveLarge:
		return 120
	default:
		return 0
	}
}

// Column describes one table column.
type Column struct {
	Key        string     `yaml:"key" json:"key"`
	Label      string     `yaml:"label" json:"label"`
	Sortable   bool       `yaml:"sortable" json:"sortable"`
	Sticky     Sticky     `yaml:"sticky,omitempty" json:"sticky,omitempty"`
	Responsive Responsive `yaml:"responsive,omitempty" json:"responsive,omitempty"`
	Width      string     `yaml:"width,omitempty" json:"width,omitempty"`
	MinWidth   string     `yaml:"min_width,omitempty" json:"min_width,omitempty"`
}

// Validate returns every problem with the descriptor, or nil.
func (c Column) Validate() []error {
	var errs []error
	if c.Key == "" {
		errs = append(errs, fmt.Errorf("%w: key is required (label %q)", ErrInvalidColumn, c.Label))
	}
	if c.Label == "" {
		errs = append(errs, fmt.Errorf("%w: label is required (key %q)", ErrInvalidColumn, c.Key))
	}
	if !c.Sticky.Valid() {
		errs = append(errs, fmt.Errorf("%w: column %q has invalid sticky value %q", ErrInvalidColumn, c.Key, c.Sticky))
	}
	if !c.Responsive.Valid() {
		errs = append(errs, fmt.Errorf("%w: column %q has invalid responsive value %q", ErrInvalidColumn, c.Key, c.Responsive))
	}
	if _, ok := ParseCells(c.Width); c.Width != "" && !ok {
		errs = append(errs, fmt.Errorf("%w: column %q has invalid width %q", ErrInvalidColumn, c.Key, c.Width))
	}
	if _, ok := ParseCells(c.MinWidth); c.MinWidth != "" && !ok {
		errs = append(errs, fmt.Errorf("%w: column %q has invalid min width %q", ErrInvalidColumn, c.Key, c.MinWidth))
	}
	return errs
}

// ParseCells parses a width such as "12" or "12ch" into a cell count.
func ParseCells(s string) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "ch")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
