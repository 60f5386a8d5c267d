// Package resolver statically evaluates feature-flag conditionals in C-like
// source text and rewrites the text to keep only the surviving branches.
package resolver

import (
	"sort"
	"strings"
)

// Class is the static classification of a feature identifier.
type Class int

// Available Class values.
const (
	Unknown Class = iota
	AlwaysOn
	AlwaysOff
)

func (c Class) String() string {
	switch c {
	case AlwaysOn:
		return "always-on"
	case AlwaysOff:
		return "always-off"
	case Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// ConflictKind describes a problem found in the classification tables.
type ConflictKind string

const (
	// ConflictBothSets means an identifier is listed as both enabled and
	// disabled. Always-On wins.
	ConflictBothSets ConflictKind = "both-sets"
	// ConflictNearDuplicate means two identifiers differ by a single inserted
	// character, which usually points at a typo in the table.
	ConflictNearDuplicate ConflictKind = "near-duplicate"
)

// Conflict is a configuration warning produced while building a Classifier.
type Conflict struct {
	Kind       ConflictKind
	Identifier string
	Other      string
}

func (c Conflict) String() string {
	switch c.Kind {
	case ConflictBothSets:
		return c.Identifier + " is both enabled and disabled; treating it as enabled"
	case ConflictNearDuplicate:
		return c.Identifier + " and " + c.Other + " differ by a single character"
	default:
		return c.Identifier
	}
}

// Classifier maps feature identifiers to their fixed Class. It is immutable
// after construction and safe for concurrent use.
type Classifier struct {
	on  map[string]struct{}
	off map[string]struct{}
}

// NewClassifier builds a Classifier from the enabled and disabled sets and
// reports any conflicts found between them.
func NewClassifier(enabled, disabled []string) (*Classifier, []Conflict) {
	c := &Classifier{
		on:  toSet(enabled),
		off: toSet(disabled),
	}

	var conflicts []Conflict

	for _, id := range sortedKeys(c.on) {
		if _, dup := c.off[id]; dup {
			delete(c.off, id)
			conflicts = append(conflicts, Conflict{Kind: ConflictBothSets, Identifier: id})
		}
	}

	all := append(sortedKeys(c.on), sortedKeys(c.off)...)
	sort.Strings(all)

	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if oneInsertApart(a, b) {
				conflicts = append(conflicts, Conflict{Kind: ConflictNearDuplicate, Identifier: a, Other: b})
			}
		}
	}

	return c, conflicts
}

// Classify reports the Class of id. Identifiers in neither set are Unknown.
func (c *Classifier) Classify(id string) Class {
	if _, ok := c.on[id]; ok {
		return AlwaysOn
	}

	if _, ok := c.off[id]; ok {
		return AlwaysOff
	}

	return Unknown
}

// Enabled returns the effective Always-On identifiers, sorted.
func (c *Classifier) Enabled() []string {
	return sortedKeys(c.on)
}

// Disabled returns the effective Always-Off identifiers, sorted.
func (c *Classifier) Disabled() []string {
	return sortedKeys(c.off)
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		set[id] = struct{}{}
	}

	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// oneInsertApart reports whether the longer string is the shorter one with
// exactly one extra character.
func oneInsertApart(a, b string) bool {
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(b)-len(a) != 1 {
		return false
	}

	i := 0
	for i < len(a) && a[i] == b[i] {
		i++
	}

	return a[i:] == b[i+1:]
}
