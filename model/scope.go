package model

import (
	"fmt"
	"strings"
)

// ScopeKind selects which models a model physically reacts to
type ScopeKind uint8

const (
	ScopeSameLayer       ScopeKind = iota // default, no category filter
	ScopeNone                             // never resolves collisions as base
	ScopeGlobal                           // no category filter
	ScopeSingleModelType                  // only targets of one category
)

// CollisionScope is a scope kind plus the target category for ScopeSingleModelType
type CollisionScope struct {
	Kind   ScopeKind
	Target Category
}

// SingleModelType builds a scope restricted to one target category
func SingleModelType(target Category) CollisionScope {
	return CollisionScope{Kind: ScopeSingleModelType, Target: target}
}

// Accepts reports whether a model with this scope resolves direct collisions against target
// Only the base's scope is consulted; target scope is irrelevant
func (s CollisionScope) Accepts(target *Model) bool {
	switch s.Kind {
	case ScopeNone:
		return false
	case ScopeSingleModelType:
		return target != nil && target.Category == s.Target
	default:
		return target != nil
	}
}

func (s CollisionScope) String() string {
	switch s.Kind {
	case ScopeNone:
		return "NONE"
	case ScopeGlobal:
		return "GLOBAL"
	case ScopeSingleModelType:
		return "SINGLE_MODEL_TYPE(" + s.Target.String() + ")"
	}
	return "SAME_LAYER"
}

// ParseScope converts a table entry to a scope; target is only read for single_model_type
func ParseScope(kind, target string) (CollisionScope, error) {
	switch strings.ToUpper(strings.TrimSpace(kind)) {
	case "", "SAME_LAYER":
		return CollisionScope{Kind: ScopeSameLayer}, nil
	case "NONE":
		return CollisionScope{Kind: ScopeNone}, nil
	case "GLOBAL":
		return CollisionScope{Kind: ScopeGlobal}, nil
	case "SINGLE_MODEL_TYPE":
		c, err := ParseCategory(target)
		if err != nil {
			return CollisionScope{}, err
		}
		return SingleModelType(c), nil
	}
	return CollisionScope{}, fmt.Errorf("unknown collision scope %q", kind)
}
