package model

import (
	"fmt"
	"strings"
)

// Category is the closed set of model kinds
type Category uint8

const (
	CategoryPlayer     Category = iota // reserved for the player
	CategoryEnemy                      // enemies, boss included
	CategoryTerrain                    // collidable, not killable
	CategoryProjectile                 // bullets
	categoryCount
)

// Categories lists all categories in declaration order
var Categories = [...]Category{CategoryPlayer, CategoryEnemy, CategoryTerrain, CategoryProjectile}

var categoryNames = [...]string{
	CategoryPlayer:     "PLAYER",
	CategoryEnemy:      "ENEMY",
	CategoryTerrain:    "TERRAIN",
	CategoryProjectile: "PROJECTILE",
}

func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Valid reports whether c is one of the declared categories
func (c Category) Valid() bool {
	return c < categoryCount
}

// ErrUnknownCategory is returned by ParseCategory for names outside the closed set
var ErrUnknownCategory = fmt.Errorf("unknown model category")

// ParseCategory converts a case-insensitive name to a Category
func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// State is the coarse lifecycle status, transitions are forward-only
type State uint8

const (
	StateNormal    State = iota // alive
	StateKilled                 // shot down, death animation pending
	StateDestroyed              // gone, removed on next GC pass
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "NORMAL"
	case StateKilled:
		return "KILLED"
	case StateDestroyed:
		return "DESTROYED"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// DestroyAction is the side effect requested when a model is garbage collected
type DestroyAction uint8

const (
	DestroyActionNone DestroyAction = iota
	DestroyActionSound
	DestroyActionGameOver
)

func (a DestroyAction) String() string {
	switch a {
	case DestroyActionSound:
		return "SOUND"
	case DestroyActionGameOver:
		return "GAME_OVER"
	}
	return "NONE"
}

// ParseDestroyAction converts a table name to a DestroyAction, empty means none
func ParseDestroyAction(s string) (DestroyAction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return DestroyActionNone, nil
	case "SOUND":
		return DestroyActionSound, nil
	case "GAME_OVER":
		return DestroyActionGameOver, nil
	}
	return DestroyActionNone, fmt.Errorf("unknown destroy action %q", s)
}
