package model

// EffectKind is a gameplay consequence of a direct collision
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectDamage
	EffectDestroy
)

func (k EffectKind) String() string {
	switch k {
	case EffectDamage:
		return "DAMAGE"
	case EffectDestroy:
		return "DESTROY"
	}
	return "NONE"
}

// EffectTarget selects which side of the contact an effect applies to
type EffectTarget uint8

const (
	TargetSelf  EffectTarget = iota // the base model
	TargetOther                     // the model it hit
)

// Effect is the result of resolving one direct contact, interpreted by the layer
type Effect struct {
	Kind   EffectKind
	Target EffectTarget
	Amount int
}

// Damage returns an effect subtracting amount health from the other model
func Damage(amount int) Effect {
	return Effect{Kind: EffectDamage, Target: TargetOther, Amount: amount}
}

// DestroySelf returns an effect destroying the base model
func DestroySelf() Effect {
	return Effect{Kind: EffectDestroy, Target: TargetSelf}
}

// EffectResolver decides the effects of a direct contact between self and other
type EffectResolver interface {
	Resolve(self, other *Model) []Effect
}

// DeclaredEffects resolves contacts to the effects declared on the base model
type DeclaredEffects struct{}

// Resolve implements EffectResolver
func (DeclaredEffects) Resolve(self, other *Model) []Effect {
	return ResolveContact(self, other)
}

// ResolveContact returns the effects self declares for a direct hit on other
func ResolveContact(self, other *Model) []Effect {
	if self == nil || other == nil || len(self.OnHit) == 0 {
		return nil
	}
	out := make([]Effect, len(self.OnHit))
	copy(out, self.OnHit)
	return out
}

// ApplyEffect performs e for the contact self→other and reports whether anything changed
// Damage only lands on characters and kills at health below 1; destroy is a forward state transition
func ApplyEffect(e Effect, self, other *Model) bool {
	target := self
	if e.Target == TargetOther {
		target = other
	}
	if target == nil {
		return false
	}
	switch e.Kind {
	case EffectDamage:
		if target.character == nil {
			return false
		}
		target.ApplyDamage(e.Amount)
		// Death lands with the hit even when the target already ran its update this frame
		if target.character.Health < 1 {
			target.ModifyState(StateDestroyed)
		}
		return true
	case EffectDestroy:
		if target.State == StateDestroyed {
			return false
		}
		return target.ModifyState(StateDestroyed)
	}
	return false
}
