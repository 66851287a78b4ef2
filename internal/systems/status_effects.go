package systems

import (
	"fmt"
	"slices"

	"shadowcrawl/internal/domain"
)

// AddStatusEffect накладывает эффект.
// Эффект с тем же именем: стакаемый - добавляет ходы (AddStack) или сбрасывает их,
// нестакаемый - игнорируется.
func AddStatusEffect(e *domain.Entity, effect *domain.StatusEffect) bool {
	if e.Status == nil {
		e.Status = &domain.StatusEffectComponent{}
	}

	existing := e.Status.Find(effect.Name)
	if existing == nil {
		e.Status.Effects = append(e.Status.Effects, effect)
		return true
	}
	if !effect.Stackable {
		return false
	}

	if effect.AddStack {
		existing.TurnsLeft += effect.TurnsLeft
	} else {
		existing.TurnsLeft = effect.TurnsLeft
	}
	return true
}

// RemoveStatusEffect снимает эффект (по указателю)
func RemoveStatusEffect(e *domain.Entity, effect *domain.StatusEffect) bool {
	if e.Status == nil {
		return false
	}
	i := slices.Index(e.Status.Effects, effect)
	if i == -1 {
		return false
	}
	e.Status.Effects = slices.Delete(e.Status.Effects, i, i+1)
	return true
}

// UpdateStatusEffects срабатывает в начале хода сущности:
// каждый эффект наносит свой урон и тратит ход; закончившиеся снимаются.
// Возвращает строки для лога.
func UpdateStatusEffects(e *domain.Entity) []string {
	if e.Status == nil || len(e.Status.Effects) == 0 {
		return nil
	}

	var msgs []string
	kept := e.Status.Effects[:0]
	for _, eff := range e.Status.Effects {
		if eff.DamagePerTurn > 0 && e.Health != nil {
			e.Health.TakeDamage(eff.DamagePerTurn)
			msgs = append(msgs, fmt.Sprintf("%s took %d damage from %s", e.Name, eff.DamagePerTurn, eff.Name))
		}
		eff.TurnsLeft--
		if eff.TurnsLeft > 0 {
			kept = append(kept, eff)
		}
	}
	clear(e.Status.Effects[len(kept):])
	e.Status.Effects = kept
	return msgs
}
