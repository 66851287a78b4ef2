package domain

// StatusEffect - временный эффект, срабатывающий в начале каждого хода сущности.
type StatusEffect struct {
	Name      string `json:"name"`
	TurnsLeft int    `json:"turnsLeft"`
	Stackable bool   `json:"stackable"`
	// AddStack: при повторном наложении стакаемого эффекта ходы складываются,
	// иначе сбрасываются к значению нового эффекта.
	AddStack      bool `json:"addStack"`
	DamagePerTurn int  `json:"damagePerTurn"`
}

const StatusFire = "fire"

// NewFireEffect - горение: 5 ходов по 5 урона
func NewFireEffect() *StatusEffect {
	return &StatusEffect{
		Name:          StatusFire,
		TurnsLeft:     5,
		DamagePerTurn: 5,
	}
}

// Find ищет эффект по имени
func (c *StatusEffectComponent) Find(name string) *StatusEffect {
	if c == nil {
		return nil
	}
	for _, eff := range c.Effects {
		if eff.Name == name {
			return eff
		}
	}
	return nil
}
