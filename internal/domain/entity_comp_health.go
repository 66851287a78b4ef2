package domain

// TakeDamage уменьшает HP, но не ниже нуля.
func (h *HealthComponent) TakeDamage(amount int) {
	h.HP -= amount
	if h.HP < 0 {
		h.HP = 0
	}
}

func (h *HealthComponent) IsDead() bool {
	return h.HP <= 0
}
