package systems

import (
	"fmt"

	"shadowcrawl/internal/domain"
	"shadowcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyAttack - attacker бьет target своим оружием.
// Возвращает строку для лога и признак смерти цели.
// Удаление погибшего (карта, очередь ходов) делает движок.
func ApplyAttack(attacker, target *domain.Entity) (string, bool) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if target.Health == nil {
		combatLogger.Debug("Attack ignored: target has no HealthComponent.")
		return "", false
	}
	if target.Health.IsDead() {
		combatLogger.Debug("Attack ignored: target is already dead.")
		return "", false
	}

	damage := 0
	if attacker.Weapon != nil {
		damage = attacker.Weapon.Damage
	}

	hpBefore := target.Health.HP
	target.Health.TakeDamage(damage)
	died := target.Health.IsDead()

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Health.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	msg := fmt.Sprintf("%s hit %s for %d damage", attacker.Name, target.Name, damage)
	if died {
		msg += " and killed it with that attack!"
	}
	return msg, died
}
