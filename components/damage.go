package components

import (
	"github.com/automoto/gamex/scheduler"
	"github.com/yohamta/donburi"
)

// DamagePhase is the post-hit timeline: Clear, then Locked, then Protected.
type DamagePhase int

const (
	DamageClear DamagePhase = iota
	DamageLocked
	DamageProtected
)

func (p DamagePhase) String() string {
	switch p {
	case DamageLocked:
		return "locked"
	case DamageProtected:
		return "protected"
	}
	return "clear"
}

type DamageData struct {
	Phase            DamagePhase
	DamagedThisFrame bool

	LockTimer    *scheduler.Timer
	ProtectTimer *scheduler.Timer
}

func (d *DamageData) Locked() bool    { return d.Phase == DamageLocked }
func (d *DamageData) Protected() bool { return d.Phase == DamageProtected }

// StopTimers cancels both phase timers.
func (d *DamageData) StopTimers() {
	d.LockTimer.Stop()
	d.ProtectTimer.Stop()
	d.LockTimer = nil
	d.ProtectTimer = nil
}

var Damage = donburi.NewComponentType[DamageData]()
