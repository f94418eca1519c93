package components

import (
	cfg "github.com/automoto/gamex/config"
	"github.com/yohamta/donburi"
)

// ChargeTier is the charge level of a held shot.
type ChargeTier int

const (
	ChargeNone ChargeTier = iota
	ChargeHalf
	ChargeFull
)

func (c ChargeTier) String() string {
	switch c {
	case ChargeHalf:
		return "HALF"
	case ChargeFull:
		return "FULL"
	}
	return "NONE"
}

// Key returns the config tier key. Unknown tiers map to the base tier.
func (c ChargeTier) Key() string {
	switch c {
	case ChargeHalf:
		return cfg.TierHalf
	case ChargeFull:
		return cfg.TierFull
	}
	return cfg.TierNone
}

// WeaponData is the charge shot state of an actor.
type WeaponData struct {
	Charge     ChargeTier
	ChargeTime float64

	// ReleasedTier is the tier at the last release. It stays until the next
	// press so the animation selector can see what was fired.
	ReleasedTier ChargeTier
	ReleaseTime  float64 // seconds since fire was last released

	CanFire  bool
	LockTime float64 // button-up time counted toward reopening CanFire

	Shots int
}

var Weapon = donburi.NewComponentType[WeaponData]()
