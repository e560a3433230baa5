// pkg/entity/upgrade.go
package entity

import (
	"fmt"
	"math"
)

// UpgradeKind names one of the ship's five independent upgrade tracks
type UpgradeKind string

const (
	UpgradeHull    UpgradeKind = "hull"
	UpgradeEngine  UpgradeKind = "engine"
	UpgradeWeapon  UpgradeKind = "weapon"
	UpgradeAmmoCap UpgradeKind = "ammoCap"
	UpgradeMagnet  UpgradeKind = "magnet"
)

// MaxUpgradeLevel is the cap shared by every track
const MaxUpgradeLevel = 5

// UpgradeKinds lists every track in shop order
var UpgradeKinds = []UpgradeKind{UpgradeHull, UpgradeEngine, UpgradeWeapon, UpgradeAmmoCap, UpgradeMagnet}

// ParseUpgradeKind converts a name into an UpgradeKind
func ParseUpgradeKind(s string) (UpgradeKind, error) {
	for _, k := range UpgradeKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown upgrade kind %q", s)
}

// UpgradeCost is the price of raising a track from level to level+1
func UpgradeCost(kind UpgradeKind, level int) int {
	l := float64(level)
	switch kind {
	case UpgradeHull:
		return 50 + int(math.Floor(l*l*20))
	case UpgradeEngine:
		return 60 + int(math.Floor(l*l*18))
	case UpgradeWeapon:
		return 80 + int(math.Floor(l*l*25))
	case UpgradeAmmoCap:
		return 40 + int(math.Floor(math.Pow(l, 1.8)*20))
	case UpgradeMagnet:
		return 30 + level*30
	default:
		return 0
	}
}

// Levels holds the current level of every upgrade track
type Levels struct {
	Hull    int
	Engine  int
	Weapon  int
	AmmoCap int
	Magnet  int
}

// BaseLevels returns a fresh ship's levels
func BaseLevels() Levels {
	return Levels{Hull: 1, Engine: 1, Weapon: 1, AmmoCap: 1, Magnet: 1}
}

// Of returns the level of a single track
func (l Levels) Of(kind UpgradeKind) int {
	switch kind {
	case UpgradeHull:
		return l.Hull
	case UpgradeEngine:
		return l.Engine
	case UpgradeWeapon:
		return l.Weapon
	case UpgradeAmmoCap:
		return l.AmmoCap
	case UpgradeMagnet:
		return l.Magnet
	default:
		return 0
	}
}

// Raise returns the levels with one track incremented
func (l Levels) Raise(kind UpgradeKind) Levels {
	switch kind {
	case UpgradeHull:
		l.Hull++
	case UpgradeEngine:
		l.Engine++
	case UpgradeWeapon:
		l.Weapon++
	case UpgradeAmmoCap:
		l.AmmoCap++
	case UpgradeMagnet:
		l.Magnet++
	}
	return l
}

// Stat curves. Each is a pure function of a single level so upgrades
// take effect on the very next tick.

func MaxHealthAt(hull int) float64 {
	return ShipMaxHealth + float64(hull-1)*25
}

func ThrustAt(engine int) float64 {
	return ShipThrust * (1 + float64(engine-1)*0.15)
}

func TurnSpeedAt(engine int) float64 {
	return ShipTurnSpeed * (1 + float64(engine-1)*0.15)
}

func WeaponCooldownAt(weapon int) float64 {
	return ProjectileCooldown * (1 - float64(weapon-1)*0.1)
}

func MaxAmmoAt(ammoCap int) float64 {
	return ShipMaxAmmo + float64(ammoCap-1)*5
}

func MagnetRangeAt(magnet int) float64 {
	return ResourceMagnetRange + float64(magnet-1)*40
}
