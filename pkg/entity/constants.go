// pkg/entity/constants.go
package entity

// World
const (
	WorldSize = 8000.0
	FrameMs   = 1000.0 / 60.0
)

// Ship
const (
	ShipMass               = 1.0
	ShipThrust             = 0.05
	ShipTurnSpeed          = 0.07
	ShipMaxHealth          = 100.0
	ShipMaxAmmo            = 20.0
	ShipAmmoRecharge       = 0.02
	ShipRadius             = 12.0
	ShipInvulnerableFrames = 120
	ShipDamping            = 0.998
	ShipAutoBrake          = 0.01
	ShipManualBrake        = 0.08
	ShipStopSpeed          = 0.05
)

// Player projectile
const (
	ProjectileSpeed    = 7.0
	ProjectileRadius   = 2.0
	ProjectileLifespan = 120
	ProjectileCooldown = 10.0
	ProjectileDamage   = 10.0
)

// Homing missile
const (
	MissileSpeed     = 4.0
	MissileTurnSpeed = 0.08
	MissileLifespan  = 400
	MissileDamage    = 100.0
	MissileRadius    = 5.0
)

// Pirate
const (
	PirateHealth          = 30.0
	PirateRadius          = 11.0
	PirateThrust          = 0.03
	PirateTurnSpeed       = 0.04
	PirateDetectionRange  = 1000.0
	PirateAttackRange     = 600.0
	PirateCooldown        = 120.0
	PirateProjectileSpeed = 4.0
	PirateFireTolerance   = 0.5
	EnemyProjectileRadius = 3.0
	EnemyProjectileDamage = 15.0
	MissionTargetHealth   = PirateHealth * 3
	MissionTargetRadius   = PirateRadius + 2
)

// Asteroids and drops
const (
	AsteroidBaseHealth  = 20.0
	AsteroidBaseMass    = 5.0
	CrystalDropChance   = 0.35
	ResourceRadius      = 5.0
	MissilePickupRadius = 8.0
	ExplosionLife       = 20
	ResourceMagnetRange = 180.0
	ResourceMagnetForce = 0.2
	ResourceMagnetDamp  = 0.99
	MaxResourceSpeed    = 5.0
)

// Ship contact damage by obstacle category
const (
	AsteroidContactDamage  = 10.0
	HostileContactDamage   = 20.0
	CelestialContactDamage = 50.0
	ContactBounceSpeed     = 2.0
)

// Economy and navigation
const (
	HyperjumpCost     = 5
	MaxGravityForHUD  = 0.25
	StationReach      = 80.0
	GateNudge         = 2.0
	StartingDollars   = 100
	SolSpawnOrbit     = 1800.0
	SectorSpawnOrbit  = 1600.0
	HostileSpawnInset = 200.0
)
