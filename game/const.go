package game

// Gameplay tuning constants. These form the configuration surface of the
// simulation core: speeds, radii, spawn geometry and the legal flight box.
const (
	// PlayerSpeedBase is the forward speed at the start of a run.
	PlayerSpeedBase = 50.0
	// PlayerSpeedMax caps the forward speed; each hoop adds 1 up to this.
	PlayerSpeedMax = 100.0
	// PlayerAccel is the flat speed boost while the accelerate intent is held.
	PlayerAccel = 30.0
	// PlayerTurnSpeed is the lateral steering rate in units per second.
	// Vertical steering runs at half this rate.
	PlayerTurnSpeed = 60.0

	// TouchTurnFactor scales steering down when the touch control layout is
	// active, since a thumb pad is far less precise than arrow keys.
	TouchTurnFactor = 0.6
)

// Track geometry.
const (
	HoopRadius    = 8.0
	HoopThickness = 1.0

	// SpawnDistance is the spawn horizon: how far ahead of the player new
	// track objects are generated.
	SpawnDistance = 300.0
	// RemoveDistance is how far behind the player an object may fall before
	// it is destroyed and removed from the active set.
	RemoveDistance = 50.0
	// HoopSpawnInterval is the longitudinal gap between consecutive hoop slots.
	HoopSpawnInterval = 100.0

	// Hoop placement ranges within a slot.
	HoopMinX = -40.0
	HoopMaxX = 40.0
	HoopMinY = 5.0
	HoopMaxY = 35.0
)

// Legal flight box, enforced by a hard clamp every frame.
const (
	PlayerMinX = -100.0
	PlayerMaxX = 100.0
	PlayerMinY = 1.0
	PlayerMaxY = 50.0
)

// Collision extents. Obstacles are checked as axis-aligned footprints and
// hoops as a radius plus a plane tolerance.
const (
	WallHalfWidth  = 10.0
	WallHalfHeight = 7.5
	LogHalfWidth   = 15.0
	LogHalfHeight  = 2.0

	// FanRange is the radius of a fan's influence; its push scales linearly
	// from full at the center to zero at this distance.
	FanRange = 10.0

	// HoopPlaneTolerance is how close to the hoop's plane the player must be
	// for a pass to count, independent of being inside the radius.
	HoopPlaneTolerance = 1.0
	// MissTolerance is how far past an unresolved hoop the player may drift
	// before it is scored as a miss.
	MissTolerance = 1.0
	// ProximityWindow bounds the longitudinal distance at which per-object
	// proximity checks run at all.
	ProximityWindow = 5.0
)

// Miss limit and banking.
const (
	MaxMisses = 3

	// BankAngle is the target bank in radians while a lateral intent is held.
	BankAngle = 0.5
	// BankGain is the exponential damping gain toward the bank target.
	BankGain = 5.0
)

// Obstacle spawn chance: ObstacleChanceBase + ObstacleChancePerScore*score,
// capped at ObstacleChanceMax.
const (
	ObstacleChanceBase     = 0.2
	ObstacleChancePerScore = 0.05
	ObstacleChanceMax      = 0.8
)

// Wall patrol speeds (units per second, sign chosen at spawn).
const (
	WallSpeedMin = 10.0
	WallSpeedMax = 25.0
	// WallBounceRange is the lateral drift from the player's current position
	// at which a wall reverses direction. The reference point is the player,
	// not the wall's spawn position, so the patrol is player-relative.
	WallBounceRange = 50.0
)

// Fan push force range (lateral units per proximity hit, before falloff).
const (
	FanForceMin = 0.5
	FanForceMax = 1.5
)

// Explosion effect.
const (
	ExplosionParticles = 24
	ExplosionLifetime  = 1.2
	ExplosionSpeedMin  = 5.0
	ExplosionSpeedMax  = 30.0
)
