// pkg/entity/mission.go
package entity

// ObjectiveKind selects which objective fields are meaningful
type ObjectiveKind string

const (
	ObjectiveHunt    ObjectiveKind = "HUNT"
	ObjectiveCollect ObjectiveKind = "COLLECT"
)

// MissionStatus tracks whether the reward has been paid
type MissionStatus string

const (
	MissionInProgress MissionStatus = "IN_PROGRESS"
	MissionCompleted  MissionStatus = "COMPLETED"
)

// Objective is a tagged variant. HUNT uses the target fields, COLLECT uses
// Amount and Collected.
type Objective struct {
	Kind         ObjectiveKind
	TargetName   string
	TargetID     ID
	TargetSystem string
	Amount       int
	Collected    int
}

// Reward is paid to the ship the moment a mission completes
type Reward struct {
	Dollars  int
	Missiles int
}

// Mission is an accepted contract
type Mission struct {
	ID          string
	Title       string
	Description string
	Objective   Objective
	Reward      Reward
	Status      MissionStatus
}

// Active reports whether the mission is still in progress
func (m *Mission) Active() bool {
	return m != nil && m.Status == MissionInProgress
}

// Hunts reports whether the mission is an active hunt for the given target
func (m *Mission) Hunts(target ID) bool {
	return m.Active() && m.Objective.Kind == ObjectiveHunt && m.Objective.TargetID == target
}

// HuntsIn reports whether the mission's hunt target lives in the system
func (m *Mission) HuntsIn(systemID string) bool {
	return m.Active() && m.Objective.Kind == ObjectiveHunt && m.Objective.TargetSystem == systemID
}

// RecordCollection counts one collected resource toward a COLLECT objective.
// It returns true only on the pickup that first meets the required amount.
func (m *Mission) RecordCollection() bool {
	if !m.Active() || m.Objective.Kind != ObjectiveCollect {
		return false
	}
	m.Objective.Collected++
	if m.Objective.Collected >= m.Objective.Amount {
		m.Status = MissionCompleted
		return true
	}
	return false
}

// Complete marks the mission done. It returns false if it already was.
func (m *Mission) Complete() bool {
	if !m.Active() {
		return false
	}
	m.Status = MissionCompleted
	return true
}

// Pay credits the mission reward to the ship
func (r Reward) Pay(s *Ship) {
	s.Dollars += r.Dollars
	s.Missiles += r.Missiles
}

// Clone returns an independent copy
func (m *Mission) Clone() *Mission {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
