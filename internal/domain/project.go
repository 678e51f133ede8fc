package domain

import (
	"math"
	"time"
)

// Project is one client engagement tracked for time and billable cost.
// Projects are persisted as part of the per-user state document, so every
// field carries a JSON tag and absent fields default to their zero value
// when older documents are read back.
type Project struct {
	ID     string        `json:"id"`
	Number int           `json:"number"`
	Name   string        `json:"name"`
	Client string        `json:"client"`
	Type   ProjectType   `json:"type"`
	Status ProjectStatus `json:"status"`
	Notes  string        `json:"notes,omitempty"`

	// HourlyRate is a snapshot of the user's global rate taken at creation.
	// It never changes afterwards, so billing stays stable when the user
	// edits their settings.
	HourlyRate     float64 `json:"hourlyRate"`
	FixedPrice     float64 `json:"fixedPrice"`
	EstimatedHours float64 `json:"estimatedHours"`

	// TotalCost is a cached derivation, refreshed on every tick and on
	// every extra-cost edit. It is never an independent source of truth.
	TotalCost float64 `json:"totalCost"`

	TimeSpentSeconds int  `json:"timeSpentSeconds"`
	PomodoroTimeLeft *int `json:"pomodoroTimeLeft,omitempty"`
	IsTimerRunning   bool `json:"isTimerRunning"`

	StartDate   time.Time  `json:"startDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// Complex-project extensions. Deliverables and extra costs are embedded,
	// not separately stored, so deleting a project needs no orphan cleanup.
	Deliverables        []Deliverable `json:"deliverables,omitempty"`
	ExtraCosts          []ExtraCost   `json:"extraCosts,omitempty"`
	ActiveDeliverableID string        `json:"activeDeliverableId,omitempty"`
}

// Deliverable is a named subtask of a complex project with its own tracked
// time. Tracked seconds are a reporting breakdown, not an alternate source
// of truth for cost.
type Deliverable struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	TrackedSeconds int               `json:"trackedSeconds"`
	Status         DeliverableStatus `json:"status"`
}

// ExtraCost is a flat one-time charge added verbatim into TotalCost,
// never time-scaled.
type ExtraCost struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// IsComplex reports whether the project decomposes into deliverables.
func (p *Project) IsComplex() bool {
	return p.Type == ProjectComplex
}

// ExtraCostTotal sums the flat add-on charges, sanitizing each value.
func (p *Project) ExtraCostTotal() float64 {
	var total float64
	for _, c := range p.ExtraCosts {
		total += SanitizeFloat(c.Value)
	}
	return total
}

// RecalculateCost refreshes the cached TotalCost from its inputs:
// timeSpentSeconds/3600 × hourlyRate + the extra-cost total.
func (p *Project) RecalculateCost() {
	hours := float64(p.TimeSpentSeconds) / 3600
	p.TotalCost = hours*SanitizeFloat(p.HourlyRate) + p.ExtraCostTotal()
}

// Profit is the agreed fixed price minus the accrued cost. The fixed price
// is used only here; it never gates timer behavior.
func (p *Project) Profit() float64 {
	return SanitizeFloat(p.FixedPrice) - SanitizeFloat(p.TotalCost)
}

// RemainingSeconds returns the current countdown value, seeding from the
// fallback session length (minutes) when the project has none persisted.
func (p *Project) RemainingSeconds(fallbackMinutes int) int {
	return IntFromPtrWithDefault(fallbackMinutes*60, p.PomodoroTimeLeft)
}

// FindDeliverable returns the deliverable with the given ID, or nil.
func (p *Project) FindDeliverable(id string) *Deliverable {
	for i := range p.Deliverables {
		if p.Deliverables[i].ID == id {
			return &p.Deliverables[i]
		}
	}
	return nil
}

// Normalize coerces malformed numeric state to zero so that arithmetic
// never propagates NaN or infinities, and clamps negative accumulators.
// It is applied after reading a persisted document and before cost math.
func (p *Project) Normalize() {
	p.HourlyRate = SanitizeFloat(p.HourlyRate)
	p.FixedPrice = SanitizeFloat(p.FixedPrice)
	p.EstimatedHours = SanitizeFloat(p.EstimatedHours)
	p.TotalCost = SanitizeFloat(p.TotalCost)
	if p.TimeSpentSeconds < 0 {
		p.TimeSpentSeconds = 0
	}
	if p.PomodoroTimeLeft != nil && *p.PomodoroTimeLeft < 0 {
		zero := 0
		p.PomodoroTimeLeft = &zero
	}
	for i := range p.Deliverables {
		if p.Deliverables[i].TrackedSeconds < 0 {
			p.Deliverables[i].TrackedSeconds = 0
		}
		if p.Deliverables[i].Status == "" {
			p.Deliverables[i].Status = DeliverablePending
		}
	}
	for i := range p.ExtraCosts {
		p.ExtraCosts[i].Value = SanitizeFloat(p.ExtraCosts[i].Value)
	}
	if p.Type == "" {
		p.Type = ProjectSimple
	}
	if p.Status == "" {
		p.Status = StatusPaused
	}
}

// SanitizeFloat maps NaN and infinities to zero.
func SanitizeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// IntPtr returns a pointer to v. Convenience for the optional countdown field.
func IntPtr(v int) *int {
	return &v
}
