package engine

import (
	"github.com/hafprodutora/editcostV3/internal/domain"
)

func findProject(projects []*domain.Project, id string) (*domain.Project, error) {
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProjectNotFound
}

// Start flags the target project as running and, within the same write,
// clears the running flag on every other project. Starting one project
// always stops any other that was running, silently.
//
// A complex project cannot start without an active deliverable selected,
// and a concluded project is frozen.
func Start(projects []*domain.Project, id string) error {
	target, err := findProject(projects, id)
	if err != nil {
		return err
	}
	if target.Status == domain.StatusCompleted {
		return ErrProjectCompleted
	}
	if target.IsComplex() && target.ActiveDeliverableID == "" {
		return ErrNoActiveDeliverable
	}

	for _, p := range projects {
		p.IsTimerRunning = p.ID == id
	}
	// Once in editing, a project never reverts to paused.
	target.Status = domain.StatusInEditing
	return nil
}

// Pause stops the target project's timer. Status is left unchanged, so a
// project that reached in_editing stays there. Pausing an already-paused
// project is a no-op.
func Pause(projects []*domain.Project, id string) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	p.IsTimerRunning = false
	return nil
}

// Reset stops the timer and reseeds the countdown to the caller-chosen
// session length. Accrued time and cost are untouched: reset only affects
// the countdown, never billable state.
func Reset(projects []*domain.Project, id string, sessionMinutes int) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	p.IsTimerRunning = false
	p.PomodoroTimeLeft = domain.IntPtr(sessionMinutes * 60)
	return nil
}

// SetSessionDuration updates the countdown to minutes × 60 immediately.
// Usable only while the timer is not running.
func SetSessionDuration(projects []*domain.Project, id string, minutes int) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	if p.IsTimerRunning {
		return ErrTimerRunning
	}
	p.PomodoroTimeLeft = domain.IntPtr(minutes * 60)
	return nil
}

// SelectActiveDeliverable chooses which subtask receives tick time.
// Complex projects only, and only while the timer is not running. A
// pending deliverable moves to in_progress when selected.
func SelectActiveDeliverable(projects []*domain.Project, id, deliverableID string) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	if !p.IsComplex() {
		return ErrNotComplex
	}
	if p.IsTimerRunning {
		return ErrTimerRunning
	}
	d := p.FindDeliverable(deliverableID)
	if d == nil {
		return ErrDeliverableNotFound
	}
	p.ActiveDeliverableID = deliverableID
	if d.Status == domain.DeliverablePending {
		d.Status = domain.DeliverableInProgress
	}
	return nil
}

// ToggleDeliverableStatus flips a deliverable between done and pending.
// It has no effect on timer state or cost.
func ToggleDeliverableStatus(projects []*domain.Project, id, deliverableID string) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	d := p.FindDeliverable(deliverableID)
	if d == nil {
		return ErrDeliverableNotFound
	}
	if d.Status == domain.DeliverableDone {
		d.Status = domain.DeliverablePending
	} else {
		d.Status = domain.DeliverableDone
	}
	return nil
}

// AddDeliverable appends a subtask to a complex project while the timer
// is not running.
func AddDeliverable(projects []*domain.Project, id string, d domain.Deliverable) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	if !p.IsComplex() {
		return ErrNotComplex
	}
	if p.IsTimerRunning {
		return ErrTimerRunning
	}
	if d.Status == "" {
		d.Status = domain.DeliverablePending
	}
	p.Deliverables = append(p.Deliverables, d)
	return nil
}

// AddExtraCost attaches a flat charge and refreshes the cached total cost
// in the same write. Usable only while the timer is not running.
func AddExtraCost(projects []*domain.Project, id string, c domain.ExtraCost) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	if p.IsTimerRunning {
		return ErrTimerRunning
	}
	c.Value = domain.SanitizeFloat(c.Value)
	p.ExtraCosts = append(p.ExtraCosts, c)
	p.RecalculateCost()
	return nil
}

// RemoveExtraCost detaches a flat charge and refreshes the cached total
// cost in the same write. Usable only while the timer is not running.
func RemoveExtraCost(projects []*domain.Project, id, costID string) error {
	p, err := findProject(projects, id)
	if err != nil {
		return err
	}
	if p.IsTimerRunning {
		return ErrTimerRunning
	}
	for i, c := range p.ExtraCosts {
		if c.ID == costID {
			p.ExtraCosts = append(p.ExtraCosts[:i], p.ExtraCosts[i+1:]...)
			p.RecalculateCost()
			return nil
		}
	}
	return ErrExtraCostNotFound
}
