package domain

type ProjectType string

const (
	ProjectSimple  ProjectType = "simple"
	ProjectComplex ProjectType = "complex"
)

type ProjectStatus string

const (
	StatusPaused    ProjectStatus = "paused"
	StatusInEditing ProjectStatus = "in_editing"
	StatusCompleted ProjectStatus = "completed"
)

type DeliverableStatus string

const (
	DeliverablePending    DeliverableStatus = "pending"
	DeliverableInProgress DeliverableStatus = "in_progress"
	DeliverableDone       DeliverableStatus = "done"
)

// ValidProjectTypes is the canonical set of accepted project type strings.
var ValidProjectTypes = map[string]bool{
	"simple": true, "complex": true,
}
