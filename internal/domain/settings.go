package domain

// Settings holds the per-user configuration read by the timer engine to
// seed default countdowns and the per-second cost rate for new projects.
type Settings struct {
	HourlyRate       float64 `json:"hourlyRate"`
	PomodoroDuration int     `json:"pomodoroDuration"` // minutes
	BreakTime        int     `json:"breakTime"`        // minutes
	Currency         string  `json:"currency"`
	Initialized      bool    `json:"initialized"`

	SimpleTemplates  []SimpleTemplate  `json:"simpleTemplates,omitempty"`
	ComplexTemplates []ComplexTemplate `json:"complexTemplates,omitempty"`
}

// SimpleTemplate pre-fills a simple project's name and price at creation.
type SimpleTemplate struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DefaultPrice float64 `json:"defaultPrice"`
}

// ComplexTemplate pre-fills a complex project. Deliverable names are
// instantiated with fresh IDs and zeroed counters per project instance.
type ComplexTemplate struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	DefaultPrice float64     `json:"defaultPrice"`
	Deliverables []string    `json:"deliverables,omitempty"`
	ExtraCosts   []ExtraCost `json:"extraCosts,omitempty"`
}

// Session length options offered by the countdown selector, in minutes.
var PomodoroOptions = []int{25, 60, 120}

// Break length options, in minutes.
var BreakOptions = []int{5, 10}

// DefaultSettings returns the settings a fresh account starts with.
func DefaultSettings() Settings {
	return Settings{
		HourlyRate:       50,
		PomodoroDuration: 25,
		BreakTime:        5,
		Currency:         "BRL",
		Initialized:      false,
	}
}

// Normalize coerces malformed numeric settings and fills gaps left by
// older persisted documents.
func (s *Settings) Normalize() {
	s.HourlyRate = SanitizeFloat(s.HourlyRate)
	if s.PomodoroDuration <= 0 {
		s.PomodoroDuration = 25
	}
	if s.BreakTime <= 0 {
		s.BreakTime = 5
	}
	if s.Currency == "" {
		s.Currency = "BRL"
	}
	for i := range s.SimpleTemplates {
		s.SimpleTemplates[i].DefaultPrice = SanitizeFloat(s.SimpleTemplates[i].DefaultPrice)
	}
	for i := range s.ComplexTemplates {
		s.ComplexTemplates[i].DefaultPrice = SanitizeFloat(s.ComplexTemplates[i].DefaultPrice)
		for j := range s.ComplexTemplates[i].ExtraCosts {
			s.ComplexTemplates[i].ExtraCosts[j].Value = SanitizeFloat(s.ComplexTemplates[i].ExtraCosts[j].Value)
		}
	}
}

// FindSimpleTemplate returns the simple template with the given ID, or nil.
func (s *Settings) FindSimpleTemplate(id string) *SimpleTemplate {
	for i := range s.SimpleTemplates {
		if s.SimpleTemplates[i].ID == id {
			return &s.SimpleTemplates[i]
		}
	}
	return nil
}

// FindComplexTemplate returns the complex template with the given ID, or nil.
func (s *Settings) FindComplexTemplate(id string) *ComplexTemplate {
	for i := range s.ComplexTemplates {
		if s.ComplexTemplates[i].ID == id {
			return &s.ComplexTemplates[i]
		}
	}
	return nil
}
