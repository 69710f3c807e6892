package models

// Template is a reusable prefill for report submission forms, stored under
// the Templates namespace by name.
type Template struct {
	Name       string     `json:"name" validate:"required"`
	Type       ReportType `json:"type"`
	Frequency  Frequency  `json:"frequency,omitempty"`
	Tasks      string     `json:"tasks,omitempty"`
	Challenges string     `json:"challenges,omitempty"`
	Solutions  string     `json:"solutions,omitempty"`
}

func (t *Template) Validate() error {
	if err := reportValidate.Struct(t); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidReportType
	}
	return nil
}
