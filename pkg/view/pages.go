package view

// Row is one rendered table row: the record id (for edit/delete actions)
// plus one cell string per header.
type Row struct {
	ID    string   `json:"id"`
	Cells []string `json:"cells"`
}

// ListPage is the view model every entity list screen answers with.
type ListPage struct {
	Title    string   `json:"title"`
	Headers  []string `json:"headers"`
	Rows     []Row    `json:"rows"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
	HasMore  bool     `json:"hasMore"`
	Message  string   `json:"message,omitempty"`
	Flash    *Flash   `json:"flash,omitempty"`
}

// FieldVM describes one form field for the widget layer.
type FieldVM struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Value    any      `json:"value,omitempty"`
}

type FormPage struct {
	Title  string    `json:"title"`
	Fields []FieldVM `json:"fields"`
	Target Record    `json:"target,omitempty"`
}

type LoginPage struct {
	Title      string            `json:"title"`
	RedirectTo string            `json:"redirectTo,omitempty"`
	Email      string            `json:"email,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	PageError  string            `json:"pageError,omitempty"`
	Flash      *Flash            `json:"flash,omitempty"`
}

type DashboardPage struct {
	Title     string `json:"title"`
	Admin     string `json:"admin"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Stats     Record `json:"stats"`
	Flash     *Flash `json:"flash,omitempty"`
}
