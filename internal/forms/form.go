package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

type State int

const (
	Closed State = iota
	Editing
	Submitting
)

// Values is the field-name -> value map handed to the submit callback.
type Values map[string]any

// Result is what a submit callback reports back. Success=false keeps the
// form open with Message on display.
type Result struct {
	Success bool
	Message string
	Data    view.Record
}

// SubmitFunc persists the collected values. target is the edit target, nil
// on create. A returned error is reserved for session expiry and aborts the
// lifecycle without closing the form.
type SubmitFunc func(ctx context.Context, values Values, target view.Record) (Result, error)

type Form struct {
	fields []Field
	submit SubmitFunc

	// OnSuccess fires exactly once per successful submit, after the form
	// has closed.
	OnSuccess func(Result)

	state   State
	values  Values
	target  view.Record
	message string
}

func New(fields []Field, submit SubmitFunc) *Form {
	return &Form{fields: fields, submit: submit, state: Closed}
}

func (f *Form) State() State    { return f.state }
func (f *Form) Message() string { return f.message }
func (f *Form) Fields() []Field { return f.fields }

// Open seeds the form and moves it to Editing. Seed order per field: the
// edit target's matching key, else the descriptor default, else the kind's
// zero value.
func (f *Form) Open(target view.Record) {
	f.target = target
	f.message = ""
	f.values = make(Values, len(f.fields))
	for _, fld := range f.fields {
		if target != nil {
			if v, ok := target[fld.Name]; ok && v != nil {
				f.values[fld.Name] = v
				continue
			}
		}
		if fld.Default != nil {
			f.values[fld.Name] = fld.Default
			continue
		}
		f.values[fld.Name] = zeroValue(fld.Kind)
	}
	f.state = Editing
}

func (f *Form) Value(name string) any { return f.values[name] }

// Values returns a copy; submit callbacks must not see later edits.
func (f *Form) Values() Values {
	out := make(Values, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Form) Set(name string, v any) error {
	if f.state != Editing {
		return fmt.Errorf("forms: form is not editable")
	}
	if _, ok := f.values[name]; !ok {
		return fmt.Errorf("forms: unknown field %q", name)
	}
	f.values[name] = v
	return nil
}

// AddFile attaches an upload. A single-file field holds the latest handle;
// a multi-file field accumulates.
func (f *Form) AddFile(name string, fr FileRef) error {
	if f.state != Editing {
		return fmt.Errorf("forms: form is not editable")
	}
	fld, ok := f.field(name)
	if !ok {
		return fmt.Errorf("forms: unknown field %q", name)
	}
	switch fld.Kind {
	case File:
		f.values[name] = &fr
	case FileMultiple:
		frs, _ := f.values[name].([]FileRef)
		f.values[name] = append(frs, fr)
	default:
		return fmt.Errorf("forms: field %q takes no files", name)
	}
	return nil
}

// RemoveFile splices the file at index out of a multi-file field, or clears
// a single-file field (index ignored).
func (f *Form) RemoveFile(name string, index int) error {
	if f.state != Editing {
		return fmt.Errorf("forms: form is not editable")
	}
	fld, ok := f.field(name)
	if !ok {
		return fmt.Errorf("forms: unknown field %q", name)
	}
	switch fld.Kind {
	case File:
		f.values[name] = (*FileRef)(nil)
	case FileMultiple:
		frs, _ := f.values[name].([]FileRef)
		if index < 0 || index >= len(frs) {
			return fmt.Errorf("forms: file index %d out of range", index)
		}
		f.values[name] = append(frs[:index:index], frs[index+1:]...)
	default:
		return fmt.Errorf("forms: field %q takes no files", name)
	}
	return nil
}

// Close dismisses the form. Inert while a submit is in flight.
func (f *Form) Close() bool {
	if f.state == Submitting {
		return false
	}
	f.state = Closed
	f.message = ""
	f.target = nil
	return true
}

// Submit runs the lifecycle: required check, custom validators, callback.
// Validation failures never reach the callback. The returned error is only
// ever the callback's (session expiry); every other outcome lands in the
// form state.
func (f *Form) Submit(ctx context.Context) error {
	if f.state != Editing {
		return fmt.Errorf("forms: submit on a %s form", f.state)
	}

	var missing []string
	for _, fld := range f.fields {
		if fld.Required && empty(fld.Kind, f.values[fld.Name]) {
			missing = append(missing, fld.Label)
		}
	}
	if len(missing) > 0 {
		f.message = "Please fill in: " + strings.Join(missing, ", ")
		return nil
	}

	for _, fld := range f.fields {
		if fld.Validate == nil {
			continue
		}
		if msg := fld.Validate(f.values[fld.Name]); msg != "" {
			f.message = msg
			return nil
		}
	}

	f.state = Submitting
	res, err := f.submit(ctx, f.Values(), f.target)
	if err != nil {
		f.state = Editing
		return err
	}
	if !res.Success {
		f.state = Editing
		f.message = res.Message
		if f.message == "" {
			f.message = "request failed"
		}
		return nil
	}

	f.state = Closed
	f.message = ""
	f.target = nil
	if f.OnSuccess != nil {
		f.OnSuccess(res)
	}
	return nil
}

func (f *Form) field(name string) (Field, bool) {
	for _, fld := range f.fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}
