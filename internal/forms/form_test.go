package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

func testFields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Kind: Text, Required: true},
		{Name: "price", Label: "Price", Kind: Number, Required: true},
		{Name: "description", Label: "Description", Kind: Textarea},
		{Name: "isActive", Label: "Active", Kind: Switch, Default: true},
	}
}

func acceptAll(ctx context.Context, values Values, target view.Record) (Result, error) {
	return Result{Success: true}, nil
}

func TestMissingRequiredCombinesLabels(t *testing.T) {
	called := false
	f := New(testFields(), func(ctx context.Context, values Values, target view.Record) (Result, error) {
		called = true
		return Result{Success: true}, nil
	})
	f.Open(nil)

	if err := f.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("submit callback ran despite missing required fields")
	}
	want := "Please fill in: Name, Price"
	if f.Message() != want {
		t.Errorf("Message = %q, want %q", f.Message(), want)
	}
	if f.State() != Editing {
		t.Errorf("State = %v, want Editing", f.State())
	}

	// filling one still reports the other
	if err := f.Set("name", "Widget"); err != nil {
		t.Fatal(err)
	}
	if err := f.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("submit callback ran despite a missing required field")
	}
	if f.Message() != "Please fill in: Price" {
		t.Errorf("Message = %q, want %q", f.Message(), "Please fill in: Price")
	}
}

func TestValidatorBlocksSubmit(t *testing.T) {
	fields := []Field{
		{Name: "amount", Label: "Amount", Kind: Number, Required: true, Validate: func(v any) string {
			if s, _ := v.(string); s == "-1" {
				return "Amount must be positive"
			}
			return ""
		}},
	}
	called := false
	f := New(fields, func(ctx context.Context, values Values, target view.Record) (Result, error) {
		called = true
		return Result{Success: true}, nil
	})
	f.Open(nil)
	_ = f.Set("amount", "-1")

	if err := f.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("submit callback ran despite failed validation")
	}
	if f.Message() != "Amount must be positive" {
		t.Errorf("Message = %q", f.Message())
	}
}

func TestSuccessClosesAndFiresOnSuccessOnce(t *testing.T) {
	fired := 0
	f := New(testFields(), acceptAll)
	f.OnSuccess = func(Result) { fired++ }
	f.Open(nil)
	_ = f.Set("name", "Widget")
	_ = f.Set("price", "10")

	if err := f.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if f.State() != Closed {
		t.Errorf("State = %v, want Closed", f.State())
	}
	if fired != 1 {
		t.Errorf("OnSuccess fired %d times, want 1", fired)
	}

	// a second submit on the closed form is rejected and does not re-fire
	if err := f.Submit(context.Background()); err == nil {
		t.Error("Submit on closed form succeeded, want error")
	}
	if fired != 1 {
		t.Errorf("OnSuccess fired %d times after closed re-submit, want 1", fired)
	}
}

func TestFailureKeepsFormOpen(t *testing.T) {
	f := New(testFields(), func(ctx context.Context, values Values, target view.Record) (Result, error) {
		return Result{Success: false, Message: "Product name already exists"}, nil
	})
	f.Open(nil)
	_ = f.Set("name", "Widget")
	_ = f.Set("price", "10")

	if err := f.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if f.State() != Editing {
		t.Errorf("State = %v, want Editing", f.State())
	}
	if f.Message() != "Product name already exists" {
		t.Errorf("Message = %q", f.Message())
	}

	// an empty failure message still gets a fallback
	f2 := New(testFields(), func(ctx context.Context, values Values, target view.Record) (Result, error) {
		return Result{Success: false}, nil
	})
	f2.Open(nil)
	_ = f2.Set("name", "x")
	_ = f2.Set("price", "1")
	_ = f2.Submit(context.Background())
	if f2.Message() != "request failed" {
		t.Errorf("Message = %q, want %q", f2.Message(), "request failed")
	}
}

func TestCallbackErrorPropagates(t *testing.T) {
	boom := errors.New("session expired")
	f := New(testFields(), func(ctx context.Context, values Values, target view.Record) (Result, error) {
		return Result{}, boom
	})
	f.Open(nil)
	_ = f.Set("name", "Widget")
	_ = f.Set("price", "10")

	if err := f.Submit(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if f.State() != Editing {
		t.Errorf("State = %v, want Editing after callback error", f.State())
	}
}

func TestOpenSeedingPrecedence(t *testing.T) {
	f := New(testFields(), acceptAll)

	// create: defaults and kind zeros
	f.Open(nil)
	if f.Value("name") != "" {
		t.Errorf("name seed = %v, want empty", f.Value("name"))
	}
	if f.Value("isActive") != true {
		t.Errorf("isActive seed = %v, want descriptor default true", f.Value("isActive"))
	}

	// edit: the target wins over the default
	f.Open(view.Record{"name": "Widget", "isActive": false})
	if f.Value("name") != "Widget" {
		t.Errorf("name seed = %v, want target value", f.Value("name"))
	}
	if f.Value("isActive") != false {
		t.Errorf("isActive seed = %v, want target value false", f.Value("isActive"))
	}
	// nil target value falls through to the default
	f.Open(view.Record{"isActive": nil})
	if f.Value("isActive") != true {
		t.Errorf("isActive seed = %v, want default when target holds nil", f.Value("isActive"))
	}
}

func TestFileFields(t *testing.T) {
	fields := []Field{
		{Name: "image", Label: "Image", Kind: File, Required: true},
		{Name: "gallery", Label: "Gallery", Kind: FileMultiple},
	}
	f := New(fields, acceptAll)
	f.Open(nil)

	// required single file blocks submit while unset
	if err := f.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if f.Message() != "Please fill in: Image" {
		t.Errorf("Message = %q", f.Message())
	}

	if err := f.AddFile("image", FileRef{Name: "a.png", URL: "/uploads/a.png"}); err != nil {
		t.Fatal(err)
	}
	// single-file fields hold the latest handle only
	if err := f.AddFile("image", FileRef{Name: "b.png", URL: "/uploads/b.png"}); err != nil {
		t.Fatal(err)
	}
	fr, _ := f.Value("image").(*FileRef)
	if fr == nil || fr.Name != "b.png" {
		t.Errorf("image = %+v, want the latest handle", fr)
	}

	for _, name := range []string{"1.png", "2.png", "3.png"} {
		if err := f.AddFile("gallery", FileRef{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.RemoveFile("gallery", 1); err != nil {
		t.Fatal(err)
	}
	frs, _ := f.Value("gallery").([]FileRef)
	if len(frs) != 2 || frs[0].Name != "1.png" || frs[1].Name != "3.png" {
		t.Errorf("gallery = %+v, want 1.png and 3.png", frs)
	}
	if err := f.RemoveFile("gallery", 5); err == nil {
		t.Error("RemoveFile out of range succeeded, want error")
	}

	if err := f.AddFile("missing", FileRef{}); err == nil {
		t.Error("AddFile on unknown field succeeded, want error")
	}

	f.Close()
	if err := f.AddFile("image", FileRef{Name: "c.png"}); err == nil {
		t.Error("AddFile on closed form succeeded, want error")
	}
}

func TestCloseInertWhileSubmitting(t *testing.T) {
	var closedMidFlight bool
	f := New(testFields(), nil)
	f.submit = func(ctx context.Context, values Values, target view.Record) (Result, error) {
		closedMidFlight = f.Close()
		return Result{Success: true}, nil
	}
	f.Open(nil)
	_ = f.Set("name", "Widget")
	_ = f.Set("price", "10")

	if err := f.Submit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if closedMidFlight {
		t.Error("Close succeeded while a submit was in flight")
	}
	if f.State() != Closed {
		t.Errorf("State = %v, want Closed after successful submit", f.State())
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	f := New(testFields(), acceptAll)
	f.Open(nil)
	_ = f.Set("name", "Widget")

	vals := f.Values()
	vals["name"] = "tampered"
	if f.Value("name") != "Widget" {
		t.Error("mutating the Values copy changed the form state")
	}
}
