package handlers

import (
	"reflect"
	"testing"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
)

func TestPayloadFromFlattensFileHandles(t *testing.T) {
	out := payloadFrom(forms.Values{
		"name":  "Mug",
		"image": &forms.FileRef{Name: "a.png", Key: "k1.png", URL: "/uploads/k1.png"},
		"gallery": []forms.FileRef{
			{URL: "/uploads/1.png"},
			{URL: "/uploads/2.png"},
		},
		"cover": (*forms.FileRef)(nil),
	})

	if out["name"] != "Mug" {
		t.Errorf("name = %v", out["name"])
	}
	if out["image"] != "/uploads/k1.png" {
		t.Errorf("image = %v, want the staged URL", out["image"])
	}
	if got, want := out["gallery"], []string{"/uploads/1.png", "/uploads/2.png"}; !reflect.DeepEqual(got, want) {
		t.Errorf("gallery = %v, want %v", got, want)
	}
	if _, ok := out["cover"]; ok {
		t.Error("empty file handle leaked into the payload")
	}
}
