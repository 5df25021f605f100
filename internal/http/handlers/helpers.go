package handlers

import (
	"context"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/storage"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// resultFrom adapts the API envelope to the form engine's result shape.
func resultFrom(env *api.Envelope) forms.Result {
	res := forms.Result{Success: env.Success, Message: env.Message}
	if env.Success {
		var rec view.Record
		if err := env.DecodeData(&rec); err == nil {
			res.Data = rec
		}
	}
	return res
}

// stageUpload stores one multipart file and returns its handle for the form.
func stageUpload(ctx context.Context, stager storage.Stager, fh *multipart.FileHeader) (forms.FileRef, error) {
	f, err := fh.Open()
	if err != nil {
		return forms.FileRef{}, err
	}
	defer f.Close()

	staged, err := stager.Stage(ctx, f, storage.StageInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		return forms.FileRef{}, err
	}
	return forms.FileRef{Name: fh.Filename, Key: staged.Key, URL: staged.URL, Size: fh.Size}, nil
}

// payloadFrom flattens form values for the JSON write: file handles become
// their staged URLs.
func payloadFrom(values forms.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		switch t := v.(type) {
		case *forms.FileRef:
			if t != nil {
				out[k] = t.URL
			}
		case []forms.FileRef:
			urls := make([]string, 0, len(t))
			for _, fr := range t {
				urls = append(urls, fr.URL)
			}
			out[k] = urls
		default:
			out[k] = v
		}
	}
	return out
}

// applyPosted copies posted form fields into the open form, staging uploads
// for file kinds. The staged handles are returned so callers can discard
// them when the submit does not go through.
func applyPosted(c *gin.Context, f *forms.Form, stager storage.Stager) ([]forms.FileRef, error) {
	var staged []forms.FileRef
	for _, fld := range f.Fields() {
		switch fld.Kind {
		case forms.File, forms.FileMultiple:
			mf, err := c.MultipartForm()
			if err != nil {
				continue // no multipart body; field keeps its seed
			}
			for _, fh := range mf.File[fld.Name] {
				fr, err := stageUpload(c.Request.Context(), stager, fh)
				if err != nil {
					return staged, err
				}
				staged = append(staged, fr)
				if err := f.AddFile(fld.Name, fr); err != nil {
					return staged, err
				}
			}
		case forms.Switch:
			if v, ok := c.GetPostForm(fld.Name); ok {
				_ = f.Set(fld.Name, v == "true" || v == "on" || v == "1")
			}
		case forms.Text, forms.Number, forms.Password, forms.URL, forms.Textarea, forms.Select:
			if v, ok := c.GetPostForm(fld.Name); ok {
				_ = f.Set(fld.Name, v)
			}
		}
	}
	return staged, nil
}

// discardStaged removes uploads that never made it into a persisted record.
func discardStaged(ctx context.Context, stager storage.Stager, refs []forms.FileRef) {
	for _, fr := range refs {
		if fr.Key != "" {
			_ = stager.Remove(ctx, fr.Key)
		}
	}
}

// fieldVMs maps descriptors plus current values to the widget payload.
func fieldVMs(f *forms.Form) []view.FieldVM {
	out := make([]view.FieldVM, 0, len(f.Fields()))
	for _, fld := range f.Fields() {
		out = append(out, view.FieldVM{
			Name:     fld.Name,
			Label:    fld.Label,
			Kind:     string(fld.Kind),
			Required: fld.Required,
			Options:  fld.Options,
			Value:    f.Value(fld.Name),
		})
	}
	return out
}
