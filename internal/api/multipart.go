package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"

	"cookbook/internal/domain"
)

// encodeSubmission writes a submission as a multipart body: one "data"
// field carrying the JSON metadata block, an optional "image" part for a
// new main image, and "steps[N][image]" parts for new step images. Parts
// are written in ascending step order so the body is deterministic.
func (c *Client) encodeSubmission(sub *domain.Submission) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	meta, err := json.Marshal(sub.Data)
	if err != nil {
		return nil, "", fmt.Errorf("api: marshal submission data: %w", err)
	}
	if err := w.WriteField("data", string(meta)); err != nil {
		return nil, "", fmt.Errorf("api: write data field: %w", err)
	}

	if !sub.Image.IsZero() {
		if err := c.writeImagePart(w, "image", sub.Image); err != nil {
			return nil, "", err
		}
	}

	indices := make([]int, 0, len(sub.StepImages))
	for i := range sub.StepImages {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		field := fmt.Sprintf("steps[%d][image]", i)
		if err := c.writeImagePart(w, field, sub.StepImages[i]); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("api: finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Client) writeImagePart(w *multipart.Writer, field string, ref domain.ImageRef) error {
	if c.loader == nil {
		return fmt.Errorf("api: no attachment loader configured for %s", field)
	}

	att, err := c.loader.Load(string(ref))
	if err != nil {
		return fmt.Errorf("api: load attachment %s: %w", field, err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, att.Filename))
	h.Set("Content-Type", att.MIME)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("api: create part %s: %w", field, err)
	}
	if _, err := part.Write(att.Data); err != nil {
		return fmt.Errorf("api: write part %s: %w", field, err)
	}
	return nil
}
