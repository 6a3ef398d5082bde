package classify

import (
	"context"
	"encoding/base64"
	"log/slog"

	"civicfix-ai/internal/vertex"
)

const defaultMIMEType = "image/jpeg"

// Sampling is kept low so repeated calls on the same image are reproducible.
const modelTemperature = 0.2

const verifyPrompt = `You are a civic issue verification AI.

Based on the detected objects and image description,
classify the issue as one of:
[Garbage, Pothole, Drainage, Streetlight, WaterLeak]

If the image does not clearly show a civic issue,
respond with: INVALID

Also assign priority: High / Medium / Low

Output STRICT JSON ONLY in this format:
{
  "issue": "...",
  "confidence_reason": "...",
  "priority": "..."
}
`

// Classifier turns an uploaded image into a normalized classification.
type Classifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) (Result, error)
}

// Pipeline runs the model call sequence: build request, invoke, extract the
// answer, parse and normalize. Any stage failure short-circuits; there is no
// partial-result path.
type Pipeline struct {
	model vertex.Caller
	log   *slog.Logger
}

func NewPipeline(log *slog.Logger, model vertex.Caller) *Pipeline {
	return &Pipeline{model: model, log: log}
}

// BuildRequest encodes the image and the fixed instruction prompt into a
// model request. Pure; no I/O. An empty mimeType defaults to image/jpeg.
func BuildRequest(image []byte, mimeType string) vertex.Request {
	if mimeType == "" {
		mimeType = defaultMIMEType
	}
	return vertex.Request{
		Contents: []vertex.Content{{
			Role: "user",
			Parts: []vertex.Part{
				{Text: verifyPrompt},
				{InlineData: &vertex.InlineData{
					MIMEType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		GenerationConfig: vertex.GenerationConfig{Temperature: modelTemperature},
	}
}

func (p *Pipeline) Classify(ctx context.Context, image []byte, mimeType string) (Result, error) {
	raw, err := p.model.GenerateContent(ctx, BuildRequest(image, mimeType))
	if err != nil {
		return Result{}, err
	}

	text, err := vertex.ExtractText(raw)
	if err != nil {
		return Result{}, err
	}
	p.log.Debug("model answered", "chars", len(text))

	res, err := ParseAndNormalize(text)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
