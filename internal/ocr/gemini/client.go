// Package gemini implements screenshot scanning on top of the Gemini
// API. The model receives the career card image plus a prompt that
// pins the reply to a JSON document over the tracked stat keys; the
// reply is decoded and validated into a scan.ParseResult.
package gemini

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/logging"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

const provider = "gemini"

// Client scans screenshots through the Gemini API.
type Client struct {
	model  string
	client *genai.Client
}

// Compile-time check that Client satisfies scan.Engine.
var _ scan.Engine = (*Client)(nil)

// options holds the configurable construction inputs.
type options struct {
	apiKey string
	model  string
	client *genai.Client
}

// Option configures a Client.
type Option func(*options)

// WithAPIKey sets the API key explicitly instead of reading it from
// the environment.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithModel overrides the Gemini model used for scanning.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithClient supplies a pre-built genai client, bypassing API key
// resolution.
func WithClient(client *genai.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// New creates a Gemini-backed scan engine. Without WithAPIKey the key
// is read from GEMINI_API_KEY, then GOOGLE_API_KEY.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	o := &options{
		model: constants.DefaultGeminiModel,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.client == nil {
		apiKey := o.apiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" {
			return nil, &errors.AuthenticationError{
				Provider: provider,
				Method:   "api-key",
				Message:  "API key required - set GEMINI_API_KEY or use WithAPIKey",
				Err:      errors.ErrAPIKeyRequired,
			}
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  apiKey,
		})
		if err != nil {
			return nil, fmt.Errorf("creating genai client: %w", err)
		}
		o.client = client
	}

	return &Client{
		model:  o.model,
		client: o.client,
	}, nil
}

// Model returns the Gemini model the client scans with.
func (c *Client) Model() string {
	return c.model
}

// Scan extracts career statistics from one screenshot.
func (c *Client) Scan(ctx context.Context, img scan.Image) (scan.ParseResult, error) {
	if len(img.Data) == 0 {
		return scan.ParseResult{}, errors.NewValidationError("image", img.Name, "image data is empty")
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(img.Data, img.MIME),
		genai.NewPartFromText(scanPrompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return scan.ParseResult{}, wrapAPIError(err)
	}

	raw := resp.Text()
	if raw == "" {
		return scan.ParseResult{}, errors.NewParseError("json", img.Name, "model returned an empty reply", nil)
	}

	result, err := decodeReply(raw)
	if err != nil {
		return scan.ParseResult{}, err
	}

	logging.Debug().
		Str("image", img.Name).
		Str("model", c.model).
		Int("fields", len(result.Stats)).
		Msg("Gemini reply decoded")
	return result, nil
}

// wrapAPIError converts genai failures into typed API errors so
// callers can react to rate limits and outages.
func wrapAPIError(err error) error {
	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) {
		return &errors.APIError{
			Provider:   provider,
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
			Err:        err,
		}
	}
	return errors.WrapAPI(provider, 0, err)
}

// scanPrompt instructs the model to read the career card and reply
// with JSON over the tracked stat keys.
var scanPrompt = buildScanPrompt()

func buildScanPrompt() string {
	var b strings.Builder
	b.WriteString("You are reading a screenshot of the Helldivers 2 career statistics card.\n")
	b.WriteString("Extract every statistic you can see and reply with JSON only, shaped as:\n")
	b.WriteString(`{"player_name": "", "stats": [{"key": "", "value": 0, "matched_label": true}]}` + "\n\n")
	b.WriteString("Use exactly these keys and their on-screen labels:\n")
	for _, k := range stats.Keys() {
		fmt.Fprintf(&b, "- %s: %q\n", k, k.Label())
	}
	b.WriteString("\nSet matched_label to true only when you read the value directly beside ")
	b.WriteString("its label text. Set it to false when you inferred the value from the ")
	b.WriteString("card layout instead. Values are whole numbers; strip separators such as ")
	b.WriteString("commas. Omit statistics that are not visible. Use an empty player_name ")
	b.WriteString("when no name is readable.")
	return b.String()
}
