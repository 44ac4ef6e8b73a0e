// Package client implements the recipe submission workflow against a
// running server: per-file upload credentials, direct PUTs to object
// storage, then a single record-persistence call. Steps run sequentially
// and the first failure aborts the rest; files already uploaded when a
// later step fails stay in storage, orphaned, and are never referenced by
// a persisted record. Nothing is retried automatically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"recipe-service/internal/models"
)

// State is the explicit submission state. One submission moves
// Idle → Validating → Uploading → Persisting → Done, or stops at Failed.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateUploading
	StatePersisting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateUploading:
		return "uploading"
	case StatePersisting:
		return "persisting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// File is one attachment to upload before the recipe is persisted.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Form is the recipe submission: the payload fields plus the raw files.
type Form struct {
	Title        string
	Description  string
	Ingredients  []models.Ingredient
	Instructions []string
	Tags         []string
	PrepTime     string
	CookTime     string
	Servings     int
	Language     string
	Notes        string
	Files        []File
}

type Client struct {
	baseURL       string
	publicBaseURL string
	http          *http.Client
	state         State
	onState       func(State)
}

type Option func(*Client)

// WithHTTPClient replaces the default client (30s timeout). The server
// imposes no timeout of its own beyond the signed URL expiry, so callers
// should keep one here.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithPublicBaseURL sets where uploaded objects are publicly readable;
// final image URLs are publicBaseURL + "/" + key.
func WithPublicBaseURL(u string) Option {
	return func(c *Client) { c.publicBaseURL = u }
}

// WithStateFunc registers a callback invoked on every state transition.
func WithStateFunc(fn func(State)) Option {
	return func(c *Client) { c.onState = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		state:   StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.publicBaseURL == "" {
		c.publicBaseURL = baseURL
	}
	return c
}

func (c *Client) State() State { return c.state }

func (c *Client) setState(s State) {
	c.state = s
	if c.onState != nil {
		c.onState(s)
	}
}

// Submit runs one submission end to end and returns the persisted recipe.
// A second Submit before the first returns is not coordinated; callers
// must not overlap submissions on one Client.
func (c *Client) Submit(ctx context.Context, form Form) (*models.Recipe, error) {
	rec, err := c.submit(ctx, form)
	if err != nil {
		c.setState(StateFailed)
		return nil, err
	}
	c.setState(StateDone)
	return rec, nil
}

func (c *Client) submit(ctx context.Context, form Form) (*models.Recipe, error) {
	c.setState(StateValidating)
	var missing []string
	if form.Title == "" {
		missing = append(missing, "title")
	}
	if form.Description == "" {
		missing = append(missing, "description")
	}
	if len(form.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(form.Instructions) == 0 {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	// one grouping id correlates every file of this submission
	groupID := uuid.NewString()

	imageURLs := make([]string, 0, len(form.Files))
	if len(form.Files) > 0 {
		c.setState(StateUploading)
		for _, f := range form.Files {
			url, key, err := c.requestCredential(ctx, f, groupID)
			if err != nil {
				return nil, err
			}
			if err := c.put(ctx, url, f); err != nil {
				return nil, err
			}
			imageURLs = append(imageURLs, c.publicBaseURL+"/"+key)
		}
	}

	c.setState(StatePersisting)
	return c.persist(ctx, form, imageURLs)
}

type credentialResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Key     string `json:"key"`
	Error   string `json:"error"`
}

func (c *Client) requestCredential(ctx context.Context, f File, groupID string) (url, key string, err error) {
	body, _ := json.Marshal(map[string]string{
		"filename":    f.Name,
		"contentType": f.ContentType,
		"recipeId":    groupID,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/s3/upload", bytes.NewReader(body))
	if err != nil {
		return "", "", &TransportError{Op: "build credential request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", "", &TransportError{Op: "request upload credential", Err: err}
	}
	defer resp.Body.Close()

	var cred credentialResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&cred); decodeErr != nil && resp.StatusCode < 300 {
		return "", "", &TransportError{Op: "decode credential response", Err: decodeErr}
	}
	if resp.StatusCode >= 300 || !cred.Success {
		msg := cred.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", "", &CredentialRequestError{Filename: f.Name, Message: msg}
	}
	return cred.URL, cred.Key, nil
}

func (c *Client) put(ctx context.Context, url string, f File) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(f.Data))
	if err != nil {
		return &TransportError{Op: "build upload request", Err: err}
	}
	// must match the content type the URL was signed for
	req.Header.Set("Content-Type", f.ContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "upload " + f.Name, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return &UploadError{Filename: f.Name, Status: resp.StatusCode}
	}
	return nil
}

type persistResponse struct {
	Success bool          `json:"success"`
	Data    models.Recipe `json:"data"`
	Error   string        `json:"error"`
}

func (c *Client) persist(ctx context.Context, form Form, imageURLs []string) (*models.Recipe, error) {
	payload := models.RecipeInput{
		Title:        form.Title,
		Description:  form.Description,
		Ingredients:  form.Ingredients,
		Instructions: form.Instructions,
		ImageURLs:    imageURLs,
		Tags:         form.Tags,
		PrepTime:     form.PrepTime,
		CookTime:     form.CookTime,
		Servings:     form.Servings,
		Language:     form.Language,
		Notes:        form.Notes,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Op: "encode recipe payload", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recipes", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "build persistence request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "persist recipe", Err: err}
	}
	defer resp.Body.Close()

	var out persistResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil && resp.StatusCode < 300 {
		return nil, &TransportError{Op: "decode persistence response", Err: decodeErr}
	}
	if resp.StatusCode >= 300 || !out.Success {
		return nil, &PersistenceError{Status: resp.StatusCode, Message: out.Error}
	}
	return &out.Data, nil
}
