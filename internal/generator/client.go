package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/creator-command-center/internal/logger"
)

const MissingCredentialMessage = "⚠️ Please enter your Google Gemini API key in the sidebar.\n\n🆓 Get FREE key at: https://aistudio.google.com/app/apikey"

type Failure int

const (
	FailureNone Failure = iota
	FailureMissingCredential
	FailureGeneration
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureMissingCredential:
		return "missing_credential"
	case FailureGeneration:
		return "generation_failure"
	default:
		return fmt.Sprintf("failure(%d)", int(f))
	}
}

// Result is the outcome of one generation call. Exactly one of Text or
// Failure is meaningful.
type Result struct {
	Text    string
	Failure Failure
	Err     error
}

func (r Result) OK() bool {
	return r.Failure == FailureNone
}

// Display is the text shown in the panel, success or not.
func (r Result) Display() string {
	switch r.Failure {
	case FailureNone:
		return r.Text
	case FailureMissingCredential:
		return MissingCredentialMessage
	default:
		detail := "unknown error"
		if r.Err != nil {
			detail = r.Err.Error()
		}
		return fmt.Sprintf("❌ Error: %s\n\nMake sure your API key is correct!", detail)
	}
}

// Client is the only path to the backend. It never returns an error: every
// failure is folded into the Result.
type Client struct {
	backend Backend
	log     *logger.Logger
}

func NewClient(backend Backend, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{backend: backend, log: log}
}

func (c *Client) Generate(ctx context.Context, apiKey, prompt string) (res Result) {
	if strings.TrimSpace(apiKey) == "" {
		c.log.Debug("generation skipped, no credential")
		return Result{Failure: FailureMissingCredential}
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("generation backend panicked", "panic", r)
			res = Result{Failure: FailureGeneration, Err: fmt.Errorf("%v", r)}
		}
	}()

	c.log.Debug("calling generation backend", "prompt_bytes", len(prompt))
	text, err := c.backend.GenerateText(ctx, apiKey, prompt)
	if err != nil {
		c.log.Warn("generation failed", "error", err)
		return Result{Failure: FailureGeneration, Err: err}
	}
	return Result{Text: text}
}
