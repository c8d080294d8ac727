package panels

import (
	"context"
	"fmt"
	"time"

	"github.com/BerylCAtieno/creator-command-center/internal/generator"
	"github.com/BerylCAtieno/creator-command-center/internal/logger"
	"github.com/BerylCAtieno/creator-command-center/internal/models"
	"github.com/BerylCAtieno/creator-command-center/internal/prompt"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
)

const (
	MinIdeas    = 3
	MaxIdeas    = 20
	MinCaptions = 3
	MaxCaptions = 10

	DefaultIdeas        = 10
	DefaultCaptions     = 5
	DefaultDurationDays = 7
	DefaultPostsPerWeek = 3
)

const (
	WarnIdeasFocus     = "⚠️ Please enter what you're promoting first!"
	WarnCaptionPost    = "⚠️ Please describe your post first!"
	WarnVoiceSample    = "⚠️ Please provide sample content first!"
	WarnRewriteTarget  = "⚠️ Please provide text to rewrite!"
	calendarFilePrefix = "content_calendar_"
)

// Generator is satisfied by *generator.Client.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) generator.Result
}

type IdeaInput struct {
	Focus string
	Count int
}

type CaptionInput struct {
	Description string
	Platform    models.Platform
	Count       int
}

type CalendarInput struct {
	DurationDays int
	PostsPerWeek int
}

// VoiceInput is shared by the analyze and rewrite actions.
type VoiceInput struct {
	Sample string
	Target string
}

// Outcome reports what one action did. A non-empty Warning means the action
// was rejected before any call and no slot changed.
type Outcome struct {
	Mode    models.Mode
	Warning string
	Result  generator.Result
}

func (o Outcome) Skipped() bool {
	return o.Warning != ""
}

// Text is what the panel shows for this outcome.
func (o Outcome) Text() string {
	if o.Skipped() {
		return o.Warning
	}
	return o.Result.Display()
}

// Controller maps each panel action to one compose-generate-store cycle.
type Controller struct {
	gen Generator
	log *logger.Logger
	now func() time.Time
}

type Option func(*Controller)

// WithClock overrides the clock used for download file names.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(gen Generator, log *logger.Logger, opts ...Option) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	c := &Controller{gen: gen, log: log, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Ideas(ctx context.Context, s *session.Session, in IdeaInput) Outcome {
	if blank(in.Focus) {
		return c.reject(s, models.ModeIdeas, WarnIdeasFocus)
	}
	return c.run(ctx, s, models.GenerationRequest{
		UserInput: in.Focus,
		Params:    models.IdeaParams{NumIdeas: clamp(orDefault(in.Count, DefaultIdeas), MinIdeas, MaxIdeas)},
	})
}

func (c *Controller) Captions(ctx context.Context, s *session.Session, in CaptionInput) Outcome {
	if blank(in.Description) {
		return c.reject(s, models.ModeCaptions, WarnCaptionPost)
	}
	platform := in.Platform
	if platform == "" {
		platform = models.PlatformInstagram
	}
	return c.run(ctx, s, models.GenerationRequest{
		UserInput: in.Description,
		Params: models.CaptionParams{
			Platform:    platform.Label(),
			NumCaptions: clamp(orDefault(in.Count, DefaultCaptions), MinCaptions, MaxCaptions),
		},
	})
}

// Calendar has no required fields and always issues a request.
func (c *Controller) Calendar(ctx context.Context, s *session.Session, in CalendarInput) Outcome {
	return c.run(ctx, s, models.GenerationRequest{
		UserInput: models.CalendarUserInput,
		Params: models.CalendarParams{
			Duration:     models.DurationLabel(orDefault(in.DurationDays, DefaultDurationDays)),
			PostsPerWeek: orDefault(in.PostsPerWeek, DefaultPostsPerWeek),
		},
	})
}

func (c *Controller) AnalyzeVoice(ctx context.Context, s *session.Session, in VoiceInput) Outcome {
	if blank(in.Sample) {
		return c.reject(s, models.ModeVoiceAnalysis, WarnVoiceSample)
	}
	return c.run(ctx, s, models.GenerationRequest{
		UserInput: in.Sample,
		Params:    models.VoiceAnalysisParams{},
	})
}

func (c *Controller) RewriteVoice(ctx context.Context, s *session.Session, in VoiceInput) Outcome {
	if blank(in.Target) {
		return c.reject(s, models.ModeVoiceRewrite, WarnRewriteTarget)
	}
	return c.run(ctx, s, models.GenerationRequest{
		UserInput: in.Target,
		Params:    models.VoiceRewriteParams{Sample: in.Sample},
	})
}

func (c *Controller) reject(s *session.Session, mode models.Mode, warning string) Outcome {
	c.log.Debug("action rejected, missing input", "session_id", s.ID, "mode", mode)
	return Outcome{Mode: mode, Warning: warning}
}

func (c *Controller) run(ctx context.Context, s *session.Session, req models.GenerationRequest) Outcome {
	done := s.BeginAction()
	defer done()

	mode := req.Mode()
	text := prompt.Compose(s.Profile(), req)

	// A dropped client does not abort the call; the slot only ever holds the
	// result of a completed generation.
	start := time.Now()
	res := c.gen.Generate(context.WithoutCancel(ctx), s.Credential(), text)
	s.SetResult(mode, res.Display())

	c.log.Info("generation finished",
		"session_id", s.ID,
		"mode", mode,
		"outcome", res.Failure.String(),
		"elapsed", time.Since(start),
	)
	return Outcome{Mode: mode, Result: res}
}

// Download is a file offered to the browser.
type Download struct {
	Filename    string
	ContentType string
	Content     []byte
}

// CalendarDownload exposes the stored calendar as a dated text file. It
// reports false while the calendar slot is empty.
func (c *Controller) CalendarDownload(s *session.Session) (Download, bool) {
	text, ok := s.Result(models.ModeCalendar)
	if !ok {
		return Download{}, false
	}
	return Download{
		Filename:    CalendarFilename(c.now()),
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte(text),
	}, true
}

func CalendarFilename(t time.Time) string {
	return fmt.Sprintf("%s%s.txt", calendarFilePrefix, t.Format("20060102"))
}

func blank(s string) bool {
	return s == ""
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
