package panels

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/BerylCAtieno/creator-command-center/internal/generator"
	"github.com/BerylCAtieno/creator-command-center/internal/models"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBackend struct {
	calls   int
	prompts []string
	text    string
	err     error
}

func (b *countingBackend) GenerateText(_ context.Context, _, prompt string) (string, error) {
	b.calls++
	b.prompts = append(b.prompts, prompt)
	return b.text, b.err
}

func (b *countingBackend) lastPrompt() string {
	if len(b.prompts) == 0 {
		return ""
	}
	return b.prompts[len(b.prompts)-1]
}

func newController(b *countingBackend, opts ...Option) *Controller {
	return NewController(generator.NewClient(b, nil), nil, opts...)
}

func keyedSession() *session.Session {
	s := session.New("test")
	s.SetCredential("AIza-test")
	return s
}

// action runs one panel action; used to drive table tests across modes.
type action func(c *Controller, s *session.Session) Outcome

var ctx = context.Background()

func TestEmptyRequiredInputMakesNoCall(t *testing.T) {
	tests := []struct {
		name    string
		mode    models.Mode
		warning string
		run     action
	}{
		{"ideas", models.ModeIdeas, WarnIdeasFocus, func(c *Controller, s *session.Session) Outcome {
			return c.Ideas(ctx, s, IdeaInput{Focus: "", Count: 10})
		}},
		{"captions", models.ModeCaptions, WarnCaptionPost, func(c *Controller, s *session.Session) Outcome {
			return c.Captions(ctx, s, CaptionInput{Platform: models.PlatformX, Count: 5})
		}},
		{"voice analysis", models.ModeVoiceAnalysis, WarnVoiceSample, func(c *Controller, s *session.Session) Outcome {
			return c.AnalyzeVoice(ctx, s, VoiceInput{Target: "something to rewrite"})
		}},
		{"voice rewrite", models.ModeVoiceRewrite, WarnRewriteTarget, func(c *Controller, s *session.Session) Outcome {
			return c.RewriteVoice(ctx, s, VoiceInput{Sample: "my sample"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &countingBackend{text: "generated"}
			c := newController(backend)
			s := keyedSession()
			s.SetResult(tt.mode, "previous result")

			out := tt.run(c, s)

			assert.True(t, out.Skipped())
			assert.Equal(t, tt.mode, out.Mode)
			assert.Equal(t, tt.warning, out.Text())
			assert.Equal(t, 0, backend.calls)

			got, ok := s.Result(tt.mode)
			require.True(t, ok)
			assert.Equal(t, "previous result", got)
		})
	}
}

func TestWhitespaceInputIsNotMissing(t *testing.T) {
	backend := &countingBackend{text: "ideas"}
	s := keyedSession()

	out := newController(backend).Ideas(ctx, s, IdeaInput{Focus: " \n\t", Count: 10})

	assert.False(t, out.Skipped())
	assert.Equal(t, 1, backend.calls)
	assert.Contains(t, backend.lastPrompt(), "USER INPUT:  \n\t\n")
}

func allActions() map[models.Mode]action {
	return map[models.Mode]action{
		models.ModeIdeas: func(c *Controller, s *session.Session) Outcome {
			return c.Ideas(ctx, s, IdeaInput{Focus: "launch", Count: 10})
		},
		models.ModeCaptions: func(c *Controller, s *session.Session) Outcome {
			return c.Captions(ctx, s, CaptionInput{Description: "team photo", Platform: models.PlatformInstagram, Count: 5})
		},
		models.ModeCalendar: func(c *Controller, s *session.Session) Outcome {
			return c.Calendar(ctx, s, CalendarInput{DurationDays: 7, PostsPerWeek: 3})
		},
		models.ModeVoiceAnalysis: func(c *Controller, s *session.Session) Outcome {
			return c.AnalyzeVoice(ctx, s, VoiceInput{Sample: "sample"})
		},
		models.ModeVoiceRewrite: func(c *Controller, s *session.Session) Outcome {
			return c.RewriteVoice(ctx, s, VoiceInput{Target: "rewrite me"})
		},
	}
}

func TestMissingCredentialMakesNoCall(t *testing.T) {
	for mode, run := range allActions() {
		t.Run(string(mode), func(t *testing.T) {
			backend := &countingBackend{text: "generated"}
			s := session.New("no-key")

			out := run(newController(backend), s)

			assert.Equal(t, 0, backend.calls)
			assert.Equal(t, generator.FailureMissingCredential, out.Result.Failure)
			got, _ := s.Result(mode)
			assert.Equal(t, generator.MissingCredentialMessage, got)
		})
	}
}

func TestGenerationFailurePopulatesSlot(t *testing.T) {
	for mode, run := range allActions() {
		t.Run(string(mode), func(t *testing.T) {
			backend := &countingBackend{err: errors.New("quota exceeded for project 42")}
			s := keyedSession()

			out := run(newController(backend), s)

			assert.Equal(t, 1, backend.calls)
			assert.Equal(t, generator.FailureGeneration, out.Result.Failure)
			got, ok := s.Result(mode)
			require.True(t, ok)
			assert.Contains(t, got, "Error")
			assert.Contains(t, got, "quota exceeded for project 42")
		})
	}
}

// ctxBackend fails the way a real HTTP client does once its context is done.
type ctxBackend struct {
	calls int
	text  string
}

func (b *ctxBackend) GenerateText(ctx context.Context, _, _ string) (string, error) {
	b.calls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.text, nil
}

func TestAbandonedRequestStillCompletes(t *testing.T) {
	backend := &ctxBackend{text: "new calendar"}
	c := NewController(generator.NewClient(backend, nil), nil)
	s := keyedSession()
	s.SetResult(models.ModeCalendar, "fresh calendar")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	out := c.Calendar(cancelled, s, CalendarInput{DurationDays: 7, PostsPerWeek: 3})

	assert.Equal(t, 1, backend.calls)
	assert.True(t, out.Result.OK())
	got, _ := s.Result(models.ModeCalendar)
	assert.Equal(t, "new calendar", got)
	assert.NotContains(t, got, "context canceled")
}

func TestSuccessStoresResultAndLatestWins(t *testing.T) {
	backend := &countingBackend{text: "first"}
	c := newController(backend)
	s := keyedSession()

	c.Ideas(ctx, s, IdeaInput{Focus: "launch"})
	backend.text = "second"
	out := c.Ideas(ctx, s, IdeaInput{Focus: "launch again"})

	assert.Equal(t, "second", out.Text())
	got, _ := s.Result(models.ModeIdeas)
	assert.Equal(t, "second", got)
	_, ok := s.Result(models.ModeCaptions)
	assert.False(t, ok)
}

func TestPromptCarriesModeInputAndParams(t *testing.T) {
	backend := &countingBackend{text: "ok"}
	c := newController(backend)
	s := keyedSession()
	s.SaveProfile(models.BrandProfile{Name: "Acme"})

	c.Ideas(ctx, s, IdeaInput{Focus: "summer drop", Count: 50})
	p := backend.lastPrompt()
	assert.Contains(t, p, "MODE: IDEAS\n")
	assert.Contains(t, p, "Brand Name: Acme\n")
	assert.Contains(t, p, "USER INPUT: summer drop\n")
	assert.Contains(t, p, `"num_ideas": 20`)

	c.Captions(ctx, s, CaptionInput{Description: "bts", Platform: models.PlatformYouTubeShorts, Count: 1})
	p = backend.lastPrompt()
	assert.Contains(t, p, "MODE: CAPTIONS\n")
	assert.Contains(t, p, `"platform": "YouTube Shorts"`)
	assert.Contains(t, p, `"num_captions": 3`)

	c.Calendar(ctx, s, CalendarInput{DurationDays: 30, PostsPerWeek: 5})
	p = backend.lastPrompt()
	assert.Contains(t, p, "USER INPUT: "+models.CalendarUserInput+"\n")
	assert.Contains(t, p, `"duration": "30 days"`)
	assert.Contains(t, p, `"posts_per_week": 5`)

	c.AnalyzeVoice(ctx, s, VoiceInput{Sample: "hey fam!"})
	p = backend.lastPrompt()
	assert.Contains(t, p, "USER INPUT: hey fam!\n")
	assert.Contains(t, p, "EXTRA PARAMETERS: None\n")

	c.RewriteVoice(ctx, s, VoiceInput{Target: "We are pleased to announce"})
	p = backend.lastPrompt()
	assert.Contains(t, p, "USER INPUT: We are pleased to announce\n")
	assert.Contains(t, p, `"sample": ""`)

	assert.Equal(t, 5, backend.calls)
}

func TestDefaultsApplyToZeroInputs(t *testing.T) {
	backend := &countingBackend{text: "ok"}
	c := newController(backend)
	s := keyedSession()

	c.Ideas(ctx, s, IdeaInput{Focus: "x"})
	assert.Contains(t, backend.lastPrompt(), `"num_ideas": 10`)

	c.Captions(ctx, s, CaptionInput{Description: "x"})
	assert.Contains(t, backend.lastPrompt(), `"platform": "Instagram"`)
	assert.Contains(t, backend.lastPrompt(), `"num_captions": 5`)

	c.Calendar(ctx, s, CalendarInput{})
	assert.Contains(t, backend.lastPrompt(), `"duration": "7 days"`)
	assert.Contains(t, backend.lastPrompt(), `"posts_per_week": 3`)
}

func TestVoiceSlotsPersistIndependently(t *testing.T) {
	backend := &countingBackend{text: "analysis"}
	c := newController(backend)
	s := keyedSession()

	c.AnalyzeVoice(ctx, s, VoiceInput{Sample: "sample"})
	backend.text = "rewrite"
	c.RewriteVoice(ctx, s, VoiceInput{Sample: "sample", Target: "target"})

	a, _ := s.Result(models.ModeVoiceAnalysis)
	r, _ := s.Result(models.ModeVoiceRewrite)
	assert.Equal(t, "analysis", a)
	assert.Equal(t, "rewrite", r)
}

func TestCalendarDownload(t *testing.T) {
	day := time.Date(2024, 3, 5, 16, 30, 0, 0, time.UTC)
	calendar := "| Day | Theme |\n|---|---|\n| 1 | Launch 🚀 |\n"
	backend := &countingBackend{text: calendar}
	c := newController(backend, WithClock(func() time.Time { return day }))
	s := keyedSession()

	_, ok := c.CalendarDownload(s)
	assert.False(t, ok, "nothing to download before a calendar exists")

	c.Calendar(ctx, s, CalendarInput{DurationDays: 7, PostsPerWeek: 3})

	dl, ok := c.CalendarDownload(s)
	require.True(t, ok)
	assert.Equal(t, "content_calendar_20240305.txt", dl.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", dl.ContentType)
	assert.Equal(t, []byte(calendar), dl.Content)
	assert.True(t, strings.HasSuffix(dl.Filename, ".txt"))
}

func TestCalendarFilename(t *testing.T) {
	assert.Equal(t, "content_calendar_20261017.txt", CalendarFilename(time.Date(2026, 10, 17, 0, 0, 0, 0, time.Local)))
}
