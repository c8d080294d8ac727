package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/creator-command-center/internal/logger"
	"github.com/BerylCAtieno/creator-command-center/internal/models"
	"github.com/BerylCAtieno/creator-command-center/internal/panels"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	panels   *panels.Controller
	sessions *session.Manager
	log      *logger.Logger
	secure   bool
}

func NewHandler(ctl *panels.Controller, sessions *session.Manager, log *logger.Logger, secureCookies bool) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		panels:   ctl,
		sessions: sessions,
		log:      log,
		secure:   secureCookies,
	}
}

type stateResponse struct {
	SessionID     string                 `json:"session_id"`
	HasCredential bool                   `json:"has_credential"`
	Profile       *models.BrandProfile   `json:"profile"`
	Results       map[models.Mode]string `json:"results"`
}

type actionResponse struct {
	Mode    models.Mode `json:"mode"`
	Warning string      `json:"warning,omitempty"`
	Result  string      `json:"result,omitempty"`
	Failure string      `json:"failure,omitempty"`
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Page renders the whole form from current session state.
func (h *Handler) Page(c *gin.Context) {
	view := newPageView(sessionFrom(c).Snapshot())
	switch tab := c.Query("tab"); tab {
	case "ideas", "captions", "calendar", "voice":
		view.Active = tab
	}
	h.renderPage(c, view)
}

func (h *Handler) State(c *gin.Context) {
	snap := sessionFrom(c).Snapshot()
	RespondOK(c, stateResponse{
		SessionID:     snap.ID,
		HasCredential: snap.HasCredential,
		Profile:       snap.Profile,
		Results:       snap.Results,
	})
}

func (h *Handler) SetCredential(c *gin.Context) {
	var form credentialForm
	if err := c.ShouldBind(&form); err != nil {
		h.rejectForm(c, "invalid_request", err, nil)
		return
	}

	s := sessionFrom(c)
	s.SetCredential(form.APIKey)

	if wantsJSON(c) {
		RespondOK(c, gin.H{"has_credential": form.APIKey != ""})
		return
	}
	view := newPageView(s.Snapshot())
	if form.APIKey != "" {
		view.Notice = "🔑 API key set for this session."
	}
	h.renderPage(c, view)
}

func (h *Handler) SaveProfile(c *gin.Context) {
	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		h.rejectForm(c, "invalid_request", err, nil)
		return
	}
	profile, err := form.toProfile()
	if err != nil {
		h.rejectForm(c, "invalid_profile", err, nil)
		return
	}

	s := sessionFrom(c)
	s.SaveProfile(profile)
	h.log.Debug("brand profile saved", "session_id", s.ID)

	if wantsJSON(c) {
		RespondOK(c, gin.H{"profile": s.Profile()})
		return
	}
	view := newPageView(s.Snapshot())
	view.Notice = "✅ Brand profile saved!"
	h.renderPage(c, view)
}

func (h *Handler) Ideas(c *gin.Context) {
	var form ideasForm
	if err := c.ShouldBind(&form); err != nil {
		h.rejectForm(c, "invalid_request", err, func(v *pageView) {
			v.Active = "ideas"
			v.keepIdeas(form.Focus, 0)
		})
		return
	}
	out := h.panels.Ideas(c.Request.Context(), sessionFrom(c), panels.IdeaInput{
		Focus: form.Focus,
		Count: form.Count,
	})
	h.respondAction(c, out, func(v *pageView) {
		v.keepIdeas(form.Focus, form.Count)
	})
}

func (h *Handler) Captions(c *gin.Context) {
	var form captionsForm
	rejected := func(v *pageView) {
		v.Active = "captions"
		v.keepCaptions(form.Description, "", 0)
	}
	if err := c.ShouldBind(&form); err != nil {
		h.rejectForm(c, "invalid_request", err, rejected)
		return
	}

	var platform models.Platform
	if form.Platform != "" {
		p, err := models.ParsePlatform(form.Platform)
		if err != nil {
			h.rejectForm(c, "invalid_request", err, rejected)
			return
		}
		platform = p
	}

	out := h.panels.Captions(c.Request.Context(), sessionFrom(c), panels.CaptionInput{
		Description: form.Description,
		Platform:    platform,
		Count:       form.Count,
	})
	h.respondAction(c, out, func(v *pageView) {
		v.keepCaptions(form.Description, platform, form.Count)
	})
}

func (h *Handler) Calendar(c *gin.Context) {
	var form calendarForm
	if err := c.ShouldBind(&form); err != nil {
		h.rejectForm(c, "invalid_request", err, func(v *pageView) { v.Active = "calendar" })
		return
	}
	out := h.panels.Calendar(c.Request.Context(), sessionFrom(c), panels.CalendarInput{
		DurationDays: form.Duration,
		PostsPerWeek: form.PostsPerWeek,
	})
	h.respondAction(c, out, func(v *pageView) {
		v.keepCalendar(form.Duration, form.PostsPerWeek)
	})
}

func (h *Handler) AnalyzeVoice(c *gin.Context) {
	h.voice(c, h.panels.AnalyzeVoice)
}

func (h *Handler) RewriteVoice(c *gin.Context) {
	h.voice(c, h.panels.RewriteVoice)
}

type voiceAction func(ctx context.Context, s *session.Session, in panels.VoiceInput) panels.Outcome

func (h *Handler) voice(c *gin.Context, action voiceAction) {
	var form voiceForm
	if err := c.ShouldBind(&form); err != nil {
		h.rejectForm(c, "invalid_request", err, func(v *pageView) {
			v.Active = "voice"
			v.keepVoice(form.Sample, form.Target)
		})
		return
	}
	out := action(c.Request.Context(), sessionFrom(c), panels.VoiceInput{
		Sample: form.Sample,
		Target: form.Target,
	})
	h.respondAction(c, out, func(v *pageView) {
		v.keepVoice(form.Sample, form.Target)
	})
}

func (h *Handler) DownloadCalendar(c *gin.Context) {
	dl, ok := h.panels.CalendarDownload(sessionFrom(c))
	if !ok {
		RespondError(c, http.StatusNotFound, "no_calendar", fmt.Errorf("no calendar generated yet"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	c.Data(http.StatusOK, dl.ContentType, dl.Content)
}

// ResetSession ends the current session and issues an empty one.
func (h *Handler) ResetSession(c *gin.Context) {
	old := sessionFrom(c)
	h.sessions.End(old.ID)

	s := h.sessions.Create()
	setSessionCookie(c, s.ID, h.secure)
	c.Set(sessionKey, s)

	if wantsJSON(c) {
		RespondOK(c, gin.H{"session_id": s.ID})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// keepFunc carries submitted form values back into a re-rendered page.
type keepFunc func(v *pageView)

func (h *Handler) respondAction(c *gin.Context, out panels.Outcome, keep keepFunc) {
	if wantsJSON(c) {
		resp := actionResponse{Mode: out.Mode, Warning: out.Warning}
		if !out.Skipped() {
			resp.Result = out.Result.Display()
			resp.Failure = out.Result.Failure.String()
		}
		RespondOK(c, resp)
		return
	}

	view := newPageView(sessionFrom(c).Snapshot())
	view.Active = panelTab(out.Mode)
	if out.Skipped() {
		view.warn(out.Mode, out.Warning)
	}
	if keep != nil {
		keep(&view)
	}
	h.renderPage(c, view)
}

// rejectForm answers a form that failed binding or option validation. API
// clients get the error envelope; browsers get the page back with a notice.
func (h *Handler) rejectForm(c *gin.Context, code string, err error, keep keepFunc) {
	if wantsJSON(c) {
		RespondError(c, http.StatusBadRequest, code, err)
		return
	}
	view := newPageView(sessionFrom(c).Snapshot())
	view.Notice = invalidInputNotice(err)
	if keep != nil {
		keep(&view)
	}
	h.renderPageStatus(c, http.StatusBadRequest, view)
}

func (h *Handler) renderPage(c *gin.Context, view pageView) {
	h.renderPageStatus(c, http.StatusOK, view)
}

func (h *Handler) renderPageStatus(c *gin.Context, status int, view pageView) {
	if view.Active == "" {
		view.Active = "ideas"
	}
	c.HTML(status, pageTemplate, view)
}

var fieldLabels = map[string]string{
	"Count":        "count",
	"Duration":     "duration",
	"PostsPerWeek": "posts per week",
}

func invalidInputNotice(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			name, ok := fieldLabels[fe.Field()]
			if !ok {
				name = strings.ToLower(fe.Field())
			}
			fields = append(fields, name)
		}
		return "⚠️ Invalid " + strings.Join(fields, ", ") + "."
	}
	return "⚠️ " + err.Error()
}

func panelTab(mode models.Mode) string {
	switch mode {
	case models.ModeCaptions:
		return "captions"
	case models.ModeCalendar:
		return "calendar"
	case models.ModeVoiceAnalysis, models.ModeVoiceRewrite:
		return "voice"
	default:
		return "ideas"
	}
}
