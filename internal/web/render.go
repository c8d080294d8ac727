package web

import (
	"embed"
	"html/template"

	"github.com/BerylCAtieno/creator-command-center/internal/models"
	"github.com/BerylCAtieno/creator-command-center/internal/panels"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "page"

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

const notSet = "Not set"

type choice struct {
	Key      string
	Label    string
	Selected bool
}

type numChoice struct {
	Value    int
	Selected bool
}

type snapshotView struct {
	Emoji    string
	Platform string
	Tone     string
	Industry string
}

type panelView struct {
	Key         string
	Title       string
	Result      string
	Placeholder string
	Warning     string
}

func (p panelView) Populated() bool {
	return p.Result != ""
}

type pageView struct {
	Notice        string
	Active        string
	HasCredential bool
	Profile       models.BrandProfile
	Snapshot      snapshotView

	Platforms  []choice
	Tones      []choice
	Industries []choice
	Goals      []choice
	Lengths    []choice

	CaptionPlatforms []choice
	Durations        []numChoice
	PostsPerWeek     []numChoice
	IdeaCount        int
	CaptionCount     int
	Limits           map[string]int

	Ideas         panelView
	Captions      panelView
	Calendar      panelView
	VoiceAnalysis panelView
	VoiceRewrite  panelView

	Inputs map[string]string
}

// newPageView is a pure read of the session snapshot.
func newPageView(snap session.Snapshot) pageView {
	var profile models.BrandProfile
	if snap.Profile != nil {
		profile = *snap.Profile
	}

	goals := make(map[string]bool, len(profile.Goals))
	for _, g := range profile.Goals {
		goals[string(g)] = true
	}

	v := pageView{
		HasCredential: snap.HasCredential,
		Profile:       profile,
		Snapshot:      brandSnapshot(snap.Profile),

		Platforms:  choices(models.PlatformOptions, func(k string) bool { return k == string(profile.Platform) }),
		Tones:      choices(models.ToneOptions, func(k string) bool { return k == string(profile.Tone) }),
		Industries: choices(models.IndustryOptions, func(k string) bool { return k == string(profile.Industry) }),
		Goals:      choices(models.GoalOptions, func(k string) bool { return goals[k] }),
		Lengths:    choices(models.LengthOptions, func(k string) bool { return k == string(profile.ContentLength) }),

		CaptionPlatforms: choices(models.PlatformOptions, func(k string) bool { return k == string(models.PlatformInstagram) }),
		Durations:        numChoices([]int{7, 14, 30}, panels.DefaultDurationDays),
		PostsPerWeek:     numChoices([]int{3, 5, 7}, panels.DefaultPostsPerWeek),
		IdeaCount:        panels.DefaultIdeas,
		CaptionCount:     panels.DefaultCaptions,
		Limits: map[string]int{
			"MinIdeas":    panels.MinIdeas,
			"MaxIdeas":    panels.MaxIdeas,
			"MinCaptions": panels.MinCaptions,
			"MaxCaptions": panels.MaxCaptions,
		},

		Ideas: panelView{
			Key: "ideas", Title: "🔥 Generated Ideas",
			Result:      snap.Result(models.ModeIdeas),
			Placeholder: "👈 Enter your focus area and click 'Generate Ideas' to get started!",
		},
		Captions: panelView{
			Key: "captions", Title: "🎯 Caption Suggestions",
			Result:      snap.Result(models.ModeCaptions),
			Placeholder: "Describe your post and click 'Generate Captions'.",
		},
		Calendar: panelView{
			Key: "calendar", Title: "🗓️ Your Content Plan",
			Result:      snap.Result(models.ModeCalendar),
			Placeholder: "Pick a duration and click 'Generate Calendar'.",
		},
		VoiceAnalysis: panelView{
			Key: "voice-analysis", Title: "🔍 Voice Analysis",
			Result:      snap.Result(models.ModeVoiceAnalysis),
			Placeholder: "Paste sample content and click 'Analyze Voice'.",
		},
		VoiceRewrite: panelView{
			Key: "voice-rewrite", Title: "🎭 Rewritten Text",
			Result:      snap.Result(models.ModeVoiceRewrite),
			Placeholder: "Enter text and click 'Rewrite'.",
		},
		Inputs: map[string]string{},
	}
	if profile.ContentLength == "" {
		for i := range v.Lengths {
			v.Lengths[i].Selected = v.Lengths[i].Key == string(models.LengthMedium)
		}
	}
	return v
}

// warn attaches a MissingInput warning to the panel owning mode.
func (v *pageView) warn(mode models.Mode, warning string) {
	switch mode {
	case models.ModeIdeas:
		v.Ideas.Warning = warning
	case models.ModeCaptions:
		v.Captions.Warning = warning
	case models.ModeCalendar:
		v.Calendar.Warning = warning
	case models.ModeVoiceAnalysis:
		v.VoiceAnalysis.Warning = warning
	case models.ModeVoiceRewrite:
		v.VoiceRewrite.Warning = warning
	}
}

// keepIdeas carries the submitted idea form back into the view.
func (v *pageView) keepIdeas(focus string, count int) {
	v.Inputs["focus"] = focus
	if count != 0 {
		v.IdeaCount = count
	}
}

func (v *pageView) keepCaptions(description string, platform models.Platform, count int) {
	v.Inputs["caption_description"] = description
	if platform != "" {
		v.CaptionPlatforms = choices(models.PlatformOptions, func(k string) bool { return k == string(platform) })
	}
	if count != 0 {
		v.CaptionCount = count
	}
}

func (v *pageView) keepCalendar(days, postsPerWeek int) {
	if days != 0 {
		v.Durations = selectNum(v.Durations, days)
	}
	if postsPerWeek != 0 {
		v.PostsPerWeek = selectNum(v.PostsPerWeek, postsPerWeek)
	}
}

func (v *pageView) keepVoice(sample, target string) {
	v.Inputs["sample"] = sample
	v.Inputs["target"] = target
}

func brandSnapshot(p *models.BrandProfile) snapshotView {
	if p == nil {
		return snapshotView{Emoji: models.PlatformInstagram.Emoji(), Platform: notSet, Tone: notSet, Industry: notSet}
	}
	return snapshotView{
		Emoji:    p.Platform.Emoji(),
		Platform: orNotSet(p.Platform.Label()),
		Tone:     orNotSet(p.Tone.Label()),
		Industry: orNotSet(p.Industry.Label()),
	}
}

func choices(opts []models.Option, selected func(string) bool) []choice {
	out := make([]choice, 0, len(opts))
	for _, o := range opts {
		out = append(out, choice{Key: o.Key, Label: o.Label, Selected: selected(o.Key)})
	}
	return out
}

func numChoices(values []int, selected int) []numChoice {
	out := make([]numChoice, 0, len(values))
	for _, n := range values {
		out = append(out, numChoice{Value: n, Selected: n == selected})
	}
	return out
}

// selectNum leaves the choices untouched when n is not one of them.
func selectNum(opts []numChoice, n int) []numChoice {
	found := false
	for _, o := range opts {
		if o.Value == n {
			found = true
			break
		}
	}
	if !found {
		return opts
	}
	out := make([]numChoice, len(opts))
	for i, o := range opts {
		out[i] = numChoice{Value: o.Value, Selected: o.Value == n}
	}
	return out
}

func orNotSet(s string) string {
	if s == "" {
		return notSet
	}
	return s
}
