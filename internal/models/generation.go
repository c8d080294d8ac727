package models

import "fmt"

type Mode string

const (
	ModeIdeas         Mode = "IDEAS"
	ModeCaptions      Mode = "CAPTIONS"
	ModeCalendar      Mode = "CALENDAR"
	ModeVoiceAnalysis Mode = "VOICE_ANALYSIS"
	ModeVoiceRewrite  Mode = "VOICE_REWRITE"
)

// Modes lists every mode in panel order.
var Modes = []Mode{ModeIdeas, ModeCaptions, ModeCalendar, ModeVoiceAnalysis, ModeVoiceRewrite}

// CalendarUserInput is the fixed instruction sent with every calendar request.
const CalendarUserInput = "Generate a comprehensive content calendar"

// Params carries the mode-specific extra parameters of a request. Each mode
// has exactly one implementation; the interface is sealed to this package.
type Params interface {
	Mode() Mode
	sealed()
}

type IdeaParams struct {
	NumIdeas int `json:"num_ideas"`
}

type CaptionParams struct {
	Platform    string `json:"platform"`
	NumCaptions int    `json:"num_captions"`
}

type CalendarParams struct {
	Duration     string `json:"duration"`
	PostsPerWeek int    `json:"posts_per_week"`
}

// VoiceAnalysisParams carries nothing; analysis prompts report "None".
type VoiceAnalysisParams struct{}

type VoiceRewriteParams struct {
	Sample string `json:"sample"`
}

func (IdeaParams) Mode() Mode          { return ModeIdeas }
func (CaptionParams) Mode() Mode       { return ModeCaptions }
func (CalendarParams) Mode() Mode      { return ModeCalendar }
func (VoiceAnalysisParams) Mode() Mode { return ModeVoiceAnalysis }
func (VoiceRewriteParams) Mode() Mode  { return ModeVoiceRewrite }

func (IdeaParams) sealed()          {}
func (CaptionParams) sealed()       {}
func (CalendarParams) sealed()      {}
func (VoiceAnalysisParams) sealed() {}
func (VoiceRewriteParams) sealed()  {}

// DurationLabel renders a calendar length in days the way prompts expect it.
func DurationLabel(days int) string {
	return fmt.Sprintf("%d days", days)
}

// GenerationRequest is built per action and never stored.
type GenerationRequest struct {
	UserInput string
	Params    Params
}

func (r GenerationRequest) Mode() Mode {
	if r.Params == nil {
		return ""
	}
	return r.Params.Mode()
}
