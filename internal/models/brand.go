package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOption = errors.New("unknown option")

type Platform string

const (
	PlatformInstagram     Platform = "Instagram"
	PlatformLinkedIn      Platform = "LinkedIn"
	PlatformX             Platform = "X"
	PlatformYouTubeShorts Platform = "YouTubeShorts"
)

type Tone string

const (
	TonePlayful      Tone = "Playful"
	ToneProfessional Tone = "Professional"
	ToneBold         Tone = "Bold"
	ToneMinimal      Tone = "Minimal"
	ToneStoryteller  Tone = "Storyteller"
)

type Industry string

const (
	IndustryECommerce     Industry = "ECommerce"
	IndustryEduTech       Industry = "EduTech"
	IndustryHealthFitness Industry = "HealthFitness"
	IndustryPersonalBrand Industry = "PersonalBrand"
	IndustryOther         Industry = "Other"
)

type Goal string

const (
	GoalBrandAwareness    Goal = "BrandAwareness"
	GoalEngagement        Goal = "Engagement"
	GoalLeadGeneration    Goal = "LeadGeneration"
	GoalSales             Goal = "Sales"
	GoalCommunityBuilding Goal = "CommunityBuilding"
)

type ContentLength string

const (
	LengthShort  ContentLength = "Short"
	LengthMedium ContentLength = "Medium"
	LengthLong   ContentLength = "Long"
)

// Option is one selectable value of an enum field, as shown in forms.
type Option struct {
	Key   string
	Label string
}

var (
	PlatformOptions = []Option{
		{string(PlatformInstagram), "Instagram"},
		{string(PlatformLinkedIn), "LinkedIn"},
		{string(PlatformX), "X (Twitter)"},
		{string(PlatformYouTubeShorts), "YouTube Shorts"},
	}
	ToneOptions = []Option{
		{string(TonePlayful), "Playful"},
		{string(ToneProfessional), "Professional"},
		{string(ToneBold), "Bold"},
		{string(ToneMinimal), "Minimal"},
		{string(ToneStoryteller), "Storyteller"},
	}
	IndustryOptions = []Option{
		{string(IndustryECommerce), "E-commerce"},
		{string(IndustryEduTech), "EduTech"},
		{string(IndustryHealthFitness), "Health & Fitness"},
		{string(IndustryPersonalBrand), "Personal Brand"},
		{string(IndustryOther), "Other"},
	}
	GoalOptions = []Option{
		{string(GoalBrandAwareness), "Brand Awareness"},
		{string(GoalEngagement), "Engagement"},
		{string(GoalLeadGeneration), "Lead Generation"},
		{string(GoalSales), "Sales"},
		{string(GoalCommunityBuilding), "Community Building"},
	}
	LengthOptions = []Option{
		{string(LengthShort), "Short"},
		{string(LengthMedium), "Medium"},
		{string(LengthLong), "Long"},
	}
)

var platformEmoji = map[Platform]string{
	PlatformInstagram:     "📸",
	PlatformLinkedIn:      "💼",
	PlatformX:             "🐦",
	PlatformYouTubeShorts: "▶️",
}

func labelOf(opts []Option, key string) string {
	for _, o := range opts {
		if o.Key == key {
			return o.Label
		}
	}
	return ""
}

// lookup accepts either the wire key or the display label.
func lookup(opts []Option, field, v string) (string, error) {
	v = strings.TrimSpace(v)
	for _, o := range opts {
		if strings.EqualFold(o.Key, v) || strings.EqualFold(o.Label, v) {
			return o.Key, nil
		}
	}
	return "", fmt.Errorf("%s %q: %w", field, v, ErrUnknownOption)
}

func (p Platform) Label() string      { return labelOf(PlatformOptions, string(p)) }
func (t Tone) Label() string          { return labelOf(ToneOptions, string(t)) }
func (i Industry) Label() string      { return labelOf(IndustryOptions, string(i)) }
func (g Goal) Label() string          { return labelOf(GoalOptions, string(g)) }
func (l ContentLength) Label() string { return labelOf(LengthOptions, string(l)) }

// Emoji falls back to a generic phone for unset or unknown platforms.
func (p Platform) Emoji() string {
	if e, ok := platformEmoji[p]; ok {
		return e
	}
	return "📱"
}

func ParsePlatform(v string) (Platform, error) {
	k, err := lookup(PlatformOptions, "platform", v)
	return Platform(k), err
}

func ParseTone(v string) (Tone, error) {
	k, err := lookup(ToneOptions, "tone", v)
	return Tone(k), err
}

func ParseIndustry(v string) (Industry, error) {
	k, err := lookup(IndustryOptions, "industry", v)
	return Industry(k), err
}

func ParseGoal(v string) (Goal, error) {
	k, err := lookup(GoalOptions, "goal", v)
	return Goal(k), err
}

func ParseContentLength(v string) (ContentLength, error) {
	k, err := lookup(LengthOptions, "content length", v)
	return ContentLength(k), err
}

// BrandProfile describes the brand every prompt is written for. A zero
// value field means "not specified".
type BrandProfile struct {
	Name          string        `json:"name"`
	Platform      Platform      `json:"platform"`
	Tone          Tone          `json:"tone"`
	Industry      Industry      `json:"industry"`
	Goals         []Goal        `json:"goals"`
	Description   string        `json:"description"`
	ContentLength ContentLength `json:"content_length"`
}

func (b BrandProfile) GoalLabels() []string {
	labels := make([]string, 0, len(b.Goals))
	for _, g := range b.Goals {
		labels = append(labels, g.Label())
	}
	return labels
}

// Clone returns a copy that shares no slices with b.
func (b BrandProfile) Clone() BrandProfile {
	out := b
	if b.Goals != nil {
		out.Goals = append([]Goal(nil), b.Goals...)
	}
	return out
}
