package prompt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/creator-command-center/internal/models"
	json "github.com/goccy/go-json"
)

const (
	// Placeholder stands in for any brand profile field that was never set.
	Placeholder = "Not specified"
	// NoParams is written when a request carries no extra parameters.
	NoParams = "None"
)

const SystemPrompt = `You are "Creator Command Center" – an expert social media strategist and content creator.

GOAL:
- Help businesses and creators generate high-quality:
  - Post ideas
  - Captions & hooks
  - Hashtags
  - Weekly / monthly content plans
  - Platform-specific variations (Instagram, LinkedIn, X, YouTube Shorts, etc.)

STYLE:
- Be concise but creative.
- Always think in terms of audience, platform, and goal (awareness, engagement, conversion).
- Prefer simple, catchy language over jargon.
- Avoid generic "We are pleased to..." corporate tone unless the user requests it.

OUTPUT MODES (very important):
- If user asks for:
  - "ideas" → Give at least 10 post ideas with short descriptions.
  - "captions" → Give 5–10 caption options with hooks + CTA + emoji suggestions.
  - "calendar" or "plan" → Create a table-style 7-day or 30-day content plan with Day, Theme, Post idea, Post type, Caption outline
  - "platform variations" → Rewrite the same idea for multiple platforms.
  - "hashtag set" → Give 2–3 hashtag groups (high reach + niche + branded).

FORMAT:
- Use clear headings and bullet points.
- Use markdown where helpful (tables, bold, lists).
- Never include code unless explicitly asked.
- Never mention that you are an AI model; refer to yourself as "Creator Command Center".`

// Compose assembles the full prompt for one request. A nil profile renders
// every field as the placeholder. User text is passed through untouched.
func Compose(profile *models.BrandProfile, req models.GenerationRequest) string {
	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "MODE: %s\n\n", req.Mode())
	b.WriteString("BRAND PROFILE:\n")
	b.WriteString(ProfileSection(profile))
	fmt.Fprintf(&b, "\nUSER INPUT: %s\n\n", req.UserInput)
	fmt.Fprintf(&b, "EXTRA PARAMETERS: %s\n", ParamsSection(req.Params))
	return b.String()
}

// ProfileSection renders one "Key: value" line per profile field.
func ProfileSection(profile *models.BrandProfile) string {
	var p models.BrandProfile
	if profile != nil {
		p = *profile
	}

	var b strings.Builder
	line := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			value = Placeholder
		}
		fmt.Fprintf(&b, "%s: %s\n", key, value)
	}

	line("Brand Name", p.Name)
	line("Platform", p.Platform.Label())
	line("Tone", p.Tone.Label())
	line("Industry", p.Industry.Label())
	line("Goals", strings.Join(p.GoalLabels(), ", "))
	line("Description", p.Description)
	line("Content Length", p.ContentLength.Label())
	return b.String()
}

// ParamsSection dumps params as indented JSON, or NoParams when there is
// nothing to report.
func ParamsSection(params models.Params) string {
	switch params.(type) {
	case nil, models.VoiceAnalysisParams, *models.VoiceAnalysisParams:
		return NoParams
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(params); err != nil {
		// Plain structs of strings and ints always marshal.
		return fmt.Sprintf("%+v", params)
	}
	return strings.TrimRight(buf.String(), "\n")
}
