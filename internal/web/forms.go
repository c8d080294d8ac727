package web

import (
	"github.com/BerylCAtieno/creator-command-center/internal/models"
)

type credentialForm struct {
	APIKey string `form:"api_key" json:"api_key"`
}

type profileForm struct {
	Name          string   `form:"name" json:"name"`
	Platform      string   `form:"platform" json:"platform"`
	Tone          string   `form:"tone" json:"tone"`
	Industry      string   `form:"industry" json:"industry"`
	Goals         []string `form:"goals" json:"goals"`
	Description   string   `form:"description" json:"description"`
	ContentLength string   `form:"content_length" json:"content_length"`
}

// toProfile validates enum fields. Empty values stay unset.
func (f profileForm) toProfile() (models.BrandProfile, error) {
	p := models.BrandProfile{
		Name:        f.Name,
		Description: f.Description,
	}

	var err error
	if f.Platform != "" {
		if p.Platform, err = models.ParsePlatform(f.Platform); err != nil {
			return p, err
		}
	}
	if f.Tone != "" {
		if p.Tone, err = models.ParseTone(f.Tone); err != nil {
			return p, err
		}
	}
	if f.Industry != "" {
		if p.Industry, err = models.ParseIndustry(f.Industry); err != nil {
			return p, err
		}
	}
	if f.ContentLength != "" {
		if p.ContentLength, err = models.ParseContentLength(f.ContentLength); err != nil {
			return p, err
		}
	}

	seen := make(map[models.Goal]bool, len(f.Goals))
	for _, raw := range f.Goals {
		if raw == "" {
			continue
		}
		g, err := models.ParseGoal(raw)
		if err != nil {
			return p, err
		}
		if !seen[g] {
			seen[g] = true
			p.Goals = append(p.Goals, g)
		}
	}
	return p, nil
}

type ideasForm struct {
	Focus string `form:"focus" json:"focus"`
	Count int    `form:"count" json:"count" binding:"omitempty,min=3,max=20"`
}

type captionsForm struct {
	Description string `form:"description" json:"description"`
	Platform    string `form:"platform" json:"platform"`
	Count       int    `form:"count" json:"count" binding:"omitempty,min=3,max=10"`
}

type calendarForm struct {
	Duration     int `form:"duration" json:"duration" binding:"omitempty,oneof=7 14 30"`
	PostsPerWeek int `form:"posts_per_week" json:"posts_per_week" binding:"omitempty,oneof=3 5 7"`
}

type voiceForm struct {
	Sample string `form:"sample" json:"sample"`
	Target string `form:"target" json:"target"`
}
