package session

import (
	"testing"
	"time"

	"github.com/BerylCAtieno/creator-command-center/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionIsEmpty(t *testing.T) {
	s := New("id-1")
	snap := s.Snapshot()

	assert.Equal(t, "id-1", snap.ID)
	assert.False(t, snap.HasCredential)
	assert.Nil(t, snap.Profile)
	assert.Nil(t, s.Profile())
	for _, m := range models.Modes {
		_, ok := s.Result(m)
		assert.False(t, ok, "mode %s", m)
	}
}

func TestSaveProfileReplacesWholesale(t *testing.T) {
	s := New("id")
	s.SaveProfile(models.BrandProfile{Name: "First", Tone: models.ToneBold, Goals: []models.Goal{models.GoalSales}})
	s.SaveProfile(models.BrandProfile{Name: "Second"})

	p := s.Profile()
	require.NotNil(t, p)
	assert.Equal(t, "Second", p.Name)
	assert.Empty(t, p.Tone)
	assert.Empty(t, p.Goals)
}

func TestProfileIsCopied(t *testing.T) {
	s := New("id")
	in := models.BrandProfile{Name: "Acme", Goals: []models.Goal{models.GoalSales}}
	s.SaveProfile(in)
	in.Goals[0] = models.GoalEngagement

	out := s.Profile()
	out.Name = "changed"
	out.Goals[0] = models.GoalCommunityBuilding

	again := s.Profile()
	assert.Equal(t, "Acme", again.Name)
	assert.Equal(t, []models.Goal{models.GoalSales}, again.Goals)
}

func TestResultSlotsAreIndependent(t *testing.T) {
	s := New("id")
	s.SetResult(models.ModeVoiceAnalysis, "analysis")
	s.SetResult(models.ModeVoiceRewrite, "rewrite")
	s.SetResult(models.ModeVoiceAnalysis, "analysis v2")

	snap := s.Snapshot()
	assert.Equal(t, "analysis v2", snap.Result(models.ModeVoiceAnalysis))
	assert.Equal(t, "rewrite", snap.Result(models.ModeVoiceRewrite))
	assert.Equal(t, "", snap.Result(models.ModeIdeas))

	s.SetResult(models.ModeIdeas, "later")
	assert.Equal(t, "", snap.Result(models.ModeIdeas), "snapshots must not change after the fact")
}

func TestBeginActionSerializes(t *testing.T) {
	s := New("id")
	done := s.BeginAction()

	acquired := make(chan struct{})
	go func() {
		release := s.BeginAction()
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second action started while the first was running")
	case <-time.After(50 * time.Millisecond):
	}

	done()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second action never started")
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(time.Hour, nil)

	a := m.Create()
	b := m.Create()
	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, m.Count())

	a.SetCredential("secret")
	a.SetResult(models.ModeIdeas, "ideas")

	got, ok := m.Get(a.ID)
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = b.Result(models.ModeIdeas)
	assert.False(t, ok, "sessions must not share state")
	assert.Empty(t, b.Credential())

	m.End(a.ID)
	_, ok = m.Get(a.ID)
	assert.False(t, ok)
	assert.Empty(t, a.Credential(), "ending a session drops its credential")
	_, ok = a.Result(models.ModeIdeas)
	assert.False(t, ok)
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager(0, nil)
	_, ok := m.Get("")
	assert.False(t, ok)
	_, ok = m.Get("nope")
	assert.False(t, ok)
}
