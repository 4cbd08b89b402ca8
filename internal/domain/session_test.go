package domain

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession("Aria", LanguageHindi)
	snap := s.Snapshot()

	assert.Equal(t, "Aria", snap.Name)
	assert.Equal(t, LanguageHindi, snap.Language)
	assert.Equal(t, PhaseEditing, snap.Phase)
	assert.Empty(t, snap.Meaning)

	assert.Equal(t, LanguageEnglish, NewSession("Aria", "klingon").Snapshot().Language,
		"invalid language should fall back to english")
}

func TestSession_BeginLoading(t *testing.T) {
	t.Run("empty and whitespace names are rejected without state change", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t\n"} {
			s := NewSession(name, LanguageEnglish)
			before := s.Snapshot()

			_, err := s.BeginLoading()

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyName))
			assert.Equal(t, before, s.Snapshot())
		}
	})

	t.Run("moves to loading and clears previous meaning", func(t *testing.T) {
		s := NewSession("Aria", LanguageEnglish)
		_, err := s.BeginLoading()
		require.NoError(t, err)
		require.NoError(t, s.Complete("first"))

		snap, err := s.BeginLoading()

		require.NoError(t, err)
		assert.Equal(t, PhaseLoading, snap.Phase)
		assert.Equal(t, "Aria", snap.Name)
		assert.Empty(t, s.Snapshot().Meaning)
	})

	t.Run("second submit while loading is refused", func(t *testing.T) {
		s := NewSession("Aria", LanguageEnglish)
		_, err := s.BeginLoading()
		require.NoError(t, err)

		_, err = s.BeginLoading()

		assert.ErrorIs(t, err, ErrAlreadyLoading)
		assert.Equal(t, PhaseLoading, s.Snapshot().Phase)
	})

	t.Run("only one of many concurrent submits wins", func(t *testing.T) {
		s := NewSession("Aria", LanguageEnglish)

		var wg sync.WaitGroup
		var mu sync.Mutex
		wins := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.BeginLoading(); err == nil {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
	})
}

func TestSession_Complete(t *testing.T) {
	s := NewSession("Aria", LanguageEnglish)

	err := s.Complete("too early")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PhaseEditing, s.Snapshot().Phase)

	_, err = s.BeginLoading()
	require.NoError(t, err)
	require.NoError(t, s.Complete("Aria means star"))

	snap := s.Snapshot()
	assert.Equal(t, PhaseResult, snap.Phase)
	assert.Equal(t, "Aria means star", snap.Meaning)
}

func TestSession_Reset(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Session)
	}{
		{"from editing", func(*Session) {}},
		{"from loading", func(s *Session) { _, _ = s.BeginLoading() }},
		{"from result", func(s *Session) {
			_, _ = s.BeginLoading()
			_ = s.Complete("meaning")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession("Aria", LanguageMarathi)
			tt.setup(s)

			s.Reset()

			snap := s.Snapshot()
			assert.Equal(t, PhaseEditing, snap.Phase)
			assert.Empty(t, snap.Name)
			assert.Empty(t, snap.Meaning)
			assert.Equal(t, LanguageMarathi, snap.Language)
		})
	}
}

func TestSession_SharePayload(t *testing.T) {
	s := NewSession("Aria", LanguageEnglish)

	_, err := s.SharePayload("")
	assert.ErrorIs(t, err, ErrNothingToShare)

	_, err = s.BeginLoading()
	require.NoError(t, err)
	require.NoError(t, s.Complete("Guardian of lost tv remotes"))

	payload, err := s.SharePayload("https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, SharePayload{
		Title: "My Name Magic",
		Text:  "Aria is a Guardian of lost tv remotes",
		URL:   "https://example.com/",
	}, payload)
	assert.Equal(t, PhaseResult, s.Snapshot().Phase, "sharing must not change the phase")
}

func TestSession_Observe(t *testing.T) {
	s := NewSession("Aria", LanguageEnglish)

	var got [][2]Phase
	s.Observe(func(from, to Phase) {
		got = append(got, [2]Phase{from, to})
	})

	_, err := s.BeginLoading()
	require.NoError(t, err)
	require.NoError(t, s.Complete("star"))
	s.Reset()
	s.Reset()

	assert.Equal(t, [][2]Phase{
		{PhaseEditing, PhaseLoading},
		{PhaseLoading, PhaseResult},
		{PhaseResult, PhaseEditing},
	}, got, "a reset from editing is not a transition")
}
