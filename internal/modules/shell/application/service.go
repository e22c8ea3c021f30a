package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	prefsDomain "github.com/unilab/labdash/internal/modules/preferences/domain"
	"github.com/unilab/labdash/internal/modules/shell/domain"
	"github.com/unilab/labdash/internal/shared/filter"
)

type ShellService struct {
	index  []domain.NavEntry
	prefs  prefsDomain.Store
	logger *slog.Logger
}

func NewShellService(index []domain.NavEntry, prefs prefsDomain.Store, logger *slog.Logger) *ShellService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShellService{index: index, prefs: prefs, logger: logger}
}

// Navigation returns the whole index.
func (s *ShellService) Navigation() []domain.NavEntry {
	out := make([]domain.NavEntry, len(s.index))
	copy(out, s.index)
	return out
}

// Search returns, in index order, the entries where every query word appears
// in the title or in a keyword. An empty query matches nothing.
func (s *ShellService) Search(query string) []domain.NavEntry {
	words := strings.Fields(filter.Fold(query))
	out := []domain.NavEntry{}
	if len(words) == 0 {
		return out
	}
	for _, e := range s.index {
		if matchesAll(e, words) {
			out = append(out, e)
		}
	}
	return out
}

func matchesAll(e domain.NavEntry, words []string) bool {
	fields := make([]string, 0, len(e.Keywords)+1)
	fields = append(fields, filter.Fold(e.Title))
	for _, k := range e.Keywords {
		fields = append(fields, filter.Fold(k))
	}
	for _, w := range words {
		found := false
		for _, f := range fields {
			if strings.Contains(f, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Preferences reads the stored chrome state. Missing or unreadable values
// fall back to the defaults.
func (s *ShellService) Preferences(ctx context.Context) (domain.Preferences, error) {
	p := domain.Preferences{FontScale: domain.DefaultFontScale}

	raw, ok, err := s.prefs.Get(ctx, prefsDomain.KeyFontScale)
	if err != nil {
		return p, err
	}
	if ok {
		if n, err := strconv.Atoi(raw); err == nil {
			p.FontScale = domain.ClampFontScale(n)
		}
	}

	raw, ok, err = s.prefs.Get(ctx, prefsDomain.KeySidebarPinned)
	if err != nil {
		return p, err
	}
	if ok {
		p.SidebarPinned, _ = strconv.ParseBool(raw)
	}
	return p, nil
}

func (s *ShellService) UpdatePreferences(ctx context.Context, u domain.PreferencesUpdate) (domain.Preferences, error) {
	if u.FontScale != nil {
		if err := s.prefs.Set(ctx, prefsDomain.KeyFontScale, strconv.Itoa(domain.ClampFontScale(*u.FontScale))); err != nil {
			return domain.Preferences{}, fmt.Errorf("save font scale: %w", err)
		}
	}
	if u.SidebarPinned != nil {
		if err := s.prefs.Set(ctx, prefsDomain.KeySidebarPinned, strconv.FormatBool(*u.SidebarPinned)); err != nil {
			return domain.Preferences{}, fmt.Errorf("save sidebar pin: %w", err)
		}
	}
	return s.Preferences(ctx)
}

// AdjustFontScale applies one of the navbar font buttons.
func (s *ShellService) AdjustFontScale(ctx context.Context, action domain.FontAction) (domain.Preferences, error) {
	current, err := s.Preferences(ctx)
	if err != nil {
		return current, err
	}
	next, err := action.Apply(current.FontScale)
	if err != nil {
		return current, err
	}
	return s.UpdatePreferences(ctx, domain.PreferencesUpdate{FontScale: &next})
}
