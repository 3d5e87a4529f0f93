package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
	"emotebot/internal/ports/input"
)

type fakeSettingsRepo struct {
	mu    sync.Mutex
	items map[string]entities.UserSettings
	err   error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{items: make(map[string]entities.UserSettings)}
}

func (r *fakeSettingsRepo) FindByUserID(ctx context.Context, userID string) (*entities.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.items[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	return &s, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, settings *entities.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[settings.UserID] = *settings
	return nil
}

func (r *fakeSettingsRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[userID]; !ok {
		return domain.ErrSettingsNotFound
	}
	delete(r.items, userID)
	return nil
}

func ptr(s string) *string { return &s }

func TestSettingsUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(newFakeSettingsRepo())

	s, err := svc.Update(ctx, "42", input.SettingsUpdate{CharacterName: ptr(" K'haldru Alaba "), Gender: ptr("Female")})
	if err != nil {
		t.Fatal(err)
	}
	if s.CharacterName != "K'haldru Alaba" || s.Gender != logmessage.Female || s.Language != "" {
		t.Fatalf("settings = %+v", s)
	}

	s, err = svc.Update(ctx, "42", input.SettingsUpdate{World: ptr("Gilgamesh"), Language: ptr("JA")})
	if err != nil {
		t.Fatal(err)
	}
	if s.CharacterName != "K'haldru Alaba" || s.World != "Gilgamesh" || s.Language != entities.LanguageJa {
		t.Fatalf("partial update lost fields: %+v", s)
	}

	got, err := svc.Get(ctx, "42")
	if err != nil || got.World != "Gilgamesh" {
		t.Fatalf("Get = %+v, %v", got, err)
	}
}

func TestSettingsUpdateRejects(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(newFakeSettingsRepo())
	if _, err := svc.Update(ctx, "1", input.SettingsUpdate{Gender: ptr("x")}); !errors.Is(err, domain.ErrInvalidGender) {
		t.Fatalf("error = %v, want ErrInvalidGender", err)
	}
	if _, err := svc.Update(ctx, "1", input.SettingsUpdate{Language: ptr("de")}); !errors.Is(err, domain.ErrInvalidLanguage) {
		t.Fatalf("error = %v, want ErrInvalidLanguage", err)
	}
	if _, err := svc.Get(ctx, "1"); !errors.Is(err, domain.ErrSettingsNotFound) {
		t.Fatalf("rejected update was saved: %v", err)
	}
}

func TestSettingsCharacter(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	c, lang, err := svc.Character(ctx, "7", "Discord Name")
	if err != nil {
		t.Fatal(err)
	}
	want := logmessage.Character{Name: "Discord Name", Gender: logmessage.Male, IsPlayer: true}
	if c != want || lang != "" {
		t.Fatalf("Character = %+v, %q", c, lang)
	}

	if _, err := svc.Update(ctx, "7", input.SettingsUpdate{CharacterName: ptr("Puruo Jelly")}); err != nil {
		t.Fatal(err)
	}
	if _, lang, err = svc.Character(ctx, "7", "Discord Name"); err != nil || lang != "" {
		t.Fatalf("language after saving only a name = %q, %v, want none", lang, err)
	}

	if _, err := svc.Update(ctx, "7", input.SettingsUpdate{CharacterName: ptr("Puruo Jelly"), Language: ptr("ja")}); err != nil {
		t.Fatal(err)
	}
	c, lang, err = svc.Character(ctx, "7", "Discord Name")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Puruo Jelly" || lang != entities.LanguageJa {
		t.Fatalf("Character = %+v, %q", c, lang)
	}

	if err := svc.Delete(ctx, "7"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "7"); !errors.Is(err, domain.ErrSettingsNotFound) {
		t.Fatalf("second delete = %v", err)
	}

	repo.err = errors.New("db down")
	if _, _, err := svc.Character(ctx, "7", "x"); err == nil {
		t.Fatal("expected repository error")
	}
}
