package entities

import (
	"testing"

	"emotebot/internal/logmessage"
)

func TestEmoteMarkup(t *testing.T) {
	e := &Emote{
		ID:       1,
		Name:     "Surprised",
		Commands: []string{"/surprised", "/おどろく"},
		En:       LogMessagePair{Targeted: "en-t", Untargeted: "en-u"},
		Ja:       LogMessagePair{Targeted: "ja-t", Untargeted: "ja-u"},
	}
	tests := []struct {
		lang     Language
		targeted bool
		want     string
	}{
		{LanguageEn, true, "en-t"},
		{LanguageEn, false, "en-u"},
		{LanguageJa, true, "ja-t"},
		{LanguageJa, false, "ja-u"},
		{Language("fr"), true, "en-t"},
	}
	for _, tc := range tests {
		if got := e.Markup(tc.lang, tc.targeted); got != tc.want {
			t.Errorf("Markup(%s, %t) = %q, want %q", tc.lang, tc.targeted, got, tc.want)
		}
	}
	if got := e.Command(); got != "/surprised" {
		t.Errorf("Command() = %q", got)
	}
	if got := (&Emote{Name: "Wave"}).Command(); got != "Wave" {
		t.Errorf("Command() without commands = %q", got)
	}
}

func TestNormalizeCommand(t *testing.T) {
	for in, want := range map[string]string{
		"/Surprised":  "surprised",
		"surprised":   "surprised",
		" /おどろく ":     "おどろく",
		"//double":    "/double",
		"":            "",
	} {
		if got := NormalizeCommand(in); got != want {
			t.Errorf("NormalizeCommand(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	for in, want := range map[string]Language{
		"en-US":   LanguageEn,
		"en-GB":   LanguageEn,
		"ja":      LanguageJa,
		"fr":      LanguageEn,
		"garbage": LanguageEn,
		"":        LanguageEn,
	} {
		if got := MatchLanguage(in); got != want {
			t.Errorf("MatchLanguage(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseLanguage("de"); err == nil {
		t.Error("ParseLanguage(de) should fail")
	}
	if l, err := ParseLanguage("ja"); err != nil || l != LanguageJa {
		t.Errorf("ParseLanguage(ja) = %s, %v", l, err)
	}
}

func TestUserSettingsCharacter(t *testing.T) {
	s := &UserSettings{World: "Gilgamesh", Gender: logmessage.Female}
	c := s.Character("display")
	want := logmessage.Character{Name: "display", World: "Gilgamesh", Gender: logmessage.Female, IsPlayer: true}
	if c != want {
		t.Fatalf("Character = %+v, want %+v", c, want)
	}
	s.CharacterName = "K'haldru Alaba"
	if got := s.Character("display").Name; got != "K'haldru Alaba" {
		t.Fatalf("Name = %q", got)
	}
}
