package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/ports/input"
)

// settingsUpdate collects the options of /settings. ok is false when none
// was given.
func settingsUpdate(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (update input.SettingsUpdate, ok bool) {
	set := func(name string) *string {
		if v, found := stringOption(opts, name); found {
			ok = true
			return &v
		}
		return nil
	}
	update.CharacterName = set(optionName)
	update.World = set(optionWorld)
	update.Gender = set(optionGender)
	update.Language = set(optionLanguage)
	return update, ok
}

func (h *Handler) HandleSettings(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := interactionContext()
	defer cancel()

	user, _ := interactionUser(i.Interaction)
	if user == nil {
		return
	}
	locale := string(i.Locale)
	opts := optionMap(i.ApplicationCommandData().Options)

	if reset, ok := opts[optionReset]; ok && reset.BoolValue() {
		if err := h.settingsUseCase.Delete(ctx, user.ID); err != nil {
			h.respondError(s, i.Interaction, err)
			return
		}
		respondEphemeral(s, i.Interaction, "🗑️ "+h.translator.T(locale, "settings.deleted", nil))
		return
	}

	update, ok := settingsUpdate(opts)
	if !ok {
		settings, err := h.settingsUseCase.Get(ctx, user.ID)
		if errors.Is(err, domain.ErrSettingsNotFound) {
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "settings.none", nil))
			return
		}
		if err != nil {
			h.respondError(s, i.Interaction, err)
			return
		}
		respondEphemeral(s, i.Interaction, h.describeSettings(locale, settings))
		return
	}

	settings, err := h.settingsUseCase.Update(ctx, user.ID, update)
	if err != nil {
		h.respondError(s, i.Interaction, err)
		return
	}
	respondEphemeral(s, i.Interaction, "✅ "+h.translator.T(locale, "settings.updated", nil)+"\n"+h.describeSettings(locale, settings))
}

func (h *Handler) describeSettings(locale string, settings *entities.UserSettings) string {
	name := settings.CharacterName
	if name == "" {
		name = "-"
	}
	world := settings.World
	if world == "" {
		world = "-"
	}
	lang := settings.Language.String()
	if lang == "" {
		lang = "-"
	}
	return h.translator.T(locale, "settings.show", map[string]any{
		"Name":     name,
		"World":    world,
		"Gender":   settings.Gender.String(),
		"Language": lang,
	})
}
