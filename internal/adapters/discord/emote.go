package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
	"emotebot/internal/ports/input"
	pkgdiscord "emotebot/pkg/discord"
)

const (
	maxSuggestions = 3
	// Stand-in target for /emotes when no target is given.
	placeholderTargetName = "Puruo Jelly"
)

// language picks the explicit option, then the saved preference, then the
// locale of the Discord client.
func language(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, saved entities.Language, locale discordgo.Locale) entities.Language {
	if v, ok := stringOption(opts, optionLanguage); ok {
		if lang, err := entities.ParseLanguage(v); err == nil {
			return lang
		}
	}
	if saved != "" {
		return saved
	}
	return entities.MatchLanguage(string(locale))
}

// resolvedUser returns the user behind a user option and its display name,
// using the data Discord resolved with the interaction.
func resolvedUser(data discordgo.ApplicationCommandInteractionData, opt *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.User, string) {
	id := opt.UserValue(nil).ID
	user := &discordgo.User{ID: id}
	if data.Resolved != nil {
		if u, ok := data.Resolved.Users[id]; ok {
			user = u
		}
		if m, ok := data.Resolved.Members[id]; ok && m.Nick != "" {
			return user, m.Nick
		}
	}
	return user, userDisplayName(user)
}

// characters resolves the invoking user and the optional target into
// characters. Both are seen by third parties, so neither is self.
func (h *Handler) characters(ctx context.Context, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (origin logmessage.Character, target *logmessage.Character, lang entities.Language, err error) {
	user, name := interactionUser(i.Interaction)
	if user == nil {
		return origin, nil, "", errors.New("interaction without user")
	}
	origin, saved, err := h.settingsUseCase.Character(ctx, user.ID, name)
	if err != nil {
		return origin, nil, "", err
	}
	if opt, ok := opts[optionTarget]; ok {
		tu, tname := resolvedUser(i.ApplicationCommandData(), opt)
		t, _, err := h.settingsUseCase.Character(ctx, tu.ID, tname)
		if err != nil {
			return origin, nil, "", err
		}
		target = &t
	}
	return origin, target, language(opts, saved, i.Locale), nil
}

func (h *Handler) HandleEmote(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := interactionContext()
	defer cancel()

	opts := optionMap(i.ApplicationCommandData().Options)
	command, _ := stringOption(opts, optionName)
	origin, target, lang, err := h.characters(ctx, i, opts)
	if err != nil {
		h.respondError(s, i.Interaction, err)
		return
	}

	text, err := h.emoteUseCase.Render(ctx, input.RenderRequest{
		Command:    command,
		Language:   lang,
		Origin:     origin,
		Target:     target,
		WorldNames: h.worldNames,
	})
	if err != nil {
		h.respondEmoteError(ctx, s, i.Interaction, command, err)
		return
	}

	user, _ := interactionUser(i.Interaction)
	locale := string(i.Locale)
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildEmoteEmbed(pkgdiscord.EmoteEmbedData{
			Text:       text,
			Footer:     h.translator.T(locale, "emote.footer", map[string]any{"Command": command}),
			AuthorName: origin.Name,
			AuthorIcon: user.AvatarURL(""),
		})},
	})
}

// HandlePerspectives shows the invoking user every point of view of an emote.
func (h *Handler) HandlePerspectives(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := interactionContext()
	defer cancel()

	opts := optionMap(i.ApplicationCommandData().Options)
	command, _ := stringOption(opts, optionName)
	origin, target, lang, err := h.characters(ctx, i, opts)
	if err != nil {
		h.respondError(s, i.Interaction, err)
		return
	}
	other := logmessage.Character{Name: placeholderTargetName, IsPlayer: true}
	if target != nil {
		other = *target
	}

	texts, err := h.emoteUseCase.Perspectives(ctx, command, lang, origin, other)
	if err != nil {
		h.respondEmoteError(ctx, s, i.Interaction, command, err)
		return
	}

	locale := string(i.Locale)
	label := func(key string) string { return h.translator.T(locale, "emote.perspective."+key, nil) }
	embed := pkgdiscord.BuildFieldsEmbed(command, []pkgdiscord.Field{
		{Name: label("you_untargeted"), Value: texts.YouUntargeted},
		{Name: label("you_target_other"), Value: texts.YouTargetOther},
		{Name: label("other_target_you"), Value: texts.OtherTargetYou},
		{Name: label("other_target_other"), Value: texts.OtherTargetOther},
		{Name: label("other_untargeted"), Value: texts.OtherUntargeted},
	})
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

// respondEmoteError suggests close commands when the emote is unknown.
func (h *Handler) respondEmoteError(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, command string, err error) {
	if !errors.Is(err, domain.ErrEmoteNotFound) {
		h.respondError(s, i, err)
		return
	}
	suggestions, serr := h.emoteUseCase.Suggest(ctx, command, maxSuggestions)
	if serr != nil || len(suggestions) == 0 {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i, h.translator.T(string(i.Locale), "emote.suggestion", map[string]any{
		"Suggestions": strings.Join(suggestions, ", "),
	}))
}
