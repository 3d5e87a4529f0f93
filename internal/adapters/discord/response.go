package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "emotebot/pkg/discord"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	return userDisplayName(member.User)
}

func userDisplayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// interactionUser returns the invoking user, from the member in guilds or
// the user in DMs.
func interactionUser(i *discordgo.Interaction) (*discordgo.User, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User, resolveDisplayName(i.Member)
	}
	if i.User != nil {
		return i.User, userDisplayName(i.User)
	}
	return nil, ""
}

// optionMap indexes the top-level options of a command by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	opt, ok := opts[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return "", false
	}
	return opt.StringValue(), true
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	respond(s, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func respond(s *discordgo.Session, i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("⚠️ Erreur lors de la réponse à l'interaction %s: %v", i.ID, err)
	}
}

func (h *Handler) respondError(s *discordgo.Session, i *discordgo.Interaction, err error) {
	log.Printf("❌ %v", err)
	respondEphemeral(s, i, pkgdiscord.DomainErrorMessage(h.translator, string(i.Locale), err))
}
