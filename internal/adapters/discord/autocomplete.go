package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Discord shows at most 25 choices.
const maxChoices = 25

func focusedOption(options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

func choices(values []string) []*discordgo.ApplicationCommandOptionChoice {
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
	}
	return out
}

// HandleAutocomplete suggests emote commands while the name option is typed.
func (h *Handler) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := interactionContext()
	defer cancel()

	opt := focusedOption(i.ApplicationCommandData().Options)
	if opt == nil || opt.Name != optionName {
		return
	}
	query, _ := opt.Value.(string)
	cmds, err := h.emoteUseCase.Autocomplete(ctx, query, maxChoices)
	if err != nil {
		log.Printf("❌ Autocomplétion impossible pour %q: %v", query, err)
		cmds = nil
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices(cmds)},
	})
	if err != nil {
		log.Printf("⚠️ Erreur lors de la réponse d'autocomplétion: %v", err)
	}
}
