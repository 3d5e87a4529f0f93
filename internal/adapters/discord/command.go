package discord

import (
	"github.com/bwmarrin/discordgo"

	"emotebot/internal/ports/output"
)

const (
	commandEmote    = "emote"
	commandEmotes   = "emotes"
	commandSettings = "settings"

	optionName     = "name"
	optionTarget   = "target"
	optionLanguage = "language"
	optionWorld    = "world"
	optionGender   = "gender"
	optionReset    = "reset"
)

// localized returns the English text of key and its translation into every
// other locale of tr. Discord locale codes match the catalog tags ("ja").
func localized(tr output.Catalog, key string) (string, map[discordgo.Locale]string) {
	desc := tr.T("en", key, nil)
	locs := make(map[discordgo.Locale]string)
	for _, locale := range tr.Locales() {
		if locale == "en" {
			continue
		}
		locs[discordgo.Locale(locale)] = tr.T(locale, key, nil)
	}
	return desc, locs
}

func option(tr output.Catalog, typ discordgo.ApplicationCommandOptionType, name, key string, required bool) *discordgo.ApplicationCommandOption {
	desc, locs := localized(tr, key)
	return &discordgo.ApplicationCommandOption{
		Type:                     typ,
		Name:                     name,
		Description:              desc,
		DescriptionLocalizations: locs,
		Required:                 required,
	}
}

func command(tr output.Catalog, name, key string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommand {
	desc, locs := localized(tr, key)
	return &discordgo.ApplicationCommand{
		Name:                     name,
		Description:              desc,
		DescriptionLocalizations: &locs,
		Options:                  options,
	}
}

func languageOption(tr output.Catalog, key string) *discordgo.ApplicationCommandOption {
	opt := option(tr, discordgo.ApplicationCommandOptionString, optionLanguage, key, false)
	opt.Choices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "English", Value: "en"},
		{Name: "日本語", Value: "ja"},
	}
	return opt
}

func emoteNameOption(tr output.Catalog) *discordgo.ApplicationCommandOption {
	opt := option(tr, discordgo.ApplicationCommandOptionString, optionName, "command.emote.option.name", true)
	opt.Autocomplete = true
	return opt
}

// applicationCommands returns the slash commands registered by the bot.
func applicationCommands(tr output.Catalog) []*discordgo.ApplicationCommand {
	gender := option(tr, discordgo.ApplicationCommandOptionString, optionGender, "command.settings.option.gender", false)
	gender.Choices = []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Male", Value: "male"},
		{Name: "Female", Value: "female"},
	}

	return []*discordgo.ApplicationCommand{
		command(tr, commandEmote, "command.emote.description",
			emoteNameOption(tr),
			option(tr, discordgo.ApplicationCommandOptionUser, optionTarget, "command.emote.option.target", false),
			languageOption(tr, "command.emote.option.language"),
		),
		command(tr, commandEmotes, "command.emotes.description",
			emoteNameOption(tr),
			option(tr, discordgo.ApplicationCommandOptionUser, optionTarget, "command.emote.option.target", false),
			languageOption(tr, "command.emote.option.language"),
		),
		command(tr, commandSettings, "command.settings.description",
			option(tr, discordgo.ApplicationCommandOptionString, optionName, "command.settings.option.name", false),
			option(tr, discordgo.ApplicationCommandOptionString, optionWorld, "command.settings.option.world", false),
			gender,
			languageOption(tr, "command.settings.option.language"),
			option(tr, discordgo.ApplicationCommandOptionBoolean, optionReset, "command.settings.option.reset", false),
		),
	}
}
