package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	embedColor        = 0x5865F2
	maxEmbedFieldSize = 1024
	maxDescription    = 4096
)

// EmoteEmbedData is what BuildEmoteEmbed shows.
type EmoteEmbedData struct {
	Text       string
	Footer     string
	AuthorName string
	AuthorIcon string
}

// BuildEmoteEmbed builds the public embed showing a rendered log message.
func BuildEmoteEmbed(data EmoteEmbedData) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: truncate(data.Text, maxDescription),
		Color:       embedColor,
	}
	if data.AuthorName != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: data.AuthorName, IconURL: data.AuthorIcon}
	}
	if data.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: data.Footer}
	}
	return embed
}

// Field is one titled line of BuildFieldsEmbed.
type Field struct {
	Name  string
	Value string
}

// BuildFieldsEmbed builds an embed with one non-inline field per entry. Empty
// values are shown as a dash since Discord rejects empty fields.
func BuildFieldsEmbed(title string, fields []Field) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: embedColor,
	}
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  f.Name,
			Value: truncate(value, maxEmbedFieldSize),
		})
	}
	return embed
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
