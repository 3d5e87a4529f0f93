package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"emotebot/internal/config"
	"emotebot/internal/ports/input"
	"emotebot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	handler    *Handler
	translator output.Catalog
}

// NewBot creates a Bot and wires use cases -> handler.
func NewBot(cfg *config.Config, emoteUC input.EmoteUseCase, settingsUC input.SettingsUseCase, tr output.Catalog) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}

	bot := &Bot{
		session:    s,
		config:     cfg,
		handler:    NewHandler(emoteUC, settingsUC, tr, cfg.WorldNames),
		translator: tr,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandEmote:
			b.handler.HandleEmote(s, i)
		case commandEmotes:
			b.handler.HandlePerspectives(s, i)
		case commandSettings:
			b.handler.HandleSettings(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handler.HandleAutocomplete(s, i)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	commands := applicationCommands(b.translator)
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands); err != nil {
		log.Printf("⚠️ Erreur lors de l'enregistrement des commandes: %v", err)
	}

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
