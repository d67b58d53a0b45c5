// Package discord wires the gateway connection to the dispatcher and owns
// everything that talks to the Discord API directly.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/RubenJ01/MiloBot/internal/dispatcher"
	prefixSvc "github.com/RubenJ01/MiloBot/internal/services/prefix"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	dispatcher *dispatcher.Dispatcher
	prefixes   prefixSvc.Service
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Prefixes is warmed on ready and kept in sync with guild membership
	Prefixes prefixSvc.Service
}

// New creates a new Discord bot. The dispatcher is attached separately
// because it needs the session to deliver replies.
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Prefixes == nil {
		return nil, errors.New("prefix service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Prefix commands need the message text
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:  session,
		prefixes: cfg.Prefixes,
	}

	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handleGuildCreate)
	session.AddHandler(bot.handleGuildDelete)

	return bot, nil
}

// Session exposes the underlying gateway session for collaborators that
// render through it
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// AttachDispatcher sets the message pipeline. Must be called before Start.
func (b *Bot) AttachDispatcher(d *dispatcher.Dispatcher) {
	b.dispatcher = d
}

// Start opens the websocket connection to Discord
func (b *Bot) Start() error {
	if b.dispatcher == nil {
		return errors.New("dispatcher must be attached before starting")
	}

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// handleReady preloads the prefix cache for every guild the bot is in
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	guildIDs := make([]string, 0, len(r.Guilds))
	for _, g := range r.Guilds {
		guildIDs = append(guildIDs, g.ID)
	}

	if err := b.prefixes.WarmUp(context.Background(), guildIDs); err != nil {
		log.Printf("Failed to warm prefix cache: %v", err)
	}

	log.Printf("Logged in as %s, serving %d guilds", r.User.Username, len(r.Guilds))
}

// handleMessageCreate forwards inbound messages to the dispatcher
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	b.dispatcher.Dispatch(context.Background(), &dispatcher.Message{
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		IsBot:      m.Author.Bot,
		Content:    m.Content,
	})
}

// handleGuildCreate seeds the default prefix when joining a new guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	// GetPrefix persists the default for guilds seen for the first time
	b.prefixes.GetPrefix(context.Background(), g.ID)
}

// handleGuildDelete drops guild state when the bot is removed
func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		// Outage, not a removal
		return
	}

	if err := b.prefixes.RemoveGuild(context.Background(), g.ID); err != nil {
		log.Printf("Failed to remove prefix for guild %s: %v", g.ID, err)
	}
}
