// Package dispatcher turns inbound chat message events into command
// executions. It is decoupled from the gateway library so the pipeline can
// be exercised without a live Discord session.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/RubenJ01/MiloBot/internal/commands"
	"github.com/RubenJ01/MiloBot/internal/metrics"
	"github.com/RubenJ01/MiloBot/internal/models"
	usageRepo "github.com/RubenJ01/MiloBot/internal/repositories/usage"
	userRepo "github.com/RubenJ01/MiloBot/internal/repositories/user"
	"github.com/RubenJ01/MiloBot/internal/services/cooldown"
	prefixSvc "github.com/RubenJ01/MiloBot/internal/services/prefix"
)

// Experience granted to the author of a successfully executed command
const experiencePerCommand = 10

// Message is the gateway-agnostic shape of an inbound chat message
type Message struct {
	GuildID    string
	ChannelID  string
	AuthorID   string
	AuthorName string
	IsBot      bool
	Content    string
}

// Responder delivers plain text replies to a channel, best-effort
type Responder interface {
	Send(channelID, content string) error
}

// Config holds configuration for the dispatcher
type Config struct {
	// Registry resolves command names
	Registry *commands.Registry

	// Prefixes resolves per-guild command prefixes
	Prefixes prefixSvc.Service

	// Cooldowns gates repeated invocations
	Cooldowns *cooldown.Tracker

	// UsageRepo records per-command invocation counters, best-effort
	UsageRepo usageRepo.Repository

	// UserRepo receives experience grants, best-effort
	UserRepo userRepo.Repository

	// Responder delivers user-facing notices
	Responder Responder
}

// Dispatcher consumes inbound message events and invokes command handlers
type Dispatcher struct {
	registry  *commands.Registry
	prefixes  prefixSvc.Service
	cooldowns *cooldown.Tracker
	usageRepo usageRepo.Repository
	userRepo  userRepo.Repository
	responder Responder
}

// New creates a new dispatcher
func New(cfg *Config) (*Dispatcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Registry == nil {
		return nil, errors.New("command registry cannot be nil")
	}

	if cfg.Prefixes == nil {
		return nil, errors.New("prefix service cannot be nil")
	}

	if cfg.Cooldowns == nil {
		return nil, errors.New("cooldown tracker cannot be nil")
	}

	if cfg.Responder == nil {
		return nil, errors.New("responder cannot be nil")
	}

	return &Dispatcher{
		registry:  cfg.Registry,
		prefixes:  cfg.Prefixes,
		cooldowns: cfg.Cooldowns,
		usageRepo: cfg.UsageRepo,
		userRepo:  cfg.UserRepo,
		responder: cfg.Responder,
	}, nil
}

// Dispatch runs the pipeline for one inbound message: filter, prefix match,
// tokenize, resolve, cooldown gate, execute, usage accounting. A command
// failure never takes the dispatch loop down with it.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message) {
	if msg == nil {
		return
	}

	// Ignore other bots and DMs
	if msg.IsBot || msg.GuildID == "" {
		return
	}

	p := d.prefixes.GetPrefix(ctx, msg.GuildID)
	if !strings.HasPrefix(msg.Content, p) {
		return
	}

	tokens := strings.Fields(strings.TrimPrefix(msg.Content, p))
	if len(tokens) == 0 {
		return
	}

	name := strings.ToLower(tokens[0])
	args := tokens[1:]

	cmd, err := d.registry.Lookup(name)
	if err != nil {
		// Unknown commands are ignored silently; another bot may share
		// the prefix
		metrics.UnknownCommands.Inc()
		return
	}

	allowed, remaining := d.cooldowns.Check(msg.AuthorID, cmd.Name, cmd.Cooldown)
	if !allowed {
		metrics.CooldownDenials.Inc()
		d.reply(msg.ChannelID, fmt.Sprintf("Slow down! You can use `%s` again in %d seconds.",
			cmd.Name, int(math.Ceil(remaining.Seconds()))))
		return
	}

	if err := d.execute(ctx, cmd, msg, args); err != nil {
		log.Printf("Command %s failed for user %s: %v", cmd.Name, msg.AuthorID, err)
		metrics.CommandsDispatched.WithLabelValues(cmd.Name, "error").Inc()
		d.reply(msg.ChannelID, "Something went wrong executing that command.")
	} else {
		metrics.CommandsDispatched.WithLabelValues(cmd.Name, "ok").Inc()
		d.grantExperience(ctx, msg)
	}

	d.recordUsage(ctx, cmd.Name)
}

// execute invokes the command handler, converting a panic into an error so
// a buggy handler cannot crash the dispatch loop
func (d *Dispatcher) execute(ctx context.Context, cmd *commands.Command, msg *Message, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command %s panicked: %v", cmd.Name, r)
		}
	}()

	cc := &commands.Context{
		GuildID:    msg.GuildID,
		ChannelID:  msg.ChannelID,
		AuthorID:   msg.AuthorID,
		AuthorName: msg.AuthorName,
		Prefix:     d.prefixes.GetPrefix(ctx, msg.GuildID),
		Respond: func(content string) error {
			return d.responder.Send(msg.ChannelID, content)
		},
	}

	return cmd.Execute(ctx, cc, args)
}

// recordUsage increments the persisted invocation counter. Accounting is
// best-effort; a persistence failure never fails the command.
func (d *Dispatcher) recordUsage(ctx context.Context, commandName string) {
	if d.usageRepo == nil {
		return
	}

	err := d.usageRepo.IncrementUsage(ctx, &usageRepo.IncrementUsageInput{
		CommandName: commandName,
	})
	if err != nil {
		log.Printf("Failed to record usage for command %s: %v", commandName, err)
	}
}

// grantExperience awards experience to the author of a successful command,
// creating the user record on first sight. Best-effort.
func (d *Dispatcher) grantExperience(ctx context.Context, msg *Message) {
	if d.userRepo == nil {
		return
	}

	user, err := d.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: msg.AuthorID,
	})
	if errors.Is(err, userRepo.ErrUserNotFound) {
		user = &models.User{
			ID:   msg.AuthorID,
			Name: msg.AuthorName,
		}
	} else if err != nil {
		log.Printf("Failed to load user %s for experience grant: %v", msg.AuthorID, err)
		return
	}

	// Keep the stored display name current
	user.Name = msg.AuthorName

	if user.AddExperience(experiencePerCommand) {
		log.Printf("%s leveled up to level %d", msg.AuthorName, user.Level)
	}

	if err := d.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		log.Printf("Failed to save experience for user %s: %v", msg.AuthorID, err)
	}
}

func (d *Dispatcher) reply(channelID, content string) {
	if err := d.responder.Send(channelID, content); err != nil {
		log.Printf("Failed to send reply to channel %s: %v", channelID, err)
	}
}
