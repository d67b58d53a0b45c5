package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/RubenJ01/MiloBot/internal/commands"
	"github.com/RubenJ01/MiloBot/internal/models"
	usageRepo "github.com/RubenJ01/MiloBot/internal/repositories/usage"
	userRepo "github.com/RubenJ01/MiloBot/internal/repositories/user"
	"github.com/RubenJ01/MiloBot/internal/services/blackjack"
	prefixSvc "github.com/RubenJ01/MiloBot/internal/services/prefix"
)

const (
	statusCooldown = 60 * time.Second
	dailyCooldown  = 24 * time.Hour
	dailyReward    = 100
)

// CommandDeps holds the collaborators the built-in commands need
type CommandDeps struct {
	Session   *discordgo.Session
	Registry  *commands.Registry
	Prefixes  prefixSvc.Service
	Blackjack blackjack.Service
	Sessions  *blackjack.Registry
	UserRepo  userRepo.Repository
	UsageRepo usageRepo.Repository
}

// RegisterCommands registers every built-in command on the registry
func RegisterCommands(deps *CommandDeps) error {
	if deps == nil {
		return errors.New("deps cannot be nil")
	}

	if deps.Session == nil {
		return errors.New("session cannot be nil")
	}

	if deps.Registry == nil {
		return errors.New("registry cannot be nil")
	}

	if deps.Prefixes == nil {
		return errors.New("prefix service cannot be nil")
	}

	if deps.Blackjack == nil {
		return errors.New("blackjack service cannot be nil")
	}

	if deps.Sessions == nil {
		return errors.New("session registry cannot be nil")
	}

	if deps.UserRepo == nil {
		return errors.New("user repository cannot be nil")
	}

	cmds := []*commands.Command{
		{
			Name:        "help",
			Description: "Show every available command",
			Aliases:     []string{"commands"},
			Execute:     deps.helpCommand,
		},
		{
			Name:        "status",
			Description: "Show bot health and usage numbers",
			Cooldown:    statusCooldown,
			Execute:     deps.statusCommand,
		},
		{
			Name:        "prefix",
			Description: "Show or change this server's command prefix",
			Execute:     deps.prefixCommand,
		},
		{
			Name:        "wallet",
			Description: "Show your morbcoin balance and level",
			Aliases:     []string{"balance"},
			Execute:     deps.walletCommand,
		},
		{
			Name:        "daily",
			Description: fmt.Sprintf("Collect your daily %d morbcoins", dailyReward),
			Cooldown:    dailyCooldown,
			Execute:     deps.dailyCommand,
		},
		{
			Name:        "blackjack",
			Description: "Play blackjack: play <bet>, hit, stand",
			Aliases:     []string{"bj"},
			Execute:     deps.blackjackCommand,
		},
	}

	for _, cmd := range cmds {
		if err := deps.Registry.Register(cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}

	return nil
}

func (d *CommandDeps) helpCommand(ctx context.Context, cc *commands.Context, args []string) error {
	embed := renderHelpEmbed(cc.Prefix, d.Registry)
	_, err := d.Session.ChannelMessageSendEmbed(cc.ChannelID, embed)
	return err
}

func (d *CommandDeps) statusCommand(ctx context.Context, cc *commands.Context, args []string) error {
	var totalInvocations int64
	if d.UsageRepo != nil {
		if output, err := d.UsageRepo.GetAllUsage(ctx); err == nil {
			for _, count := range output.Counts {
				totalInvocations += count
			}
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "Status",
		Color: embedColorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Servers",
				Value:  fmt.Sprintf("%d", len(d.Session.State.Guilds)),
				Inline: true,
			},
			{
				Name:   "Latency",
				Value:  d.Session.HeartbeatLatency().Round(time.Millisecond).String(),
				Inline: true,
			},
			{
				Name:   "Active games",
				Value:  fmt.Sprintf("%d", d.Sessions.Len()),
				Inline: true,
			},
			{
				Name:   "Commands served",
				Value:  fmt.Sprintf("%d", totalInvocations),
				Inline: true,
			},
		},
	}

	_, err := d.Session.ChannelMessageSendEmbed(cc.ChannelID, embed)
	return err
}

func (d *CommandDeps) prefixCommand(ctx context.Context, cc *commands.Context, args []string) error {
	if len(args) == 0 {
		return cc.Respond(fmt.Sprintf("The prefix on this server is `%s`.", cc.Prefix))
	}

	newPrefix := args[0]
	if err := d.Prefixes.SetPrefix(ctx, cc.GuildID, newPrefix); err != nil {
		if errors.Is(err, prefixSvc.ErrInvalidPrefix) {
			return cc.Respond("That prefix isn't usable. Pick something short without spaces.")
		}
		return err
	}

	return cc.Respond(fmt.Sprintf("Prefix changed to `%s`.", newPrefix))
}

func (d *CommandDeps) walletCommand(ctx context.Context, cc *commands.Context, args []string) error {
	user, err := d.UserRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: cc.AuthorID})
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return cc.Respond("You don't have a wallet yet. Play a game or collect your daily reward first.")
	}
	if err != nil {
		return err
	}

	_, err = d.Session.ChannelMessageSendEmbed(cc.ChannelID, renderWalletEmbed(user))
	return err
}

func (d *CommandDeps) dailyCommand(ctx context.Context, cc *commands.Context, args []string) error {
	user, err := d.UserRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: cc.AuthorID})
	if errors.Is(err, userRepo.ErrUserNotFound) {
		user = &models.User{
			ID:   cc.AuthorID,
			Name: cc.AuthorName,
		}
	} else if err != nil {
		return err
	}

	user.Currency += dailyReward
	if err := d.UserRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		return err
	}

	return cc.Respond(fmt.Sprintf("You collected %d morbcoins. You now have %d.",
		dailyReward, user.Currency))
}

func (d *CommandDeps) blackjackCommand(ctx context.Context, cc *commands.Context, args []string) error {
	usage := fmt.Sprintf("Usage: `%[1]sblackjack play <bet>`, `%[1]sblackjack hit`, `%[1]sblackjack stand`", cc.Prefix)
	if len(args) == 0 {
		return cc.Respond(usage)
	}

	switch args[0] {
	case "play":
		if len(args) < 2 {
			return cc.Respond(usage)
		}

		bet, err := strconv.Atoi(args[1])
		if err != nil {
			return cc.Respond("The bet has to be a number.")
		}

		output, err := d.Blackjack.StartGame(ctx, &blackjack.StartGameInput{
			UserID:    cc.AuthorID,
			UserName:  cc.AuthorName,
			ChannelID: cc.ChannelID,
			Bet:       bet,
		})
		if err != nil {
			return d.blackjackErrorReply(cc, err)
		}

		return d.sendTable(cc, output.Game, output.Payout)

	case "hit":
		output, err := d.Blackjack.Hit(ctx, &blackjack.HitInput{UserID: cc.AuthorID})
		if err != nil {
			return d.blackjackErrorReply(cc, err)
		}

		return d.sendTable(cc, output.Game, 0)

	case "stand":
		output, err := d.Blackjack.Stand(ctx, &blackjack.StandInput{UserID: cc.AuthorID})
		if err != nil {
			return d.blackjackErrorReply(cc, err)
		}

		return d.sendTable(cc, output.Game, output.Payout)

	default:
		return cc.Respond(usage)
	}
}

func (d *CommandDeps) sendTable(cc *commands.Context, game *models.BlackjackGame, payout int) error {
	_, err := d.Session.ChannelMessageSendEmbed(cc.ChannelID,
		renderBlackjackEmbed(cc.AuthorName, game, payout))
	return err
}

// blackjackErrorReply maps game errors to user-facing replies. Anything it
// does not recognize is returned to the dispatcher as a failure.
func (d *CommandDeps) blackjackErrorReply(cc *commands.Context, err error) error {
	switch {
	case errors.Is(err, blackjack.ErrSessionAlreadyActive):
		return cc.Respond("Finish your current game first.")
	case errors.Is(err, blackjack.ErrSessionNotFound), errors.Is(err, blackjack.ErrGameFinished):
		return cc.Respond(fmt.Sprintf("You don't have a game going. Start one with `%sblackjack play <bet>`.", cc.Prefix))
	case errors.Is(err, blackjack.ErrInvalidBet):
		return cc.Respond("That bet isn't allowed.")
	case errors.Is(err, blackjack.ErrInsufficientFunds):
		return cc.Respond("You don't have enough morbcoins for that bet.")
	default:
		return err
	}
}
