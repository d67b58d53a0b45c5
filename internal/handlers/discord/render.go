package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/RubenJ01/MiloBot/internal/cards"
	"github.com/RubenJ01/MiloBot/internal/commands"
	"github.com/RubenJ01/MiloBot/internal/models"
)

const (
	embedColorNeutral = 0x5865f2
	embedColorWin     = 0x00ff00
	embedColorLose    = 0xff0000
)

// renderHand formats a hand with its value, e.g. "A♠ K♥ (21)"
func renderHand(hand []cards.Card) string {
	labels := make([]string, 0, len(hand))
	for _, c := range hand {
		labels = append(labels, c.String())
	}
	return fmt.Sprintf("%s (%d)", strings.Join(labels, " "), cards.HandValue(hand))
}

// renderDealerHand hides the hole card while the player is still acting
func renderDealerHand(game *models.BlackjackGame) string {
	if game.State == models.BlackjackStatePlayerTurn && len(game.DealerHand) > 1 {
		return fmt.Sprintf("%s 🂠", game.DealerHand[0])
	}
	return renderHand(game.DealerHand)
}

// outcomeLine returns the result line for a settled game
func outcomeLine(game *models.BlackjackGame, payout int) string {
	switch game.Outcome {
	case models.BlackjackOutcomeNatural:
		return fmt.Sprintf("Blackjack! You win %d morbcoins.", payout)
	case models.BlackjackOutcomeWin:
		return fmt.Sprintf("You win %d morbcoins.", payout)
	case models.BlackjackOutcomePush:
		return fmt.Sprintf("Push. Your bet of %d morbcoins is returned.", game.Bet)
	case models.BlackjackOutcomeLose:
		if cards.IsBust(game.PlayerHand) {
			return fmt.Sprintf("Bust! You lose %d morbcoins.", game.Bet)
		}
		return fmt.Sprintf("Dealer wins. You lose %d morbcoins.", game.Bet)
	default:
		return "Hit or stand?"
	}
}

func outcomeColor(game *models.BlackjackGame) int {
	switch game.Outcome {
	case models.BlackjackOutcomeWin, models.BlackjackOutcomeNatural:
		return embedColorWin
	case models.BlackjackOutcomeLose:
		return embedColorLose
	default:
		return embedColorNeutral
	}
}

// renderBlackjackEmbed renders the table as an embed
func renderBlackjackEmbed(playerName string, game *models.BlackjackGame, payout int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Blackjack | Bet: %d", game.Bet),
		Color: outcomeColor(game),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("%s's hand", playerName),
				Value:  renderHand(game.PlayerHand),
				Inline: true,
			},
			{
				Name:   "Dealer's hand",
				Value:  renderDealerHand(game),
				Inline: true,
			},
		},
		Description: outcomeLine(game, payout),
	}
}

// renderHelpEmbed lists every registered command under the guild's prefix
func renderHelpEmbed(prefix string, registry *commands.Registry) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, registry.Len())
	for cmd := range registry.All() {
		name := prefix + cmd.Name
		if len(cmd.Aliases) > 0 {
			name = fmt.Sprintf("%s (%s)", name, strings.Join(cmd.Aliases, ", "))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: cmd.Description,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Commands",
		Description: fmt.Sprintf("Use `%s<command>` to run a command.", prefix),
		Color:       embedColorNeutral,
		Fields:      fields,
	}
}

// renderWalletEmbed renders a user's balance and progression
func renderWalletEmbed(user *models.User) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's wallet", user.Name),
		Color: embedColorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Morbcoins",
				Value:  fmt.Sprintf("%d", user.Currency),
				Inline: true,
			},
			{
				Name:   "Level",
				Value:  fmt.Sprintf("%d", user.Level),
				Inline: true,
			},
			{
				Name: "Experience",
				Value: fmt.Sprintf("%d / %d", user.Experience,
					models.NextLevelExperience(user.Level)),
				Inline: true,
			},
		},
	}
}
