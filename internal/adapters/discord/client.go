package discord

import (
	"context"
	"fmt"

	"suggestion-bot/internal/adapters/discord/formatting"
	"suggestion-bot/internal/core/domain"
	"suggestion-bot/internal/core/ports"
	"suggestion-bot/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}

// Adapter implements ports.SuggestionGateway and ports.Replier on top of a
// discordgo session.
type Adapter struct {
	session DiscordSession
	emotes  EmoteSource
	cache   *channelCache
}

var (
	_ ports.SuggestionGateway = (*Adapter)(nil)
	_ ports.Replier           = (*Adapter)(nil)
)

func NewAdapter(session DiscordSession, emotes EmoteSource) *Adapter {
	return &Adapter{
		session: session,
		emotes:  emotes,
		cache:   newChannelCache(),
	}
}

func (a *Adapter) LookupChannel(ctx context.Context, channelID string) (bool, error) {
	if channelID == "" {
		return false, nil
	}
	if a.cache.Has(channelID) {
		return true, nil
	}

	ch, err := a.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}

	if ch == nil || !isTextChannel(ch.Type) {
		return false, nil
	}

	a.cache.Add(channelID)
	return true, nil
}

func (a *Adapter) PostSuggestion(ctx context.Context, channelID string, suggestion domain.Suggestion) (*domain.PostedMessage, error) {
	msg, err := a.session.ChannelMessageSendEmbed(channelID, formatting.SuggestionEmbed(suggestion), discordgo.WithContext(ctx))
	if err != nil {
		a.cache.Invalidate(channelID)
		metrics.DiscordMessagesSent.WithLabelValues("suggestion", "failure").Inc()
		return nil, fmt.Errorf("send suggestion embed: %w", err)
	}

	metrics.DiscordMessagesSent.WithLabelValues("suggestion", "success").Inc()
	return postedMessage(msg, channelID), nil
}

func (a *Adapter) ResolveEmote(ref string) (*domain.Emote, bool) {
	if a.emotes == nil || ref == "" {
		return nil, false
	}
	return resolveEmote(a.emotes.Emojis(), ref)
}

func (a *Adapter) AddReaction(ctx context.Context, msg domain.PostedMessage, emote domain.Emote) error {
	if err := a.session.MessageReactionAdd(msg.ChannelID, msg.MessageID, emote.APIName(), discordgo.WithContext(ctx)); err != nil {
		metrics.DiscordReactionsAdded.WithLabelValues("failure").Inc()
		return fmt.Errorf("add reaction %s to message %s: %w", emote.APIName(), msg.MessageID, err)
	}

	metrics.DiscordReactionsAdded.WithLabelValues("success").Inc()
	return nil
}

func (a *Adapter) DeleteMessage(ctx context.Context, msg domain.PostedMessage) error {
	return a.session.ChannelMessageDelete(msg.ChannelID, msg.MessageID, discordgo.WithContext(ctx))
}

// Reply answers the invoking message with a colored embed.
func (a *Adapter) Reply(ctx context.Context, inv domain.Invocation, reply domain.Reply) (*domain.PostedMessage, error) {
	send := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{formatting.ReplyEmbed(reply)},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			RepliedUser: false,
		},
	}
	if inv.MessageID != "" {
		send.Reference = &discordgo.MessageReference{
			MessageID: inv.MessageID,
			ChannelID: inv.ChannelID,
			GuildID:   inv.GuildID,
		}
	}

	msg, err := a.session.ChannelMessageSendComplex(inv.ChannelID, send, discordgo.WithContext(ctx))
	if err != nil {
		metrics.DiscordMessagesSent.WithLabelValues(reply.Style.String(), "failure").Inc()
		return nil, fmt.Errorf("send %s reply: %w", reply.Style, err)
	}

	metrics.DiscordMessagesSent.WithLabelValues(reply.Style.String(), "success").Inc()
	return postedMessage(msg, inv.ChannelID), nil
}

func isTextChannel(t discordgo.ChannelType) bool {
	return t == discordgo.ChannelTypeGuildText || t == discordgo.ChannelTypeGuildNews
}

func postedMessage(msg *discordgo.Message, channelID string) *domain.PostedMessage {
	if msg.ChannelID != "" {
		channelID = msg.ChannelID
	}
	return &domain.PostedMessage{ChannelID: channelID, MessageID: msg.ID}
}
