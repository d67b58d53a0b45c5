// Package commands holds the command metadata registry. Commands are plain
// name/metadata/function triples registered once at startup; there is no
// handler hierarchy.
package commands

import (
	"context"
	"time"
)

// Context carries the originating event details into a command execution.
type Context struct {
	// GuildID is the guild the command was invoked in
	GuildID string

	// ChannelID is the channel the command was invoked in
	ChannelID string

	// AuthorID is the Discord user ID of the invoker
	AuthorID string

	// AuthorName is the display name of the invoker
	AuthorName string

	// Prefix is the guild prefix the invocation matched
	Prefix string

	// Respond sends a plain text reply to the originating channel
	Respond func(content string) error
}

// ExecuteFunc is the execution contract every command conforms to. Args is
// the whitespace-tokenized argument list, command name excluded.
type ExecuteFunc func(ctx context.Context, cc *Context, args []string) error

// Command describes a registered command. Immutable after registration.
type Command struct {
	// Name is the unique, case-insensitive command name
	Name string

	// Description is shown in help listings
	Description string

	// Aliases are alternative names that resolve to this command
	Aliases []string

	// Cooldown is the minimum interval between invocations per user,
	// zero for none
	Cooldown time.Duration

	// Execute runs the command
	Execute ExecuteFunc
}
