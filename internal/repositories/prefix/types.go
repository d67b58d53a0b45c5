package prefix

// GetPrefixInput contains parameters for retrieving a guild prefix
type GetPrefixInput struct {
	GuildID string
}

// GetPrefixOutput contains the result of retrieving a guild prefix
type GetPrefixOutput struct {
	Prefix string
}

// SetPrefixInput contains parameters for persisting a guild prefix
type SetPrefixInput struct {
	GuildID string
	Prefix  string
}

// DeletePrefixInput contains parameters for removing a guild prefix
type DeletePrefixInput struct {
	GuildID string
}

// GetAllPrefixesOutput contains every persisted guild prefix keyed by guild ID
type GetAllPrefixesOutput struct {
	Prefixes map[string]string
}
