package usage

// IncrementUsageInput contains parameters for incrementing a command counter
type IncrementUsageInput struct {
	CommandName string
}

// GetUsageInput contains parameters for retrieving a command counter
type GetUsageInput struct {
	CommandName string
}

// GetUsageOutput contains the result of retrieving a command counter
type GetUsageOutput struct {
	Count int64
}

// GetAllUsageOutput contains every command counter keyed by command name
type GetAllUsageOutput struct {
	Counts map[string]int64
}
