package input

type queueConfig struct {
	capacity int
	name     string
}

// QueueBuilderOption is a functional option for configuring a Queue.
type QueueBuilderOption func(*queueConfig)

// WithCapacity sets the channel buffer size.
//
// Parameters:
//   - n: maximum number of queued events (default 256)
//
// Returns:
//   - QueueBuilderOption: functional option to set the capacity
func WithCapacity(n int) QueueBuilderOption {
	return func(c *queueConfig) {
		c.capacity = n
	}
}

// WithName sets the label used in log lines.
func WithName(name string) QueueBuilderOption {
	return func(c *queueConfig) {
		c.name = name
	}
}
