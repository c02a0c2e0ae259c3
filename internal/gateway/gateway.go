package gateway

import "context"

// Messenger defines the interface for communication gateways.
type Messenger interface {
	// Start runs the message loop until the user leaves or ctx ends
	Start(ctx context.Context) error
	// Send writes a message to the user
	Send(text string) error
	// Stop ends the loop before the next prompt
	Stop() error
}
