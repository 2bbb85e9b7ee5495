package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Shared Validation
// ------------------------------

// ValidateEmojiName rejects names that can never be accepted by the remote
// service, so obviously broken input fails before a request is issued.
// The server remains the authority on full naming rules.
func ValidateEmojiName(name string) error {
	if name == "" {
		return fmt.Errorf("emoji name cannot be empty")
	}
	if strings.ContainsAny(name, ": \t\n") {
		return fmt.Errorf("emoji name %q must not contain colons or whitespace", name)
	}
	return nil
}
