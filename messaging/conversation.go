package messaging

import (
	"fmt"

	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// Conversation is an ordered sequence of messages between a fixed set of
// participants.
//
// Invariants:
//   - at least two distinct participants
//   - every message belongs to this conversation
//   - message timestamps are non-decreasing in sequence order
type Conversation struct {
	ID           common.ConversationID    `json:"id"`
	Participants []string                 `json:"participants"`
	Messages     []Message                `json:"messages,omitempty"`
	Status       enums.ConversationStatus `json:"status"`
	FlowType     string                   `json:"flow_type,omitempty"`
	ContextType  string                   `json:"context_type,omitempty"`
	ContextID    string                   `json:"context_id,omitempty"`
}

// NewConversation constructs an empty, active conversation.
func NewConversation(id common.ConversationID, participants []string) (Conversation, error) {
	c := Conversation{
		ID:           id,
		Participants: participants,
		Status:       enums.ConversationActive,
	}
	if err := c.Validate(); err != nil {
		return Conversation{}, err
	}
	return c, nil
}

func (c Conversation) Validate() error {
	if c.ID.IsZero() {
		return sErrors.Missing("id")
	}
	if len(c.Participants) < 2 {
		return sErrors.Invariant("participants", "a conversation needs at least two participants")
	}
	seen := make(map[string]bool, len(c.Participants))
	for i, p := range c.Participants {
		if p == "" {
			return sErrors.Missing(fmt.Sprintf("participants.%d", i))
		}
		if seen[p] {
			return sErrors.Invariant(fmt.Sprintf("participants.%d", i),
				fmt.Sprintf("participant %q appears more than once", p))
		}
		seen[p] = true
	}
	if c.Status == "" {
		return sErrors.Missing("status")
	}
	if !c.Status.IsValid() {
		return sErrors.EnumViolation("status", c.Status)
	}
	for i, m := range c.Messages {
		if err := m.Validate(); err != nil {
			return sErrors.Prefix(err, fmt.Sprintf("messages.%d", i))
		}
		if m.ConversationID != c.ID {
			return sErrors.Invariant(fmt.Sprintf("messages.%d.conversation_id", i),
				"message belongs to a different conversation")
		}
		if i > 0 && m.Timestamp.Before(c.Messages[i-1].Timestamp) {
			return sErrors.Invariant(fmt.Sprintf("messages.%d.timestamp", i),
				"messages must be ordered by timestamp")
		}
	}
	return nil
}

// Append returns a new conversation with the message added at the end. The
// receiver is unchanged: the messages slice is copied, not shared.
func (c Conversation) Append(m Message) (Conversation, error) {
	if err := m.Validate(); err != nil {
		return Conversation{}, err
	}
	if m.ConversationID != c.ID {
		return Conversation{}, sErrors.Invariant("conversation_id",
			"message belongs to a different conversation")
	}
	if n := len(c.Messages); n > 0 && m.Timestamp.Before(c.Messages[n-1].Timestamp) {
		return Conversation{}, sErrors.Invariant("timestamp",
			"message predates the last message in the conversation")
	}
	messages := make([]Message, len(c.Messages), len(c.Messages)+1)
	copy(messages, c.Messages)
	c.Messages = append(messages, m)
	return c, nil
}

// LastActivity returns the timestamp of the newest message, or the zero
// Timestamp for an empty conversation.
func (c Conversation) LastActivity() common.Timestamp {
	if len(c.Messages) == 0 {
		return common.Timestamp{}
	}
	return c.Messages[len(c.Messages)-1].Timestamp
}

func (c *Conversation) UnmarshalJSON(data []byte) error {
	type alias Conversation
	var raw alias
	if err := wire.Decode(data, &raw, "conversation"); err != nil {
		return err
	}
	decoded := Conversation(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*c = decoded
	return nil
}
