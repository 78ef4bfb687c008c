// Package messaging defines the client-communication contracts: messages,
// ordered conversations, and parameterized templates.
package messaging

import (
	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// Message is a single message within a conversation.
//
// Invariants:
//   - Sender, Recipient, and Body are non-empty
//   - Direction and Status are declared variants
//   - Timestamp is always present
type Message struct {
	ID             common.MessageID       `json:"id"`
	ConversationID common.ConversationID  `json:"conversation_id"`
	Sender         string                 `json:"sender"`
	Recipient      string                 `json:"recipient"`
	Direction      enums.MessageDirection `json:"direction"`
	Body           string                 `json:"body"`
	Status         enums.MessageStatus    `json:"status"`
	Timestamp      common.Timestamp       `json:"timestamp"`
	TemplateName   string                 `json:"template_name,omitempty"`
}

func NewMessage(
	id common.MessageID,
	conversationID common.ConversationID,
	sender, recipient string,
	direction enums.MessageDirection,
	body string,
	status enums.MessageStatus,
	timestamp common.Timestamp,
) (Message, error) {
	m := Message{
		ID:             id,
		ConversationID: conversationID,
		Sender:         sender,
		Recipient:      recipient,
		Direction:      direction,
		Body:           body,
		Status:         status,
		Timestamp:      timestamp,
	}
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (m Message) Validate() error {
	if m.ID.IsZero() {
		return sErrors.Missing("id")
	}
	if m.ConversationID.IsZero() {
		return sErrors.Missing("conversation_id")
	}
	if m.Sender == "" {
		return sErrors.Missing("sender")
	}
	if m.Recipient == "" {
		return sErrors.Missing("recipient")
	}
	if m.Direction == "" {
		return sErrors.Missing("direction")
	}
	if !m.Direction.IsValid() {
		return sErrors.EnumViolation("direction", m.Direction)
	}
	if m.Body == "" {
		return sErrors.Missing("body")
	}
	if m.Status == "" {
		return sErrors.Missing("status")
	}
	if !m.Status.IsValid() {
		return sErrors.EnumViolation("status", m.Status)
	}
	if m.Timestamp.IsZero() {
		return sErrors.Missing("timestamp")
	}
	return nil
}

// WithStatus returns a copy of the message with an updated delivery status.
func (m Message) WithStatus(status enums.MessageStatus) (Message, error) {
	if !status.IsValid() {
		return Message{}, sErrors.EnumViolation("status", status)
	}
	m.Status = status
	return m, nil
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	var raw alias
	if err := wire.Decode(data, &raw, "message"); err != nil {
		return err
	}
	decoded := Message(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*m = decoded
	return nil
}
