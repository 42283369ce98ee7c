package sip

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/arentrue/nksip/internal/util"
)

// ClientTransactionKey is the key of a client transaction.
// It is used for matching responses to the request that created the transaction
// as described in RFC 3261 Section 17.1.3.
type ClientTransactionKey struct {
	// Branch parameter of the topmost Via header field.
	Branch string `json:"branch"`
	// Method of the request that created the transaction.
	Method string `json:"method"`
}

// MakeClientTransactionKey builds the key from the given message.
func MakeClientTransactionKey(msg Message) (ClientTransactionKey, error) {
	var k ClientTransactionKey
	if err := k.FillFromMessage(msg); err != nil {
		return ClientTransactionKey{}, errtrace.Wrap(err)
	}
	return k, nil
}

// FillFromMessage populates the key fields from the given message.
func (k *ClientTransactionKey) FillFromMessage(msg Message) error {
	if msg == nil {
		return errtrace.Wrap(NewInvalidArgumentError("invalid message"))
	}

	via, ok := msg.FirstVia()
	if !ok {
		return errtrace.Wrap(NewInvalidArgumentError(ErrInvalidMessage, "missing Via header"))
	}
	branch, ok := via.Branch()
	if !ok {
		return errtrace.Wrap(NewInvalidArgumentError(ErrInvalidMessage, "missing Via branch"))
	}
	cseq := msg.CSeqHeader()
	if cseq.Method == "" {
		return errtrace.Wrap(NewInvalidArgumentError(ErrInvalidMessage, "missing CSeq method"))
	}

	k.Branch = branch
	k.Method = string(util.UCase(cseq.Method))
	return nil
}

// Equal checks whether the key is equal to another key.
func (k ClientTransactionKey) Equal(val any) bool {
	var other ClientTransactionKey
	switch v := val.(type) {
	case ClientTransactionKey:
		other = v
	case *ClientTransactionKey:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return k.Branch == other.Branch && util.EqFold(k.Method, other.Method)
}

// IsValid checks whether the key is valid.
func (k ClientTransactionKey) IsValid() bool {
	return k.Branch != "" && k.Method != ""
}

// IsZero checks whether the key is zero.
func (k ClientTransactionKey) IsZero() bool {
	return k.Branch == "" && k.Method == ""
}

// LogValue returns a [slog.Value] for the key.
func (k ClientTransactionKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("branch", k.Branch),
		slog.String("method", k.Method),
	)
}

func (k ClientTransactionKey) String() string { return k.Branch + "/" + k.Method }
