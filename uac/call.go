package uac

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/arentrue/nksip/sip"
)

// MsgRef maps a message to the transaction and the dialog it belongs to.
type MsgRef struct {
	TransID  int
	DialogID sip.DialogID
}

// Call is the context of one SIP call or proxy fork.
// It is owned by exactly one worker, methods are not safe for concurrent use.
type Call struct {
	SrvID  string
	CallID string
	// Transactions are ordered most recent first.
	Transactions []*Transaction
	// Msgs indexes sent messages.
	Msgs map[sip.MessageID]MsgRef
	// NextID is the id the next transaction will get.
	NextID int
}

// NewCall creates an empty call context.
func NewCall(srvID, callID string) *Call {
	return &Call{
		SrvID:  srvID,
		CallID: callID,
		Msgs:   make(map[sip.MessageID]MsgRef),
		NextID: 1,
	}
}

// Transaction returns the transaction with the given id.
func (c *Call) Transaction(id int) (*Transaction, bool) {
	for _, tx := range c.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return nil, false
}

// TransactionByKey returns the transaction matching responses with the given key.
func (c *Call) TransactionByKey(key sip.ClientTransactionKey) (*Transaction, bool) {
	if !key.IsValid() {
		return nil, false
	}
	for _, tx := range c.Transactions {
		if tx.Class == ClassUAC && tx.TransID.Equal(key) {
			return tx, true
		}
	}
	return nil, false
}

// MsgRef returns the index entry of the message.
func (c *Call) MsgRef(id sip.MessageID) (MsgRef, bool) {
	ref, ok := c.Msgs[id]
	return ref, ok
}

func (c *Call) add(tx *Transaction) {
	c.Transactions = slices.Insert(c.Transactions, 0, tx)
	if c.Msgs == nil {
		c.Msgs = make(map[sip.MessageID]MsgRef)
	}
	c.Msgs[tx.Request.ID] = MsgRef{TransID: tx.ID, DialogID: tx.Request.DialogID}
	c.NextID = tx.ID + 1
}

// update stores the transaction in place of the one with the same id.
func (c *Call) update(tx *Transaction) {
	if i := c.index(tx.ID); i >= 0 {
		c.Transactions[i] = tx
		return
	}
	c.Transactions = slices.Insert(c.Transactions, 0, tx)
}

// supersede replaces the prior attempt of a transaction with a new one
// created by the factory, the new attempt takes over the prior id.
func (c *Call) supersede(prior, next *Transaction) {
	if i := c.index(next.ID); i >= 0 && c.Transactions[i] == next {
		c.Transactions = slices.Delete(c.Transactions, i, i+1)
	}
	next.ID = prior.ID
	if ref, ok := c.Msgs[next.Request.ID]; ok {
		ref.TransID = prior.ID
		c.Msgs[next.Request.ID] = ref
	}
	if i := c.index(prior.ID); i >= 0 {
		c.Transactions = slices.Delete(c.Transactions, i, i+1)
	}
	c.Transactions = slices.Insert(c.Transactions, 0, next)
}

func (c *Call) index(id int) int {
	return slices.IndexFunc(c.Transactions, func(tx *Transaction) bool { return tx.ID == id })
}

// Clone returns a deep copy of the call context.
func (c *Call) Clone() *Call {
	if c == nil {
		return nil
	}
	cc := *c
	cc.Transactions = make([]*Transaction, len(c.Transactions))
	for i, tx := range c.Transactions {
		cc.Transactions[i] = tx.Clone()
	}
	cc.Msgs = maps.Clone(c.Msgs)
	return &cc
}

// LogValue implements [slog.LogValuer].
func (c *Call) LogValue() slog.Value {
	if c == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("srv_id", c.SrvID),
		slog.String("call_id", c.CallID),
		slog.Int("transactions", len(c.Transactions)),
	)
}
