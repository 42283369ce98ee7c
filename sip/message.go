package sip

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// MessageID is an internal identifier of a message, unique within the process.
type MessageID string

// NewMessageID generates a new random message identifier.
func NewMessageID() MessageID { return MessageID(uuid.NewString()) }

// DialogID identifies a dialog. It is computed by the dialog subsystem.
type DialogID string

// Message is implemented by [Request] and [Response].
type Message interface {
	// FirstVia returns the topmost Via hop of the message.
	FirstVia() (ViaHop, bool)
	// CSeqHeader returns the CSeq header field of the message.
	CSeqHeader() CSeq
}

// Request is an outbound SIP request.
type Request struct {
	ID       MessageID     `json:"id"`
	SrvID    string        `json:"srv_id"`
	Method   RequestMethod `json:"method"`
	RURI     string        `json:"ruri"`
	CallID   string        `json:"call_id"`
	From     string        `json:"from"`
	To       string        `json:"to"`
	Via      Via           `json:"via,omitempty"`
	CSeq     CSeq          `json:"cseq"`
	Contacts []string      `json:"contacts,omitempty"`
	Body     []byte        `json:"body,omitempty"`
	// DialogID is the dialog the request belongs to, resolved when
	// a transaction is created for the request.
	DialogID DialogID `json:"dialog_id,omitempty"`
}

func (req *Request) FirstVia() (ViaHop, bool) {
	if req == nil {
		return ViaHop{}, false
	}
	return req.Via.First()
}

func (req *Request) CSeqHeader() CSeq {
	if req == nil {
		return CSeq{}
	}
	return req.CSeq
}

// Handle returns an opaque handle of the request that can be given to API callers.
func (req *Request) Handle() RequestHandle {
	if req == nil {
		return RequestHandle{}
	}
	return RequestHandle{SrvID: req.SrvID, CallID: req.CallID, MsgID: req.ID}
}

// Clone returns a deep copy of the request.
func (req *Request) Clone() *Request {
	if req == nil {
		return nil
	}
	r := *req
	r.Via = req.Via.Clone()
	r.Contacts = slices.Clone(req.Contacts)
	r.Body = slices.Clone(req.Body)
	return &r
}

// LogValue implements [slog.LogValuer].
func (req *Request) LogValue() slog.Value {
	if req == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Any("id", req.ID),
		slog.Any("method", req.Method),
		slog.String("ruri", req.RURI),
		slog.String("call_id", req.CallID),
		slog.String("cseq", req.CSeq.String()),
	)
}

// Response is an inbound SIP response.
type Response struct {
	ID     MessageID      `json:"id"`
	SrvID  string         `json:"srv_id"`
	Status ResponseStatus `json:"status"`
	Reason string         `json:"reason,omitempty"`
	CallID string         `json:"call_id"`
	From   string         `json:"from"`
	To     string         `json:"to"`
	ToTag  string         `json:"to_tag,omitempty"`
	Via    Via            `json:"via,omitempty"`
	CSeq   CSeq           `json:"cseq"`
	Body   []byte         `json:"body,omitempty"`
	// RequestURI is the request target of the matched transaction.
	RequestURI string `json:"request_uri,omitempty"`
	// DialogID is the dialog resolved for the response.
	DialogID DialogID `json:"dialog_id,omitempty"`
}

func (res *Response) FirstVia() (ViaHop, bool) {
	if res == nil {
		return ViaHop{}, false
	}
	return res.Via.First()
}

func (res *Response) CSeqHeader() CSeq {
	if res == nil {
		return CSeq{}
	}
	return res.CSeq
}

// Clone returns a deep copy of the response.
func (res *Response) Clone() *Response {
	if res == nil {
		return nil
	}
	r := *res
	r.Via = res.Via.Clone()
	r.Body = slices.Clone(res.Body)
	return &r
}

// LogValue implements [slog.LogValuer].
func (res *Response) LogValue() slog.Value {
	if res == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Any("id", res.ID),
		slog.Any("status", res.Status),
		slog.String("call_id", res.CallID),
		slog.String("cseq", res.CSeq.String()),
	)
}

// RequestHandle is an opaque reference to a sent request.
type RequestHandle struct {
	SrvID  string    `json:"srv_id"`
	CallID string    `json:"call_id"`
	MsgID  MessageID `json:"msg_id"`
}

func (h RequestHandle) IsZero() bool { return h == RequestHandle{} }

func (h RequestHandle) String() string {
	return "R_" + string(h.MsgID) + "_" + h.SrvID + "_" + h.CallID
}
