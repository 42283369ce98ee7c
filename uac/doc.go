// Package uac implements the client side of SIP transactions as described in RFC 3261.
//
// The engine does not own any goroutine. Every operation takes the [Call] it works on
// and mutates it in place, so the caller must guarantee that a call is processed by
// exactly one worker at a time (see package call). Message construction, transmission,
// the dialog subsystem and the processing of matched responses are collaborators
// given to [NewEngine].
//
// Outbound requests flow through [Engine.SendRequest]: request interceptors, creation
// of the [Transaction], optional eager completion of the API caller and finally the
// [Transmitter]. Inbound responses are correlated by [Engine.OnResponse] and passed to
// response interceptors and the [ResponseReceiver].
//
// CANCEL is gated by the status of the INVITE transaction. A CANCEL issued before any
// provisional response is only recorded, and must be re-issued with
// [Engine.CancelTransaction] once the transaction enters [StatusInviteProceeding].
// [StdResponseProcessor] does that automatically.
package uac
