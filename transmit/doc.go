// Package transmit implements the transmit step of UAC transactions.
//
// [Transmitter] stamps a request with a new Via hop, sets the transaction key used to match
// responses, writes the request with a [Sender] and schedules the RFC 3261 client transaction
// timers: A and B for INVITE, E and F for other methods.
// Timers never touch transactions, an expired timer posts a [TimerEvent] to the [Poster]
// found in the context of the operation that scheduled it, which is the worker owning the call.
package transmit
