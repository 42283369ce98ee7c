// Package call runs UAC transactions of each call in its own worker.
//
// A [Worker] owns the [uac.Call] context of one Call-ID and serialises every operation on it:
// API requests, inbound responses and expired transaction timers.
// The [Registry] keeps the workers of a server and routes requests and responses to them.
package call
