// Package sip contains the SIP message model consumed by the UAC transaction engine.
//
// Message grammar and wire rendering are out of scope here: [Request] and [Response]
// carry only the fields the engine and its collaborators read or rewrite, that is the
// Via and CSeq header fields used for transaction matching, the Call-ID, the resolved
// request target and dialog identifiers, plus an opaque body.
//
// [Options] is the typed option set used to build and send requests.
// Flags interpreted by the engine are enumerated explicitly, everything else
// travels in [Options.Extra] to the message builder untouched.
package sip
