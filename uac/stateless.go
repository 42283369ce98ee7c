package uac

import "github.com/arentrue/nksip/sip"

// IsStatelessResponse reports whether the response answers a request sent statelessly
// by a node with the given global id.
// Such requests carry a top Via branch "z9hG4bK<base>-<hash>", see [sip.GenerateStatelessBranch].
func IsStatelessResponse(res *sip.Response, globalID string) bool {
	if res == nil {
		return false
	}
	via, ok := res.FirstVia()
	if !ok {
		return false
	}
	branch, ok := via.Branch()
	if !ok {
		return false
	}
	base, hash, ok := sip.SplitStatelessBranch(branch)
	return ok && hash == sip.StatelessHash(base, globalID)
}

// IsStatelessResponse reports whether the response answers a request this engine sent statelessly.
func (e *Engine) IsStatelessResponse(res *sip.Response) bool {
	return IsStatelessResponse(res, e.globalID)
}
