package sip

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// MagicCookie is the RFC 3261 branch prefix.
const MagicCookie = "z9hG4bK"

const statelessMarker = "stateless"

// GenerateBranch returns a new RFC 3261 branch.
func GenerateBranch() string {
	return MagicCookie + branchBase()
}

// GenerateStatelessBranch returns a new branch that can later be recognised
// without keeping any state, see [StatelessHash].
func GenerateStatelessBranch(globalID string) string {
	base := branchBase()
	return MagicCookie + base + "-" + StatelessHash(base, globalID)
}

// StatelessHash computes the hash embedded into stateless branches.
// The result depends only on the branch base and the process-wide global identifier.
func StatelessHash(base, globalID string) string {
	d := xxhash.New()
	for _, s := range [...]string{base, globalID, statelessMarker} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return strconv.FormatUint(d.Sum64(), 36)
}

// SplitStatelessBranch splits the branch into a base and a hash suffix.
// It returns false if the branch is not formed as MagicCookie + base + "-" + suffix.
func SplitStatelessBranch(branch string) (base, suffix string, ok bool) {
	rest, found := strings.CutPrefix(branch, MagicCookie)
	if !found {
		return "", "", false
	}
	i := strings.LastIndexByte(rest, '-')
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

func branchBase() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
