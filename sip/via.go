package sip

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/arentrue/nksip/internal/util"
)

// Via represents the Via header field, the topmost hop goes first.
type Via []ViaHop

// Clone returns a deep copy of the header.
func (hdr Via) Clone() Via {
	if hdr == nil {
		return nil
	}
	hops := make(Via, len(hdr))
	for i := range hdr {
		hops[i] = hdr[i].Clone()
	}
	return hops
}

// First returns the topmost hop.
func (hdr Via) First() (ViaHop, bool) {
	if len(hdr) == 0 {
		return ViaHop{}, false
	}
	return hdr[0], true
}

// PopFirst returns the header without its topmost hop.
func (hdr Via) PopFirst() Via {
	if len(hdr) == 0 {
		return hdr
	}
	return slices.Clone(hdr[1:])
}

func (hdr Via) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, hop := range hdr {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(hop.String())
	}
	return sb.String()
}

// ViaHop is a single value of the Via header field.
type ViaHop struct {
	Proto     string            `json:"proto"`
	Transport string            `json:"transport"`
	Host      string            `json:"host"`
	Port      uint16            `json:"port,omitempty"`
	Params    map[string]string `json:"params,omitempty"`
}

// Branch returns the branch parameter of the hop.
func (hop ViaHop) Branch() (string, bool) {
	b, ok := hop.Params["branch"]
	return b, ok && b != ""
}

// WithBranch returns a copy of the hop with the branch parameter set.
func (hop ViaHop) WithBranch(branch string) ViaHop {
	hop = hop.Clone()
	if hop.Params == nil {
		hop.Params = make(map[string]string, 1)
	}
	hop.Params["branch"] = branch
	return hop
}

func (hop ViaHop) Clone() ViaHop {
	hop.Params = maps.Clone(hop.Params)
	return hop
}

func (hop ViaHop) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	proto := hop.Proto
	if proto == "" {
		proto = "SIP/2.0"
	}
	fmt.Fprintf(sb, "%s/%s %s", proto, util.UCase(hop.Transport), hop.Host)
	if hop.Port != 0 {
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(int(hop.Port)))
	}
	if b, ok := hop.Branch(); ok {
		sb.WriteString(";branch=")
		sb.WriteString(b)
	}
	for _, k := range slices.Sorted(maps.Keys(hop.Params)) {
		if k == "branch" {
			continue
		}
		sb.WriteString(";")
		sb.WriteString(k)
		if v := hop.Params[k]; v != "" {
			sb.WriteString("=")
			sb.WriteString(v)
		}
	}
	return sb.String()
}
