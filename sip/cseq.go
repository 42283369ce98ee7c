package sip

import "strconv"

// CSeq represents the CSeq header field.
// The CSeq header field serves as a way to identify and order transactions.
type CSeq struct {
	SeqNum uint32        `json:"seq_num"`
	Method RequestMethod `json:"method"`
}

func (hdr CSeq) String() string {
	return strconv.FormatUint(uint64(hdr.SeqNum), 10) + " " + string(hdr.Method)
}
