package sip

import (
	"maps"
	"slices"

	"github.com/google/go-cmp/cmp"
)

// Options is the option set used to build and send a request.
// A nil *Options is a valid empty option set.
type Options struct {
	// Async requests the API caller to be completed as soon as the request is sent,
	// with a handle of the request instead of the final response.
	Async bool `json:"async,omitempty" yaml:"async,omitempty"`
	// NoDialog suppresses automatic dialog creation for the request.
	NoDialog bool `json:"no_dialog,omitempty" yaml:"no_dialog,omitempty"`
	// Stateless asks the transmit step to generate a stateless branch.
	Stateless bool `json:"stateless,omitempty" yaml:"stateless,omitempty"`
	// Contact is the list of Contact URIs to add to the request.
	// Nil means the option is absent.
	Contact []string `json:"contact,omitempty" yaml:"contact,omitempty"`

	From        string `json:"from,omitempty" yaml:"from,omitempty"`
	To          string `json:"to,omitempty" yaml:"to,omitempty"`
	Body        []byte `json:"body,omitempty" yaml:"body,omitempty"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`

	// Extra carries message builder options the engine does not interpret.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

func (o *Options) IsAsync() bool { return o != nil && o.Async }

func (o *Options) IsNoDialog() bool { return o != nil && o.NoDialog }

func (o *Options) IsStateless() bool { return o != nil && o.Stateless }

func (o *Options) HasContact() bool { return o != nil && o.Contact != nil }

// Clone returns a copy of the options. Nil options are cloned into an empty set.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	c := *o
	c.Contact = slices.Clone(o.Contact)
	c.Body = slices.Clone(o.Body)
	c.Extra = maps.Clone(o.Extra)
	return &c
}

// WithNoDialog returns a copy of the options with NoDialog set.
func (o *Options) WithNoDialog() *Options {
	c := o.Clone()
	c.NoDialog = true
	return c
}

// WithoutContact returns a copy of the options without the Contact option.
func (o *Options) WithoutContact() *Options {
	c := o.Clone()
	c.Contact = nil
	return c
}

// Equal reports whether the options are deeply equal.
func (o *Options) Equal(other *Options) bool {
	return cmp.Equal(*o.Clone(), *other.Clone())
}
