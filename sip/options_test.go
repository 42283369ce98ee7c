package sip_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arentrue/nksip/sip"
)

func TestOptions_NilSafe(t *testing.T) {
	t.Parallel()

	var o *sip.Options
	if o.IsAsync() || o.IsNoDialog() || o.IsStateless() || o.HasContact() {
		t.Fatal("nil options report a flag")
	}
	if diff := cmp.Diff(&sip.Options{}, o.Clone()); diff != "" {
		t.Fatalf("nil.Clone() mismatch (-want +got):\n%s", diff)
	}
	if !o.Equal(&sip.Options{}) {
		t.Fatal("nil options are not equal to empty options")
	}
}

func TestOptions_Derive(t *testing.T) {
	t.Parallel()

	o := &sip.Options{
		Async:   true,
		Contact: []string{"<sip:alice@10.0.0.1>"},
		Extra:   map[string]any{"expires": 3600},
	}

	nd := o.WithNoDialog()
	if !nd.IsNoDialog() || o.IsNoDialog() {
		t.Fatalf("WithNoDialog() = %v, source %v", nd.NoDialog, o.NoDialog)
	}
	if diff := cmp.Diff(o.Contact, nd.Contact); diff != "" {
		t.Fatalf("WithNoDialog() Contact mismatch (-want +got):\n%s", diff)
	}

	nc := o.WithoutContact()
	if nc.HasContact() || !o.HasContact() {
		t.Fatalf("WithoutContact() HasContact = %v, source %v", nc.HasContact(), o.HasContact())
	}
	if !nc.IsAsync() {
		t.Fatal("WithoutContact() dropped Async")
	}

	c := o.Clone()
	c.Extra["expires"] = 60
	c.Contact[0] = "changed"
	if got, want := o.Extra["expires"], any(3600); got != want {
		t.Fatalf("source Extra[expires] = %v, want %v", got, want)
	}
	if got, want := o.Contact[0], "<sip:alice@10.0.0.1>"; got != want {
		t.Fatalf("source Contact[0] = %q, want %q", got, want)
	}
	if o.Equal(c) {
		t.Fatal("modified clone is equal to the source")
	}
	if !o.Equal(o.Clone()) {
		t.Fatal("clone is not equal to the source")
	}
}
