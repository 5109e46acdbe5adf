package main

import "testing"

func TestLookupProfile(t *testing.T) {
	p, err := lookupProfile("rs255-223")
	if err != nil {
		t.Fatalf("lookupProfile() error = %v", err)
	}
	if p.Symsize != 8 || p.Nroots != 32 {
		t.Fatalf("lookupProfile(rs255-223) = %+v, want symsize=8 nroots=32", p)
	}
}

func TestLookupProfileUnknown(t *testing.T) {
	if _, err := lookupProfile("does-not-exist"); err == nil {
		t.Fatalf("lookupProfile() error = nil, want an error for an unknown name")
	}
}

func TestConfigResolveFromProfile(t *testing.T) {
	cfg := Config{Profile: "gf16"}
	if err := cfg.resolve(); err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg.Symsize != 4 || cfg.Gfpoly != 0x13 || cfg.Nroots != 5 {
		t.Fatalf("resolve() = %+v, want gf16 profile fields", cfg)
	}
}

func TestConfigResolveWithoutProfileIsNoOp(t *testing.T) {
	cfg := Config{Symsize: 8, Gfpoly: 0x11d, Fcr: 0, Prim: 1, Nroots: 32}
	want := cfg
	if err := cfg.resolve(); err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if cfg != want {
		t.Fatalf("resolve() changed cfg = %+v, want unchanged %+v", cfg, want)
	}
}
