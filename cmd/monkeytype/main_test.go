package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/monkeytype-cli/internal/session"
)

func TestParseWordCount(t *testing.T) {
	cases := map[string]int{
		"":      session.DefaultWordCount,
		"50":    50,
		" 12 ":  12,
		"0":     session.DefaultWordCount,
		"-5":    session.DefaultWordCount,
		"abc":   session.DefaultWordCount,
		"50abc": session.DefaultWordCount,
		"9999":  9999,
		"10000": session.DefaultWordCount,
	}
	for in, want := range cases {
		if got := parseWordCount(in); got != want {
			t.Fatalf("parseWordCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"--words", "40"}, []string{"--words", "40"}},
		{[]string{"-w", "40"}, []string{"-w", "40"}},
		{[]string{"--words"}, []string{}},
		{[]string{"-w", "-h"}, []string{"-h"}},
		{[]string{"--words=40"}, []string{"--words=40"}},
		{[]string{}, []string{}},
	}
	for _, tc := range cases {
		if got := normalizeArgs(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("normalizeArgs(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestHelpExitsCleanly(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{flag})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%s: unexpected error: %v", flag, err)
		}
		if !strings.Contains(out.String(), "--words") || !strings.Contains(out.String(), "SPACE") {
			t.Fatalf("%s: help output missing content:\n%s", flag, out.String())
		}
	}
}

func TestRunRequiresTerminal(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--words", "5"})
	err := cmd.Execute()
	if !errors.Is(err, errNotTerminal) {
		t.Fatalf("expected not-a-terminal error, got %v", err)
	}
	if !strings.Contains(out.String(), "not a terminal") {
		t.Fatalf("expected diagnostic on stderr, got %q", out.String())
	}
}
