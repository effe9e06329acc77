package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"portcfg-go/port"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestPinCommand(t *testing.T) {
	out, _, err := run(t, "pin", "PTA0")
	if err != nil {
		t.Fatalf("pin: %v", err)
	}
	for _, want := range []string{"PTA0 (pad 0)", "alt0  ADC0_SE0_CMP0_IN0", "gpio  GPIO", "alt7  TRGMUX_OUT3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "pin", "6")
	if err != nil || !strings.Contains(out, "not routed") {
		t.Fatalf("pin 6: %v\n%s", err, out)
	}

	if _, _, err := run(t, "pin", "PTF0"); err == nil {
		t.Fatal("unknown pin should fail")
	}
}

func TestModeCommand(t *testing.T) {
	out, _, err := run(t, "mode", "alt7")
	if err != nil {
		t.Fatalf("mode: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(port.PinsIn(port.ModeAlt7)) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "PTA0") || !strings.Contains(out, "NMI_b") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestDumpCommand(t *testing.T) {
	out, _, err := run(t, "dump")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.HasPrefix(out, "alt0  3CBF 0000 20FF") {
		t.Fatalf("unexpected dump:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != port.ModeCount {
		t.Fatalf("dump has %d rows", n)
	}

	bin, _, err := run(t, "dump", "--binary")
	if err != nil {
		t.Fatalf("dump --binary: %v", err)
	}
	if len(bin) != port.LayoutSize {
		t.Fatalf("binary dump is %d bytes", len(bin))
	}
}

func TestCheckCommand(t *testing.T) {
	out, _, err := run(t, "check", "testdata/evb.yaml")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "s32k144-evb: 9 pins ok") {
		t.Fatalf("unexpected output: %q", out)
	}

	_, errOut, err := run(t, "check", "testdata/broken.yaml")
	if !errors.Is(err, errPlanRejected) {
		t.Fatalf("err = %v, want plan rejected", err)
	}
	if !strings.Contains(errOut, "mode_unavailable") || !strings.Contains(errOut, "duplicate_pin") {
		t.Fatalf("problems not reported:\n%s", errOut)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if want := "vendor 43, AUTOSAR 4.3.1, SW 1.0.3, set-pin-mode API true\n"; out != want {
		t.Fatalf("version = %q, want %q", out, want)
	}
}
