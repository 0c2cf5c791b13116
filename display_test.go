// Copyright (c) 2024-2026 D. Bohdan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
)

func TestNewBarStyle(t *testing.T) {
	tests := []struct {
		columns  int
		terminal bool
		style    barStyle
	}{
		{0, false, barStyle{Width: 40}},
		{200, false, barStyle{Width: 40}},
		{120, true, barStyle{Width: 80, Color: true}},
		{30, true, barStyle{Width: 10, Color: true}},
	}

	for _, tt := range tests {
		if style := newBarStyle(tt.columns, tt.terminal); style != tt.style {
			t.Errorf("Expected %s for %d columns, got %s", repr.String(tt.style), tt.columns, repr.String(style))
		}
	}
}

func TestBarTheme(t *testing.T) {
	plain := barStyle{Width: 40}.theme()
	if plain.Saucer != "#" || plain.SaucerPadding != "-" {
		t.Errorf("Expected a plain '#' and '-' theme, got %s", repr.String(plain))
	}

	colored := barStyle{Width: 40, Color: true}.theme()
	if !strings.Contains(colored.Saucer, "[cyan]") {
		t.Errorf("Expected a cyan saucer, got %s", repr.String(colored))
	}
}

func TestProgressBarRendersImmediately(t *testing.T) {
	var out bytes.Buffer
	newProgressBar(&out, 4, barStyle{Width: 20})

	if !strings.Contains(out.String(), "(0/4)") {
		t.Errorf("Expected '(0/4)' before any progress, got %q", out.String())
	}
}

func TestProgressBarCompletes(t *testing.T) {
	var out bytes.Buffer
	bar := newProgressBar(&out, 4, barStyle{Width: 20})

	for i := 0; i < 4; i++ {
		if err := bar.Advance(); err != nil {
			t.Fatalf("Expected no error on step %d, got %v", i+1, err)
		}
	}

	if err := bar.Finish(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := out.String()
	for _, want := range []string{"(2/4)", "(4/4)", "100%", "[####################]"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in output, got %q", want, s)
		}
	}

	if !strings.HasSuffix(s, "\nDone\n") {
		t.Errorf("Expected output to end with 'Done', got %q", s)
	}
}

func TestProgressBarFinishEarly(t *testing.T) {
	var out bytes.Buffer
	bar := newProgressBar(&out, 8, barStyle{Width: 20})

	if err := bar.Advance(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := bar.Finish(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(out.String(), "Done") {
		t.Errorf("Expected 'Done' in output, got %q", out.String())
	}
}

func TestProgressBarZeroLength(t *testing.T) {
	var out bytes.Buffer
	bar := newProgressBar(&out, 0, barStyle{Width: 20})

	if err := bar.Finish(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := out.String()
	if !strings.Contains(s, "(0/0)") {
		t.Errorf("Expected '(0/0)' in output, got %q", s)
	}

	if !strings.HasSuffix(s, "\nDone\n") {
		t.Errorf("Expected output to end with 'Done', got %q", s)
	}
}
