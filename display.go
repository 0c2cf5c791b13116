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
	"fmt"
	"io"

	tsize "github.com/kopoli/go-terminal-size"
	"github.com/schollz/progressbar/v3"
)

const (
	barTextReserve  = 40
	defaultBarWidth = 40
	doneMessage     = "Done"
	minBarWidth     = 10
)

type barStyle struct {
	Width int
	Color bool
}

type progressBar struct {
	bar    *progressbar.ProgressBar
	writer io.Writer
	total  int64
}

func terminalWidth() (int, bool) {
	size, err := tsize.GetSize()
	if err != nil || size.Width <= 0 {
		return 0, false
	}

	return size.Width, true
}

// newBarStyle leaves room next to the bar for the elapsed time, the count
// and the ETA. Output that isn't a terminal gets a fixed width and no color.
func newBarStyle(columns int, terminal bool) barStyle {
	if !terminal {
		return barStyle{Width: defaultBarWidth}
	}

	width := columns - barTextReserve
	if width < minBarWidth {
		width = minBarWidth
	}

	return barStyle{Width: width, Color: true}
}

func (s barStyle) theme() progressbar.Theme {
	theme := progressbar.Theme{
		Saucer:        "#",
		SaucerHead:    ">",
		SaucerPadding: "-",
		BarStart:      "[",
		BarEnd:        "]",
	}

	if s.Color {
		theme.Saucer = "[cyan]#[reset]"
		theme.SaucerHead = "[cyan]>[reset]"
	}

	return theme
}

// newProgressBar renders the empty bar immediately.
func newProgressBar(w io.Writer, total int64, style barStyle) *progressBar {
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(style.Width),
		progressbar.OptionEnableColorCodes(style.Color),
		progressbar.OptionSetTheme(style.theme()),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &progressBar{
		bar:    bar,
		writer: w,
		total:  total,
	}
}

func (p *progressBar) Advance() error {
	return p.bar.Add(1)
}

func (p *progressBar) Finish() error {
	// A zero-length bar is already complete once rendered, and the library
	// refuses to update it.
	if p.total > 0 {
		if err := p.bar.Finish(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(p.writer, "\n%s\n", doneMessage)
	return err
}
