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
	"math"
	"time"
)

const stepInterval = 250 * time.Millisecond

type timerConfig struct {
	Duration float64
	Interval time.Duration
	Steps    int64
}

// display is what countdown reports progress to.
type display interface {
	Advance() error
	Finish() error
}

func stepCount(seconds float64, interval time.Duration) int64 {
	return int64(math.Ceil(seconds / interval.Seconds()))
}

func newTimerConfig(seconds float64) timerConfig {
	return timerConfig{
		Duration: seconds,
		Interval: stepInterval,
		Steps:    stepCount(seconds, stepInterval),
	}
}

// countdown sleeps one interval at a time until the requested duration is
// covered, advancing d after every sleep. It returns the final position.
func countdown(config timerConfig, d display, sleep func(time.Duration)) (int64, error) {
	var position int64

	for i := int64(0); i < config.Steps; i++ {
		sleep(config.Interval)
		position++

		if err := d.Advance(); err != nil {
			return position, err
		}

		elapsed := float64(i+1) * config.Interval.Seconds()
		if elapsed >= config.Duration {
			break
		}
	}

	return position, d.Finish()
}
