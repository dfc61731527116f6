// Copyright © 2019 the weft authors
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

package cmd

import (
	"time"
)

// Parameters is a registry of flag value pointers, so that defaults from a
// config file can be overlaid with command line flags before use.
type Parameters struct {
	strs      map[string]*string
	strSlices map[string]*[]string
	ints      map[string]*int
	durs      map[string]*time.Duration
	bools     map[string]*bool
}

func Merge(first, second *Parameters) *Parameters {
	merged := &Parameters{}
	merged.absorb(first)
	merged.absorb(second)
	return merged
}

func (p *Parameters) absorb(other *Parameters) {
	for k, str := range other.strs {
		ptr := p.String(k)
		*ptr = *str
	}

	for k, sl := range other.strSlices {
		ptr := p.StringSlice(k)
		*ptr = *sl
	}

	for k, i := range other.ints {
		ptr := p.Int(k)
		*ptr = *i
	}

	for k, dur := range other.durs {
		ptr := p.Duration(k)
		*ptr = *dur
	}

	for k, b := range other.bools {
		ptr := p.Bool(k)
		*ptr = *b
	}
}

func (p *Parameters) String(flagName string) *string {
	if p.strs == nil {
		p.strs = map[string]*string{}
	}

	str, ok := p.strs[flagName]

	if !ok {
		str = new(string)
		p.strs[flagName] = str
	}

	return str
}

func (p *Parameters) StringSlice(flagName string) *[]string {
	if p.strSlices == nil {
		p.strSlices = map[string]*[]string{}
	}

	sl, ok := p.strSlices[flagName]

	if !ok {
		sl = new([]string)
		p.strSlices[flagName] = sl
	}

	return sl
}

func (p *Parameters) Bool(flagName string) *bool {
	if p.bools == nil {
		p.bools = map[string]*bool{}
	}

	bl, ok := p.bools[flagName]

	if !ok {
		bl = new(bool)
		p.bools[flagName] = bl
	}

	return bl
}

func (p *Parameters) Int(flagName string) *int {
	if p.ints == nil {
		p.ints = map[string]*int{}
	}

	i, ok := p.ints[flagName]

	if !ok {
		i = new(int)
		p.ints[flagName] = i
	}

	return i
}

func (p *Parameters) Duration(flagName string) *time.Duration {
	if p.durs == nil {
		p.durs = map[string]*time.Duration{}
	}

	dur, ok := p.durs[flagName]

	if !ok {
		dur = new(time.Duration)
		p.durs[flagName] = dur
	}

	return dur
}
