// The MIT License (MIT)
//
// Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"encoding/json"
	"os"
)

// Config describes a Reed-Solomon code, either spelled out directly or
// selected by Profile (which, if set, fills Symsize, Gfpoly, Fcr, Prim and
// Nroots; Length is always taken as given).
type Config struct {
	Profile string `json:"profile"`
	Symsize int    `json:"symsize"`
	Gfpoly  int    `json:"gfpoly"`
	Fcr     int    `json:"fcr"`
	Prim    int    `json:"prim"`
	Nroots  int    `json:"nroots"`
	Length  int    `json:"length"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}

// resolve fills in Symsize, Gfpoly, Fcr, Prim and Nroots from Profile when
// set (Length is left as given), otherwise leaves the directly specified
// fields as-is.
func (c *Config) resolve() error {
	if c.Profile == "" {
		return nil
	}
	p, err := lookupProfile(c.Profile)
	if err != nil {
		return err
	}
	c.Symsize, c.Gfpoly, c.Fcr, c.Prim, c.Nroots = p.Symsize, p.Gfpoly, p.Fcr, p.Prim, p.Nroots
	return nil
}
