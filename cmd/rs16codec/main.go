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
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/fblomqvist/rs16"
)

// VERSION is injected by buildflags
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "rs16codec"
	myApp.Usage = "Reed-Solomon encode/decode/verify/bench over GF(2^m)"
	myApp.Version = VERSION
	myApp.Commands = []cli.Command{
		encodeCommand,
		decodeCommand,
		verifyCommand,
		benchCommand,
	}

	if err := myApp.Run(os.Args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

var profileFlags = []cli.Flag{
	cli.StringFlag{Name: "profile", Usage: "named code profile, see `rs16codec bench --list`"},
	cli.IntFlag{Name: "symsize", Usage: "symbol size in bits, 2-16"},
	cli.IntFlag{Name: "gfpoly", Usage: "field generator polynomial"},
	cli.IntFlag{Name: "fcr", Usage: "first consecutive root"},
	cli.IntFlag{Name: "prim", Usage: "primitive element spacing"},
	cli.IntFlag{Name: "nroots", Usage: "number of parity symbols"},
	cli.IntFlag{Name: "length", Usage: "symbols per block, parity included"},
	cli.StringFlag{Name: "config", Usage: "JSON config file (overrides the flags above)"},
}

func configFromContext(c *cli.Context) (Config, error) {
	var cfg Config
	if path := c.String("config"); path != "" {
		if err := parseJSONConfig(&cfg, path); err != nil {
			return cfg, errors.Wrap(err, "parseJSONConfig()")
		}
	} else {
		cfg = Config{
			Profile: c.String("profile"),
			Symsize: c.Int("symsize"),
			Gfpoly:  c.Int("gfpoly"),
			Fcr:     c.Int("fcr"),
			Prim:    c.Int("prim"),
			Nroots:  c.Int("nroots"),
			Length:  c.Int("length"),
		}
	}

	if err := cfg.resolve(); err != nil {
		return cfg, errors.Wrap(err, "resolve()")
	}
	return cfg, nil
}

var encodeCommand = cli.Command{
	Name:  "encode",
	Usage: "pack a file into symbols and write a framed, Reed-Solomon-protected stream",
	Flags: append(profileFlags,
		cli.StringFlag{Name: "in", Usage: "input file"},
		cli.StringFlag{Name: "out", Usage: "output file"},
	),
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(c.String("in"))
		if err != nil {
			return errors.Wrap(err, "ReadFile()")
		}

		code, err := rs16.Init(cfg.Symsize, cfg.Gfpoly, cfg.Fcr, cfg.Prim, cfg.Nroots)
		if err != nil {
			return errors.Wrap(err, "rs16.Init()")
		}
		defer rs16.Free(code)

		syms, padBits := packSymbols(raw, cfg.Symsize)
		dlen := cfg.Length - cfg.Nroots
		nblocks := (len(syms) + dlen - 1) / dlen

		out, err := os.Create(c.String("out"))
		if err != nil {
			return errors.Wrap(err, "Create()")
		}
		defer out.Close()

		if err := writeBlockHeader(out, blockHeader{
			Symsize:  int32(cfg.Symsize),
			Gfpoly:   int32(cfg.Gfpoly),
			Fcr:      int32(cfg.Fcr),
			Prim:     int32(cfg.Prim),
			Nroots:   int32(cfg.Nroots),
			Length:   int32(cfg.Length),
			PadBits:  int32(padBits),
			NBlocks:  int32(nblocks),
			NSymbols: int32(len(syms)),
		}); err != nil {
			return errors.Wrap(err, "writeBlockHeader()")
		}

		for b := 0; b < nblocks; b++ {
			block := make([]uint16, cfg.Length)
			start := b * dlen
			end := start + dlen
			if end > len(syms) {
				end = len(syms)
			}
			copy(block, syms[start:end])

			if err := code.Encode(block, cfg.Length, 1); err != nil {
				return errors.Wrap(err, "Encode()")
			}
			if err := writeSymbols(out, block); err != nil {
				return errors.Wrap(err, "writeSymbols()")
			}
		}

		color.Green("encoded %d block(s), %d symbol(s)/block", nblocks, cfg.Length)
		return nil
	},
}

var decodeCommand = cli.Command{
	Name:  "decode",
	Usage: "decode a framed Reed-Solomon stream and write back the original file",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in", Usage: "input file, produced by 'encode'"},
		cli.StringFlag{Name: "out", Usage: "output file"},
	},
	Action: func(c *cli.Context) error {
		in, err := os.Open(c.String("in"))
		if err != nil {
			return errors.Wrap(err, "Open()")
		}
		defer in.Close()

		h, err := readBlockHeader(in)
		if err != nil {
			return err
		}

		code, err := rs16.Init(int(h.Symsize), int(h.Gfpoly), int(h.Fcr), int(h.Prim), int(h.Nroots))
		if err != nil {
			return errors.Wrap(err, "rs16.Init()")
		}
		defer rs16.Free(code)

		dlen := int(h.Length - h.Nroots)
		var allSyms []uint16
		totalCorrected := 0

		for b := 0; b < int(h.NBlocks); b++ {
			block, err := readSymbols(in, int(h.Length))
			if err != nil {
				return err
			}

			n, decErr := code.Decode(block, int(h.Length), 1, nil, nil)
			if decErr != nil {
				color.Red("block %d: %v", b, decErr)
				return errors.Wrap(decErr, fmt.Sprintf("Decode(block %d)", b))
			}
			totalCorrected += n
			allSyms = append(allSyms, block[:dlen]...)
		}

		if int(h.NSymbols) < len(allSyms) {
			allSyms = allSyms[:h.NSymbols]
		}
		raw := unpackSymbols(allSyms, int(h.Symsize), int(h.PadBits))
		if err := os.WriteFile(c.String("out"), raw, 0644); err != nil {
			return errors.Wrap(err, "WriteFile()")
		}

		color.Green("decoded %d block(s), corrected %d symbol(s) total", h.NBlocks, totalCorrected)
		return nil
	},
}

var verifyCommand = cli.Command{
	Name:  "verify",
	Usage: "check that every block of an encoded stream is a valid codeword",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in", Usage: "input file, produced by 'encode'"},
	},
	Action: func(c *cli.Context) error {
		in, err := os.Open(c.String("in"))
		if err != nil {
			return errors.Wrap(err, "Open()")
		}
		defer in.Close()

		h, err := readBlockHeader(in)
		if err != nil {
			return err
		}

		code, err := rs16.Init(int(h.Symsize), int(h.Gfpoly), int(h.Fcr), int(h.Prim), int(h.Nroots))
		if err != nil {
			return errors.Wrap(err, "rs16.Init()")
		}
		defer rs16.Free(code)

		bad := 0
		for b := 0; b < int(h.NBlocks); b++ {
			block, err := readSymbols(in, int(h.Length))
			if err != nil {
				return err
			}
			if code.IsCodeword(block, int(h.Length), 1) {
				color.Green("block %d: ok", b)
			} else {
				color.Red("block %d: not a codeword", b)
				bad++
			}
		}

		if bad > 0 {
			return fmt.Errorf("%d of %d block(s) failed verification", bad, h.NBlocks)
		}
		return nil
	},
}

var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "measure BatchEncode/BatchDecode throughput for a profile",
	Flags: append(profileFlags,
		cli.IntFlag{Name: "blocks", Value: 1000, Usage: "number of independent blocks to process"},
		cli.BoolFlag{Name: "list", Usage: "list built-in profiles and exit"},
	),
	Action: func(c *cli.Context) error {
		if c.Bool("list") {
			for _, p := range profiles {
				fmt.Printf("%-16s symsize=%-3d gfpoly=%#06x fcr=%-4d prim=%-3d nroots=%d\n",
					p.Name, p.Symsize, p.Gfpoly, p.Fcr, p.Prim, p.Nroots)
			}
			return nil
		}

		cfg, err := configFromContext(c)
		if err != nil {
			return err
		}

		code, err := rs16.Init(cfg.Symsize, cfg.Gfpoly, cfg.Fcr, cfg.Prim, cfg.Nroots)
		if err != nil {
			return errors.Wrap(err, "rs16.Init()")
		}
		defer rs16.Free(code)

		nblocks := c.Int("blocks")
		dlen := cfg.Length - cfg.Nroots
		rng := rand.New(rand.NewSource(1))

		encJobs := make([]rs16.EncodeJob, nblocks)
		for i := range encJobs {
			data := make([]uint16, cfg.Length)
			for j := 0; j < dlen; j++ {
				data[j] = uint16(rng.Intn(code.NN() + 1))
			}
			encJobs[i] = rs16.EncodeJob{Data: data, Length: cfg.Length, Stride: 1}
		}

		start := time.Now()
		rs16.BatchEncode(code, encJobs)
		encElapsed := time.Since(start)

		decJobs := make([]rs16.DecodeJob, nblocks)
		for i, job := range encJobs {
			if job.Err != nil {
				return errors.Wrap(job.Err, "Encode()")
			}
			data := append([]uint16(nil), job.Data...)
			data[i%cfg.Length] ^= 1
			decJobs[i] = rs16.DecodeJob{Data: data, Length: cfg.Length, Stride: 1}
		}

		start = time.Now()
		rs16.BatchDecode(code, decJobs)
		decElapsed := time.Since(start)

		for i, job := range decJobs {
			if job.Err != nil {
				return errors.Wrap(job.Err, fmt.Sprintf("Decode(block %d)", i))
			}
		}

		color.Green("encode: %d blocks in %s (%.0f blocks/s)", nblocks, encElapsed, float64(nblocks)/encElapsed.Seconds())
		color.Green("decode: %d blocks in %s (%.0f blocks/s)", nblocks, decElapsed, float64(nblocks)/decElapsed.Seconds())
		return nil
	},
}
