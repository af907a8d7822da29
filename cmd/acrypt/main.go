package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/thinknlive/ACrypt"
)

const usageStr = `Usage: acrypt encode|decode [OPTION]... [FILE]
Compress and obfuscate, or reverse, FILE (default: standard input) and
write the result to standard output.

  -k, --key string     key material for the key preamble
  -p, --pin uint32      PIN seeding the IV preamble's PRNG
  -i, --iv int          number of PRNG-derived IV preamble bytes
  -s, --step int        coding step (frequency increment per symbol)
      --preset string   one of fast, default, secure; overrides -i/-s
  -w, --lzw             run input through the LZW front end
  -x, --hex             frame binary output as hex / expect hex input
  -b, --base64          frame binary output as base64 / expect base64 input
  -h, --help            give this help
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options collects the parsed CLI flags shared by both subcommands.
type cliOptions struct {
	key    string
	pin    uint32
	iv     int
	step   int
	preset string
	lzw    bool
	hexF   bool
	b64F   bool
}

func presetByName(name string) (acrypt.Preset, bool) {
	switch name {
	case "", "default":
		return acrypt.PresetDefault, name != ""
	case "fast":
		return acrypt.PresetFast, true
	case "secure":
		return acrypt.PresetSecure, true
	default:
		return acrypt.Preset{}, false
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "acrypt: ", 0)

	if len(args) == 0 {
		usage(stderr)
		return 1
	}
	cmd := args[0]
	if cmd == "-h" || cmd == "--help" {
		usage(stdout)
		return 0
	}
	if cmd != "encode" && cmd != "decode" {
		logger.Printf("unknown subcommand %q", cmd)
		usage(stderr)
		return 1
	}

	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	var opts cliOptions
	fs.StringVarP(&opts.key, "key", "k", "", "")
	var pin uint32
	fs.Uint32VarP(&pin, "pin", "p", 0, "")
	fs.IntVarP(&opts.iv, "iv", "i", 0, "")
	fs.IntVarP(&opts.step, "step", "s", 0, "")
	fs.StringVar(&opts.preset, "preset", "", "")
	fs.BoolVarP(&opts.lzw, "lzw", "w", false, "")
	fs.BoolVarP(&opts.hexF, "hex", "x", false, "")
	fs.BoolVarP(&opts.b64F, "base64", "b", false, "")
	help := fs.BoolP("help", "h", false, "")
	fs.SetOutput(ioutil.Discard)

	if err := fs.Parse(args[1:]); err != nil {
		logger.Print(err)
		usage(stderr)
		return 1
	}
	if *help {
		usage(stdout)
		return 0
	}
	opts.pin = pin

	f, err := frameFromFlags(opts.hexF, opts.b64F)
	if err != nil {
		logger.Print(err)
		return 1
	}

	acOpts := acrypt.Options{
		Key:        []byte(opts.key),
		Pin:        opts.pin,
		IVLength:   opts.iv,
		CodingStep: opts.step,
		Logger:     logger,
	}
	if preset, ok := presetByName(opts.preset); ok {
		acOpts = preset.Apply(acOpts)
	}

	var in io.Reader = stdin
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		file, err := os.Open(fs.Arg(0))
		if err != nil {
			logger.Print(err)
			return 1
		}
		defer file.Close()
		in = file
	}
	raw, err := ioutil.ReadAll(in)
	if err != nil {
		logger.Print(err)
		return 1
	}

	coder := acrypt.New(acOpts)

	var out []byte
	switch cmd {
	case "encode":
		if opts.lzw {
			out, err = coder.LZWEncode(raw)
		} else {
			out, err = coder.Encode(raw)
		}
		if err != nil {
			logger.Print(err)
			return 1
		}
		out = encodeFrame(f, out)
	case "decode":
		payload, err := decodeFrame(f, raw)
		if err != nil {
			logger.Print(err)
			return 1
		}
		if opts.lzw {
			out, err = coder.LZWDecode(payload)
		} else {
			out, err = coder.Decode(payload)
		}
		if err != nil {
			logger.Print(err)
			return 1
		}
	}

	if _, err := stdout.Write(out); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
