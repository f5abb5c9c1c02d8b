// Command testhelper exchanges encoding vectors over stdio so the test
// suites of other Mensago implementations can check themselves against this
// library. Input bytes arrive on stdin; results leave as JSON on stdout.
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	mensago "github.com/mensago/mensago-go"
	"github.com/mensago/mensago-go/base85"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: testhelper <encode|decode|validate|from-parts> [args]")
	}

	switch args[0] {
	case "encode":
		return encode(stdin, stdout)
	case "decode":
		return decode(stdin, stdout)
	case "validate":
		if len(args) < 2 {
			return errors.New("usage: testhelper validate <cryptostring>")
		}
		return validate(args[1], stdout)
	case "from-parts":
		if len(args) < 2 {
			return errors.New("usage: testhelper from-parts <algorithm>")
		}
		return fromParts(args[1], stdin, stdout)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func encode(stdin io.Reader, stdout io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	return emit(stdout, map[string]string{"encoded": base85.Encode(data)})
}

func decode(stdin io.Reader, stdout io.Writer) error {
	text, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	data, err := base85.Decode(string(text))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return emit(stdout, map[string]string{"hex": hex.EncodeToString(data)})
}

type validateOutput struct {
	Valid  bool   `json:"valid"`
	Prefix string `json:"prefix,omitempty"`
	Data   string `json:"data,omitempty"`
	Hex    string `json:"hex,omitempty"`
}

func validate(s string, stdout io.Writer) error {
	cs := mensago.NewCS(s)

	out := validateOutput{Valid: cs.IsValid()}
	if cs.IsValid() {
		out.Prefix = cs.Prefix()
		out.Data = cs.Data()

		raw, err := cs.RawData()
		if err != nil {
			return fmt.Errorf("raw data: %w", err)
		}
		out.Hex = hex.EncodeToString(raw)
	}

	return emit(stdout, out)
}

func fromParts(algorithm string, stdin io.Reader, stdout io.Writer) error {
	buffer, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	cs := mensago.NewCSFromBytes(algorithm, buffer)
	if !cs.IsValid() {
		return errors.New("invalid algorithm name or empty buffer")
	}

	return emit(stdout, map[string]string{"value": cs.AsString()})
}

func emit(stdout io.Writer, v any) error {
	if err := json.NewEncoder(stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
