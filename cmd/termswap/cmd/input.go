package cmd

import (
	"fmt"
	"io"
	"os"

	"termswap/internal/core/textcodec"
	"termswap/internal/services/convert/domain"
)

const stdinName = "<stdin>"

// input is one decoded document read from a file or stdin
type input struct {
	path  string
	stdin bool
	mode  os.FileMode
	dec   textcodec.Decoded
}

// readInputs decodes every path, or stdin when paths is empty.
// Unreadable or undecodable files are reported on errOut and skipped;
// failed counts them
func (a *app) readInputs(paths []string) (ins []input, failed int, err error) {
	if len(paths) == 0 {
		b, err := io.ReadAll(a.in)
		if err != nil {
			return nil, 0, fmt.Errorf("read stdin: %w", err)
		}
		dec, err := textcodec.Decode(b, a.encoding)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", stdinName, err)
		}
		return []input{{path: stdinName, stdin: true, dec: dec}}, 0, nil
	}

	if !textcodec.Supported(a.encoding) {
		return nil, 0, fmt.Errorf("unsupported --encoding %q", a.encoding)
	}
	for _, p := range paths {
		in, err := a.readFile(p)
		if err != nil {
			fmt.Fprintf(a.errOut, "termswap: %s: %v\n", p, err)
			a.log.Debug().Err(err).Str("path", p).Msg("input skipped")
			failed++
			continue
		}
		ins = append(ins, in)
	}
	return ins, failed, nil
}

func (a *app) readFile(p string) (input, error) {
	st, err := os.Stat(p)
	if err != nil {
		return input{}, err
	}
	if st.IsDir() {
		return input{}, fmt.Errorf("is a directory")
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return input{}, err
	}
	dec, err := textcodec.Decode(b, a.encoding)
	if err != nil {
		return input{}, err
	}
	return input{path: p, mode: st.Mode().Perm(), dec: dec}, nil
}

func documents(ins []input) []domain.Document {
	docs := make([]domain.Document, len(ins))
	for i, in := range ins {
		docs[i] = domain.Document{Name: in.path, Text: in.dec.Text}
	}
	return docs
}
