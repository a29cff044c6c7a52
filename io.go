// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// WriteTraces writes the given traces to w, one per line, in the format
// returned by Trace.String.
//
func WriteTraces(w io.Writer, ts ...[]Trace) error {
	bw := bufio.NewWriter(w)
	for _, l := range ts {
		for _, t := range l {
			bw.WriteString(t.String())
			bw.WriteByte('\n')
		}
	}
	return errors.Wrap(bw.Flush(), "write traces")
}
