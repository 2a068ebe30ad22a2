package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// readInts parses args as integers, or whitespace separated integers from r
// when no args are given. Negative integers on the command line must follow
// "--" so they are not taken for flags.
func readInts(args []string, r io.Reader) ([]int64, error) {
	if len(args) == 0 {
		s := bufio.NewScanner(r)
		s.Split(bufio.ScanWords)
		for s.Scan() {
			args = append(args, s.Text())
		}
		if err := s.Err(); err != nil {
			return nil, errors.Wrap(err, "read input")
		}
	}

	xs := make([]int64, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "--") {
			return nil, errors.Newf("unexpected flag %q, flags go before the integers", a)
		}
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", a)
		}
		xs = append(xs, v)
	}
	return xs, nil
}
