package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// batch reads pairs of numbers, one pair per line, and prints the result
// of fn for each. Blank lines and lines starting with # are skipped. Lines
// that do not parse or that fn rejects print "nan nan" so output stays
// aligned with input.
func batch(r io.Reader, w io.Writer, fn func(a, b float64) ([]float64, bool)) error {
	out := bufio.NewWriter(w)
	var total, failed int

	err := scanPairs(r, func(line int, a, b float64, ok bool) error {
		total++
		if ok {
			var values []float64
			if values, ok = fn(a, b); ok {
				return printTo(out, values...)
			}
		}
		failed++
		_, err := fmt.Fprintln(out, "nan nan")
		return err
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		log.Warn().Int("points", total).Int("failed", failed).Msg("Some points have no result")
	} else {
		log.Debug().Int("points", total).Msg("Batch done")
	}

	return out.Flush()
}

// batchFlags is batch for yes or no answers, printed as 1 or 0.
func batchFlags(r io.Reader, w io.Writer, fn func(a, b float64) bool) error {
	out := bufio.NewWriter(w)
	var total, inside int

	err := scanPairs(r, func(line int, a, b float64, ok bool) error {
		total++
		v := 0
		if ok && fn(a, b) {
			v = 1
			inside++
		}
		_, err := fmt.Fprintln(out, v)
		return err
	})
	if err != nil {
		return err
	}

	log.Debug().Int("points", total).Int("inside", inside).Msg("Batch done")

	return out.Flush()
}

func scanPairs(r io.Reader, fn func(line int, a, b float64, ok bool) error) error {
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		a, b, err := parsePair(text)
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("Skipping malformed input")
		}
		if err := fn(line, a, b, err == nil); err != nil {
			return err
		}
	}

	return sc.Err()
}

func parsePair(s string) (float64, float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("want two numbers, got %q", s)
	}

	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func printTo(w io.Writer, values ...float64) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf(opts.Format, v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
