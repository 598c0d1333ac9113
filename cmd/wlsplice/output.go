package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/jeffwilliams/wiredlist/internal/script"
)

type output interface {
	Write(s script.Snapshot) error
	Flush() error
}

type outputFormat string

const (
	formatText outputFormat = "text"
	formatCsv  outputFormat = "csv"
)

func newOutput(w io.Writer, cfg OutputSettings) (output, error) {
	log(LogCatgOutput, "output format %s\n", cfg.Format)
	switch outputFormat(cfg.Format) {
	case formatText, "":
		return &textOutput{w: w, sep: cfg.Separator}, nil
	case formatCsv:
		cw := csv.NewWriter(w)
		return &csvOutput{w: cw, enc: csvutil.NewEncoder(cw), sep: cfg.Separator}, nil
	}
	return nil, fmt.Errorf("unknown output format %q: expected %s or %s", cfg.Format, formatText, formatCsv)
}

type textOutput struct {
	w   io.Writer
	sep string
}

func (o *textOutput) Write(s script.Snapshot) error {
	var b strings.Builder
	fmt.Fprintf(&b, "step %d: %s\n", s.Step, s.Op)
	for _, l := range s.Lists {
		fmt.Fprintf(&b, "  %s: [%s]\n", l.Name, strings.Join(l.Values, o.sep))
	}
	_, err := io.WriteString(o.w, b.String())
	return err
}

func (o *textOutput) Flush() error {
	return nil
}

// record is one row of csv output: the state of one list after one step.
type record struct {
	Step   int    `csv:"step"`
	Op     string `csv:"op"`
	List   string `csv:"list"`
	Len    int    `csv:"len"`
	Values string `csv:"values"`
}

type csvOutput struct {
	w   *csv.Writer
	enc *csvutil.Encoder
	sep string
}

func (o *csvOutput) Write(s script.Snapshot) error {
	for _, l := range s.Lists {
		r := record{
			Step:   s.Step,
			Op:     s.Op,
			List:   l.Name,
			Len:    len(l.Values),
			Values: strings.Join(l.Values, o.sep),
		}
		if err := o.enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func (o *csvOutput) Flush() error {
	o.w.Flush()
	return o.w.Error()
}
