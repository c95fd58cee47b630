package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/verify"
	"github.com/Lemurian-Labs/lemurian-universal/internal/wire"
)

var header = []string{"#", "bits", "sign", "scale", "frac", "special", "value"}

type table struct {
	title string
	rows  [][]string
}

func newTable(c universal.Codec) table {
	n := c.NBits()
	return table{
		title: c.String(),
		rows: lo.Map(verify.Patterns(n), func(bits uint64, _ int) []string {
			return row(c, n, bits)
		}),
	}
}

func row(c universal.Codec, nbits int, bits uint64) []string {
	d := c.Decode(bits)
	r := []string{
		strconv.FormatUint(bits, 10),
		fmt.Sprintf("%0*b", nbits, bits),
		"", "", "",
		d.Special.String(),
		"NaR",
	}
	if d.Special != universal.NaR {
		r[6] = wire.FormatFloat(c.Float64(bits))
	}
	if !d.IsSpecial() {
		r[2] = lo.Ternary(d.Neg, "-", "+")
		r[3] = strconv.Itoa(d.Scale)
		if d.FracBits > 0 {
			r[4] = fmt.Sprintf("%0*b", d.FracBits, d.Frac)
		}
	}
	return r
}

func render(w io.Writer, format string, tables []table) error {
	switch format {
	case "text":
		return writeText(w, tables)
	case "csv":
		return writeCSV(w, tables)
	case "markdown":
		return writeMarkdown(w, tables)
	case "html":
		return writeHTML(w, tables)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, tables []table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, t.title)
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, r := range t.rows {
			fmt.Fprintln(tw, strings.Join(r, "\t"))
		}
	}
	return tw.Flush()
}

// writeCSV writes a single csv table, the first column names the format.
func writeCSV(w io.Writer, tables []table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"format"}, header...)); err != nil {
		return err
	}
	for _, t := range tables {
		for _, r := range t.rows {
			if err := cw.Write(append([]string{t.title}, r...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeMarkdown(w io.Writer, tables []table) error {
	var b bytes.Buffer
	for i, t := range tables {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "## %s\n\n", t.title)
		markdownRow(&b, header)
		markdownRow(&b, lo.Map(header, func(string, int) string { return "---" }))
		for _, r := range t.rows {
			markdownRow(&b, r)
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

func markdownRow(b *bytes.Buffer, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func writeHTML(w io.Writer, tables []table) error {
	var md bytes.Buffer
	if err := writeMarkdown(&md, tables); err != nil {
		return err
	}
	return goldmark.New(goldmark.WithExtensions(extension.Table)).Convert(md.Bytes(), w)
}
