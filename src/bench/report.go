// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Settings records the timing options a report was produced with.
type Settings struct {
	Threads       int    `json:"threads" yaml:"threads"`
	Warmup        int    `json:"warmupIterations" yaml:"warmupIterations"`
	Measurement   int    `json:"measurementIterations" yaml:"measurementIterations"`
	IterationTime string `json:"iterationTime" yaml:"iterationTime"`
}

func settingsOf(o Options) Settings {
	return Settings{
		Threads:       o.Threads,
		Warmup:        o.Warmup,
		Measurement:   o.Measurement,
		IterationTime: o.IterationTime.String(),
	}
}

// Report is the outcome of a run.
type Report struct {
	Environment Environment `json:"environment" yaml:"environment"`
	Settings    Settings    `json:"settings" yaml:"settings"`
	Results     []Result    `json:"results" yaml:"results"`
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes r as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTable writes a short environment summary followed by a markdown table
// with one row per result.
func (r *Report) WriteTable(w io.Writer) error {
	p := message.NewPrinter(language.English)
	env := r.Environment

	var buf strings.Builder
	fmt.Fprintf(&buf, "mockzmq %s, %s %s/%s, %d CPUs, cgo=%t, native=%t\n",
		env.Version, env.GoVersion, env.GOOS, env.GOARCH, env.NumCPU, env.Cgo, env.NativeMemory)
	fmt.Fprintf(&buf, "%d thread(s), %d warmup + %d measurement iterations of %s\n\n",
		r.Settings.Threads, r.Settings.Warmup, r.Settings.Measurement, r.Settings.IterationTime)

	if len(r.Results) == 0 {
		buf.WriteString("No results\n")
		_, err := io.WriteString(w, buf.String())
		return err
	}

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
	)
	table.Header([]string{"Scenario", "Backend", "Size", "ns/op", "± ns", "MB/s", "allocs/op", "B/op"})

	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{
			res.Scenario,
			res.Backend,
			p.Sprintf("%d", res.Size),
			p.Sprintf("%.1f", res.NsPerOp),
			p.Sprintf("%.1f", res.StdDevNs),
			p.Sprintf("%.1f", res.MBPerSec),
			p.Sprintf("%.2f", res.AllocsPerOp),
			p.Sprintf("%.0f", res.BytesPerOp),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := io.WriteString(w, buf.String())
	return err
}
