// Package report renders clustering results for people and for programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/TrevorS/fcm"
	"gonum.org/v1/gonum/mat"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("report: unknown format %q (want %q or %q)", s, FormatText, FormatJSON)
	}
}

// Options controls what Write includes.
type Options struct {
	Format Format

	// Membership adds the full membership matrix to text output.
	// JSON output always carries it.
	Membership bool
}

type jsonResult struct {
	Clusters             int             `json:"clusters"`
	Centroids            [][]float64     `json:"centroids"`
	Membership           [][]float64     `json:"membership"`
	Labels               []int           `json:"labels"`
	Cost                 float64         `json:"cost"`
	Entropy              float64         `json:"entropy"`
	PartitionCoefficient float64         `json:"partition_coefficient"`
	Iterations           int             `json:"iterations"`
	Status               fcm.Status      `json:"status"`
	Converged            bool            `json:"converged"`
	Candidates           []fcm.Candidate `json:"candidates"`
}

// Write renders res to w.
func Write(w io.Writer, res *fcm.Result, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatText, "":
		return writeText(w, res, opts.Membership)
	default:
		return fmt.Errorf("report: unknown format %q", opts.Format)
	}
}

func writeJSON(w io.Writer, res *fcm.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		Clusters:             res.Clusters,
		Centroids:            res.Centroids,
		Membership:           rows(res.Membership),
		Labels:               res.Labels,
		Cost:                 res.Cost,
		Entropy:              res.Entropy,
		PartitionCoefficient: res.PartitionCoefficient,
		Iterations:           res.Iterations,
		Status:               res.Status,
		Converged:            res.Converged(),
		Candidates:           res.Candidates,
	})
}

func rows(u *mat.Dense) [][]float64 {
	if u == nil {
		return nil
	}
	c, _ := u.Dims()
	out := make([][]float64, c)
	for i := range out {
		out[i] = mat.Row(nil, i, u)
	}
	return out
}

func writeText(w io.Writer, res *fcm.Result, membership bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "C\tENTROPY\tITERATIONS\tSTATUS")
	for _, c := range res.Candidates {
		fmt.Fprintf(tw, "%d\t%.6f\t%d\t%s\n", c.Clusters, c.Entropy, c.Iterations, c.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nproper c: %d\n", res.Clusters)
	fmt.Fprintln(w, "cluster centers:")
	for i, v := range res.Centroids {
		fmt.Fprintf(w, "  %d: (%s)\n", i, joinFloats(v))
	}
	fmt.Fprintf(w, "cost: %g\n", res.Cost)
	fmt.Fprintf(w, "partition entropy: %.6f\n", res.Entropy)
	fmt.Fprintf(w, "partition coefficient: %.6f\n", res.PartitionCoefficient)
	if res.Converged() {
		fmt.Fprintf(w, "converged after %d iterations\n", res.Iterations)
	} else {
		fmt.Fprintf(w, "not converged: stopped after %d iterations\n", res.Iterations)
	}

	if !membership || res.Membership == nil {
		return nil
	}

	fmt.Fprintln(w, "\nmembership:")
	_, n := res.Membership.Dims()
	col := make([]float64, res.Clusters)
	for k := 0; k < n; k++ {
		mat.Col(col, k, res.Membership)
		fmt.Fprintf(w, "  %d [%d]: %s\n", k, res.Labels[k], joinFloats(col))
	}
	return nil
}

func joinFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', 6, 64)
	}
	return strings.Join(parts, ", ")
}
