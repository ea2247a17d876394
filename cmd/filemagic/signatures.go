package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gobeaver/filemagic/magic"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var signaturesFormat string

var signaturesCmd = &cobra.Command{
	Use:   "signatures",
	Short: "List the built-in signature table",
	Long:  "Display every built-in rule in match order, with its offsets and read budget",
	RunE:  runSignatures,
}

func init() {
	signaturesCmd.Flags().StringVar(&signaturesFormat, "format", "table", "Output format: table, json, yaml, toml")
}

// signatureEntry is the serialized form of a rule
type signatureEntry struct {
	Order        int      `json:"order" yaml:"order" toml:"order"`
	Kind         string   `json:"kind" yaml:"kind" toml:"kind"`
	MIME         string   `json:"mime" yaml:"mime" toml:"mime"`
	Extension    string   `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension,omitempty"`
	Signatures   []string `json:"signatures" yaml:"signatures" toml:"signatures"`
	Offsets      []int    `json:"offsets" yaml:"offsets" toml:"offsets"`
	MaxBytesRead int      `json:"max_bytes_read" yaml:"max_bytes_read" toml:"max_bytes_read"`
	Custom       bool     `json:"custom,omitempty" yaml:"custom,omitempty" toml:"custom,omitempty"`
}

// signatureFile is the TOML document root; TOML has no top-level arrays
type signatureFile struct {
	Signatures []signatureEntry `toml:"signature"`
}

func runSignatures(cmd *cobra.Command, args []string) error {
	entries := signatureEntries(magic.Signatures())

	switch signaturesFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(entries); err != nil {
			return err
		}
		return encoder.Close()
	case "toml":
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(signatureFile{Signatures: entries})
	case "table":
		return outputSignaturesTable(cmd, entries)
	default:
		return fmt.Errorf("unknown output format: %s", signaturesFormat)
	}
}

func signatureEntries(rules []magic.Rule) []signatureEntry {
	entries := make([]signatureEntry, 0, len(rules))
	for i, r := range rules {
		sigs := make([]string, 0, len(r.Signatures))
		for _, s := range r.Signatures {
			sigs = append(sigs, hex.EncodeToString(s))
		}
		offsets := r.Offsets
		if offsets == nil {
			offsets = []int{}
		}
		entries = append(entries, signatureEntry{
			Order:        i + 1,
			Kind:         r.Kind.String(),
			MIME:         r.Kind.MIME(),
			Extension:    r.Kind.Extension(),
			Signatures:   sigs,
			Offsets:      offsets,
			MaxBytesRead: r.MaxBytesRead,
			Custom:       r.Match != nil,
		})
	}
	return entries
}

func outputSignaturesTable(cmd *cobra.Command, entries []signatureEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "#\tKind\tMIME\tOffsets\tBudget\tSignatures\n")
	fmt.Fprintf(w, "-\t----\t----\t-------\t------\t----------\n")

	for _, e := range entries {
		offsets := make([]string, len(e.Offsets))
		for i, o := range e.Offsets {
			offsets[i] = fmt.Sprint(o)
		}
		where := strings.Join(offsets, ",")
		if e.Custom {
			where = "custom"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			e.Order, e.Kind, e.MIME, where, e.MaxBytesRead, strings.Join(e.Signatures, " | "))
	}

	return nil
}
