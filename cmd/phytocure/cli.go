package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/phytocure"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Lang         phytocure.Language
	Translations phytocure.Translations
	Associations *phytocure.AssociationTable

	Searcher  phytocure.Searcher
	History   phytocure.HistoryService
	Converter phytocure.Converter
	Reports   phytocure.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lang         string `short:"l" default:"en" env:"PHYTOCURE_LANG" help:"Display language (en, es, hi, fr)"`
	Associations string `short:"a" env:"PHYTOCURE_ASSOCIATIONS" type:"path" help:"YAML file with compound-disease associations"`
	Verbose      bool   `short:"v" help:"Log requests and source failures"`

	Search   SearchCmd   `cmd:"" help:"Look up one or more plants by botanical name"`
	History  HistoryCmd  `cmd:"" help:"List previous lookups"`
	Forget   ForgetCmd   `cmd:"" help:"Delete lookup history"`
	Diseases DiseasesCmd `cmd:"" help:"Show the compound-disease association table"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Plants    []string      `arg:"" optional:"" help:"Botanical plant names (prompted for when omitted)"`
	Format    string        `short:"f" enum:"text,html,markdown" default:"text" help:"Output format (text, html, markdown)"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Timeout per request"`
	NoHistory bool          `help:"Do not record this lookup"`
	Output    string        `short:"o" type:"path" help:"Save reports to this directory instead of printing them"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Plant string `short:"p" help:"Only show lookups of this plant"`
	Limit int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// ForgetCmd is the "forget" subcommand.
type ForgetCmd struct {
	Plant string `arg:"" optional:"" help:"Only forget lookups of this plant"`
	Force bool   `help:"Confirm deletion"`
}

// DiseasesCmd is the "diseases" subcommand.
type DiseasesCmd struct {
	YAML bool `name:"yaml" help:"Print as YAML suitable for --associations"`
}
