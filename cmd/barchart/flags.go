package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	barchart "github.com/mskpairprogrammer/barchart"
)

const author = "@mskpairprogrammer"

func (c *CLI) banner() {
	fmt.Println("\nbarchart", barchart.Version, "by", author)
}

func (c *CLI) usage() {
	w := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)

	fmt.Fprintf(w, "Usage:\t%s [options] (-t <symbol> | -l <symbols.txt>)\n", os.Args[0])

	fmt.Fprintf(w, "\nINPUT:\n")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-t", "--symbol", "single stock symbol to capture")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-l", "--list", "input file with symbols (one per line)")

	fmt.Fprintf(w, "\nCONFIGURATIONS:\n")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-c", "--config", "YAML config file (env and .env still apply)")
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: barchart)\n", "-k", "--keyword", "browser window title keyword")
	fmt.Fprintf(w, "\t%s, %s\t%s\t(Default: false)\n", "-ad", "--avoid-duplicates", "skip screenshots similar to earlier ones")
	fmt.Fprintf(w, "\t%s, %s\t%s\t(Default: 96)\n", "-dt", "--duplicate-threshold", "similarity score treated as duplicate (1-100)")

	fmt.Fprintf(w, "\nOUTPUT:\n")
	fmt.Fprintf(w, "\t%s,  %s\t%s\t(Default: screenshots)\n", "-o", "--outfolder", "save images to given folder")
	fmt.Fprintf(w, "\t%s, %s\t%s\t(Default: false)\n", "-nc", "--no-caption", "do not imprint a caption on images")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-s", "--silence", "silence output")
	fmt.Fprintf(w, "\t%s,  %s\t%s\n", "-v", "--verbose", "verbose output")
	fmt.Fprintf(w, "\t%s   %s\t%s\n", "  ", "--version", "display version")

	w.Flush()
	fmt.Println("")
}

// parseFlags parses the command line options into the CLI struct.
func (c *CLI) parseFlags() {
	// INPUT
	flag.StringVar(&c.Symbol, "symbol", "", "")
	flag.StringVar(&c.Symbol, "t", "", "")
	flag.StringVar(&c.Infile, "list", "", "")
	flag.StringVar(&c.Infile, "l", "", "")

	// CONFIGURATIONS
	flag.StringVar(&c.ConfigPath, "config", "", "")
	flag.StringVar(&c.ConfigPath, "c", "", "")
	flag.StringVar(&c.Keyword, "keyword", "", "")
	flag.StringVar(&c.Keyword, "k", "", "")
	flag.BoolVar(&c.AvoidDuplicates, "avoid-duplicates", false, "")
	flag.BoolVar(&c.AvoidDuplicates, "ad", false, "")
	flag.IntVar(&c.DuplicateThreshold, "duplicate-threshold", 0, "")
	flag.IntVar(&c.DuplicateThreshold, "dt", 0, "")

	// OUTPUT
	flag.StringVar(&c.Outfolder, "outfolder", "", "")
	flag.StringVar(&c.Outfolder, "o", "", "")
	flag.BoolVar(&c.NoCaption, "no-caption", false, "")
	flag.BoolVar(&c.NoCaption, "nc", false, "")
	flag.BoolVar(&c.Silence, "silence", false, "")
	flag.BoolVar(&c.Silence, "s", false, "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
	flag.BoolVar(&c.Verbose, "v", false, "")
	flag.BoolVar(&c.Help, "help", false, "")
	flag.BoolVar(&c.Help, "h", false, "")
	flag.BoolVar(&c.Version, "version", false, "")

	flag.Usage = func() {
		c.banner()
		c.usage()
	}
	flag.Parse()
}
