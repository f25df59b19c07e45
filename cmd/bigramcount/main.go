package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/future-architect/bigramcount"
	_ "github.com/future-architect/bigramcount/nlp/word"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	inputFile = kingpin.Arg("INPUT", "Input text file").Required().String()
)

func main() {
	kingpin.Parse()

	color.Blue("Generating bigram histogram for %s", *inputFile)

	histogram, err := bigramcount.CountFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "count error: %s\n", err.Error())
		os.Exit(1)
	}

	for _, entry := range histogram.Entries() {
		fmt.Printf("•\t\"%s\" %d\n", entry.Bigram, entry.Count)
	}
	fmt.Printf("Total no. of bigrams generated: %d\n", histogram.Total())
}
