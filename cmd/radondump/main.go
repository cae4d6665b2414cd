package main

import (
	"flag"
	"fmt"
	"os"

	"radon/pkg/html"
)

func main() {
	tokens := flag.Bool("tokens", false, "print the token stream")
	tree := flag.Bool("tree", false, "print the document tree")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-tokens] [-tree] <input.html>\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	content, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	if !*tokens && !*tree {
		*tree = true
	}

	if *tokens {
		tokenizer := html.NewTokenizer(string(content))
		for {
			token := tokenizer.NextToken()
			if token.Type == html.TokenEOF {
				break
			}
			printToken(token)
		}
	}
	if *tree {
		doc := html.Parse(string(content))
		fmt.Print(doc.DumpTree())
	}
}

func printToken(token html.Token) {
	switch token.Type {
	case html.TokenStartTag:
		suffix := ""
		if token.SelfClosing {
			suffix = " self-closing"
		}
		if len(token.Attributes) > 0 {
			fmt.Printf("start   %s %v%s\n", token.TagName, token.Attributes, suffix)
		} else {
			fmt.Printf("start   %s%s\n", token.TagName, suffix)
		}
	case html.TokenEndTag:
		fmt.Printf("end     %s\n", token.TagName)
	case html.TokenText:
		fmt.Printf("text    %q\n", token.Text)
	case html.TokenComment:
		fmt.Println("comment")
	case html.TokenDoctype:
		fmt.Println("doctype")
	}
}
