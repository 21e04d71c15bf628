package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/buro710/studio-cms/internal/markdown"
)

func main() {
	var (
		filePath   = flag.String("file", "", "Markdown case study file to preview")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into HTML")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	source, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read markdown file: %v", err)
	}

	meta, body, err := markdown.ParseCaseStudy(source)
	if err != nil {
		log.Fatalf("parse case study: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Title: %s\nSlug: %s\n\n", meta.Title, meta.Slug)

	if encoded, err := json.MarshalIndent(meta, "", "  "); err == nil {
		fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", encoded)
	}

	if *renderHTML {
		html, err := markdown.NewGoldmarkParser().Render(body)
		if err != nil {
			log.Fatalf("render markdown: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", html)
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", body)
	}
}
