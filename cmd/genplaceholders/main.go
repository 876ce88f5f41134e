package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/herobound/internal/placeholders"
)

func main() {
	out := flag.String("out", "assets", "directory to write sprite sheets into")
	flag.Parse()

	fmt.Println("Herobound Placeholder Sprite Generator")
	fmt.Println("======================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder sheets are ready to use.")
	fmt.Printf("Run herobound -assets %s to see them in action!\n", *out)
}
