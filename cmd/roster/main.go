package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"chosenoffset.com/herobound/internal/render/sheet"
	"chosenoffset.com/herobound/internal/roster"
	"chosenoffset.com/herobound/internal/rosterstore"
	"chosenoffset.com/herobound/internal/simulation"
)

func main() {
	key := flag.String("key", "", "public key the roster is derived from")
	heroesPath := flag.String("heroes", "", "heroes JSON (array or object of records)")
	count := flag.Int("count", 0, "roster size (0 = config value)")
	dbPath := flag.String("db", "", "SQLite roster store (empty = in memory)")
	journalDir := flag.String("journal", "", "directory for the compressed selection journal")
	pdfPath := flag.String("pdf", "", "write a printable roster sheet to this path")
	outPath := flag.String("out", "", "write the hand-off document here instead of stdout")
	configPath := flag.String("config", "", "YAML or JSON config file")
	flag.Parse()

	if *key == "" {
		log.Fatal("-key is required")
	}

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *count == 0 {
		*count = cfg.Roster.Size
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := openStore(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open roster store: %v", err)
	}
	defer store.Close()

	var h rosterstore.Handoff
	if *heroesPath == "" {
		// Nothing to derive from: look up a roster saved earlier
		h, err = store.Load(ctx, *key)
		if errors.Is(err, rosterstore.ErrNotFound) {
			log.Fatalf("No roster stored for %s; pass -heroes to derive one", *key)
		}
		if err != nil {
			log.Fatalf("Failed to load roster: %v", err)
		}
	} else {
		h, err = derive(ctx, cfg, store, *key, *heroesPath, *count)
		if err != nil {
			log.Fatalf("Failed to derive roster: %v", err)
		}
		if *journalDir != "" {
			if err := journal(*journalDir, h); err != nil {
				log.Printf("Warning: failed to journal roster: %v", err)
			}
		}
	}

	printTable(os.Stderr, h)

	doc, err := rosterstore.EncodeHandoff(h.Key, h.Roster, h.CreatedAt)
	if err != nil {
		log.Fatalf("Failed to encode hand-off document: %v", err)
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, doc, 0644); err != nil {
			log.Fatalf("Failed to write hand-off document: %v", err)
		}
		log.Printf("Wrote hand-off document to %s", *outPath)
	} else {
		fmt.Println(string(doc))
	}

	if *pdfPath != "" {
		pdf, err := sheet.Generate("Hero Roster", h.Key, h.Roster)
		if err != nil {
			log.Fatalf("Failed to render roster sheet: %v", err)
		}
		if err := os.WriteFile(*pdfPath, pdf, 0644); err != nil {
			log.Fatalf("Failed to write roster sheet: %v", err)
		}
		log.Printf("Wrote roster sheet to %s", *pdfPath)
	}
}

func openStore(path string) (rosterstore.Store, error) {
	if path == "" {
		return rosterstore.NewMemoryStore(), nil
	}
	return rosterstore.OpenSQLite(path)
}

// derive selects a roster for key, saves it and reads it back as stored
func derive(ctx context.Context, cfg *simulation.Config, store rosterstore.Store, key, heroesPath string, count int) (rosterstore.Handoff, error) {
	candidates, err := roster.LoadCandidates(heroesPath)
	if err != nil {
		return rosterstore.Handoff{}, err
	}
	log.Printf("Loaded %d heroes (%d distinct names)", candidates.Len(), candidates.DistinctNames())

	sel := roster.NewSelector(candidates, roster.Options{
		IterationCap: cfg.Roster.IterationCap,
		HashBatch:    cfg.Roster.HashBatch,
	})

	start := time.Now()
	heroes, err := sel.Select(ctx, key, count)
	if err != nil {
		return rosterstore.Handoff{}, err
	}
	log.Printf("Derived %d heroes for %s in %v", len(heroes), key, time.Since(start))

	if err := store.Save(ctx, key, heroes); err != nil {
		return rosterstore.Handoff{}, err
	}
	return store.Load(ctx, key)
}

func journal(dir string, h rosterstore.Handoff) error {
	j := rosterstore.NewJournal(dir, "rosters")
	if err := j.Record(h.Key, h.Roster); err != nil {
		j.Close()
		return err
	}
	return j.Close()
}

func printTable(w io.Writer, h rosterstore.Handoff) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(sheet.Columns))
	for i, col := range sheet.Columns {
		headers[i] = col.Header
	}
	fmt.Fprintln(tw, "#\t"+strings.Join(headers, "\t"))

	for i, hero := range h.Roster {
		cells := make([]string, len(sheet.Columns))
		for j, col := range sheet.Columns {
			cells[j] = col.Cell(hero)
		}
		fmt.Fprintf(tw, "%d\t%s\n", i+1, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
