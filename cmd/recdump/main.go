package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/recgenlabs/recgen/memdb"
	"github.com/recgenlabs/recgen/value"
)

func main() {
	var (
		fixture     = flag.String("fixture", "", "Path to record fixture file (.json/.yaml)")
		recordName  = flag.String("record", "", "Dump a single record by name")
		list        = flag.Bool("list", false, "List record names and exit")
		asJSON      = flag.Bool("json", false, "Dump decoded values as JSON")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *fixture == "" {
		fmt.Fprintln(os.Stderr, "Usage: recdump -fixture <db.json> [-record name] [-list] [-json]")
		fmt.Fprintln(os.Stderr, "       recdump -fixture <db.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			memdb.SetLogger(l)
		}
	}

	db, err := memdb.LoadFixture(*fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*fixture, db); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(db, *recordName, *list, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(db *memdb.DB, recordName string, listOnly, asJSON bool) error {
	if listOnly {
		for _, rh := range db.Records() {
			fmt.Println(value.NewRecord(db, rh).Name())
		}
		return nil
	}

	records := db.Records()
	if recordName != "" {
		rh, ok := db.Lookup(recordName)
		if !ok {
			return fmt.Errorf("record %q not found", recordName)
		}
		records = records[:0]
		records = append(records, rh)
	}

	if asJSON {
		out := make(map[string]map[string]value.Value, len(records))
		for _, rh := range records {
			rec := value.NewRecord(db, rh)
			fields := make(map[string]value.Value, rec.NumFields())
			for it := rec.Fields(); ; {
				name, v, ok := it.Next()
				if !ok {
					break
				}
				fields[name] = v
			}
			out[rec.Name()] = fields
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, rh := range records {
		rec := value.NewRecord(db, rh)
		fmt.Printf("%s (%d fields)\n", rec.Name(), rec.NumFields())
		for it := rec.Fields(); ; {
			name, v, ok := it.Next()
			if !ok {
				break
			}
			fmt.Printf("  %-16s %s\n", name, v)
		}
	}
	return nil
}
