package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// storedMessage mirrors the on-disk JSON written by the message
// repository, decoded leniently so the tool survives schema drift.
type storedMessage struct {
	ID        string              `json:"id"`
	Room      string              `json:"room"`
	Sender    string              `json:"sender"`
	Content   string              `json:"content"`
	Reactions map[string][]string `json:"reactions,omitempty"`
	At        int64               `json:"at"`
	EditedAt  *int64              `json:"edited_at,omitempty"`
}

func main() {
	dbPath := flag.String("db", "/tmp/chaoshub/badger", "Path to badger DB")
	// "msg:" by default so the secondary idx: keys stay out of the way
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Room", "Sender", "At", "Edited", "Reactions", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// Skip the secondary index entries, their values are keys
			if strings.HasPrefix(string(item.Key()), "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var stored storedMessage
				if err := json.Unmarshal(v, &stored); err != nil {
					// Log and keep scanning instead of stopping the script
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				table.Append(row(string(item.Key()), stored))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
}

func row(key string, stored storedMessage) []string {
	edited := ""
	if stored.EditedAt != nil {
		edited = time.Unix(0, *stored.EditedAt).UTC().Format(time.RFC3339)
	}
	var reactions []string
	for emoji, ids := range stored.Reactions {
		reactions = append(reactions, fmt.Sprintf("%s x%d", emoji, len(ids)))
	}
	return []string{
		key,
		stored.Room,
		stored.Sender,
		time.Unix(0, stored.At).UTC().Format(time.RFC3339),
		edited,
		strings.Join(reactions, " "),
		truncate(stored.Content, 60),
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR)
	return badger.Open(opts)
}
