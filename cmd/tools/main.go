package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"califica-tu-profe/domain/report"
	"califica-tu-profe/moderation"
	"califica-tu-profe/sentiment"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"/tmp/califica-badger"`
	// TOOLS_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"TOOLS_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Config error: ", err)
	}

	db, err := openDB(cfg.BadgerFilepath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	printHeader(cfg, "PENDING REPORTS")
	if err := printPendingReports(db); err != nil {
		log.Fatal(err)
	}

	printHeader(cfg, "LEXICON STATS")
	printLexiconStats()
}

func printHeader(cfg Config, title string) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)
}

func printPendingReports(db *badger.DB) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Type", "Content ID", "Reason", "Reported By", "At", "Status"})
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

	count := 0
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("reports:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var r report.ContentReport
				if err := json.Unmarshal(v, &r); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				if r.Status != report.StatusPending {
					return nil
				}

				displayID := r.ID
				if len(displayID) > 8 {
					displayID = displayID[:8]
				}
				reason := r.Reason
				if len(reason) > 40 {
					reason = reason[:40] + "..."
				}

				table.Append([]string{
					displayID,
					string(r.ContentType),
					r.ContentID,
					reason,
					r.ReportedBy,
					r.ReportedAt.Format("2006-01-02 15:04"),
					string(r.Status),
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	table.Render()
	fmt.Printf("\n%d pending report(s)\n\n", count)
	return nil
}

func printLexiconStats() {
	lexicon := sentiment.DefaultLexicon()
	wordlist := moderation.DefaultWordlist()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"List", "Entries"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	table.Append([]string{"positive words", strconv.Itoa(len(lexicon.Positive))})
	table.Append([]string{"negative words", strconv.Itoa(len(lexicon.Negative))})
	for emotion, words := range lexicon.Emotions {
		table.Append([]string{"emotion: " + emotion, strconv.Itoa(len(words))})
	}
	table.Append([]string{"topic triggers", strconv.Itoa(len(lexicon.Topics))})
	table.Append([]string{"profanity terms", strconv.Itoa(len(wordlist.Profanity))})
	table.Append([]string{"spam indicators", strconv.Itoa(len(wordlist.Spam))})

	table.Render()
	fmt.Println()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// Read-only open fails when the value log needs truncation after a
		// crash; open once in write mode to repair, then retry.
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
