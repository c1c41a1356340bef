// Command dict is an interactive DICT protocol client.
//
// Usage:
//
//	dict -addr dict.org
//
// Commands: define <word> [db], match <word> <strategy> [db], db, strat,
// stats, help, quit. Quote multi-word phrases: define "ice cream".
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ergochat/readline"
	"golang.org/x/term"

	dict "github.com/attiln/godict"
	"github.com/attiln/godict/protocol"
)

const (
	historyFileName = ".dict_history"
	historySize     = 500
)

func main() {
	addr := flag.String("addr", "dict.org", "DICT server address (host or host:port)")
	timeout := flag.Duration("timeout", 10*time.Second, "connect timeout")
	flag.Parse()

	conn, err := dict.DialTimeout(*addr, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dict: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("connected to %s\n", conn.Addr())

	ed := newLineEditor()
	defer ed.Close()

	for {
		line, err := ed.GetLine("dict> ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, readline.ErrInterrupt) {
				fmt.Fprintf(os.Stderr, "dict: %v\n", err)
			}
			return
		}

		// Quote-aware split so phrases travel as one argument.
		parts := protocol.SplitAtoms(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "define", "d":
			if len(parts) < 2 || len(parts) > 3 {
				fmt.Println("usage: define <word> [db]")
				continue
			}
			db := dict.AllDatabases
			if len(parts) == 3 {
				db = parts[2]
			}
			handleDefine(conn, parts[1], db)

		case "match", "m":
			if len(parts) < 3 || len(parts) > 4 {
				fmt.Println("usage: match <word> <strategy> [db]")
				continue
			}
			db := dict.AllDatabases
			if len(parts) == 4 {
				db = parts[3]
			}
			handleMatch(conn, parts[1], parts[2], db)

		case "db", "databases":
			handleDatabases(conn)

		case "strat", "strategies":
			handleStrategies(conn)

		case "stats":
			handleStats(conn)

		case "help":
			printHelp()

		case "quit", "exit", "q":
			return

		default:
			fmt.Printf("unknown command %q, try 'help'\n", parts[0])
		}
	}
}

func handleDefine(conn *dict.Conn, word, db string) {
	defs, err := conn.Define(word, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "define failed: %v\n", err)
		return
	}
	if len(defs) == 0 {
		fmt.Printf("no definitions for %q\n", word)
		return
	}
	for _, def := range defs {
		fmt.Printf("--- %s (%s: %s)\n", def.Word, def.Database.Name, def.Database.Description)
		fmt.Print(strings.ReplaceAll(def.Text, "\r\n", "\n"))
	}
}

func handleMatch(conn *dict.Conn, word, strategy, db string) {
	words, err := conn.Match(word, strategy, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "match failed: %v\n", err)
		return
	}
	if len(words) == 0 {
		fmt.Printf("no matches for %q\n", word)
		return
	}
	for _, w := range words {
		fmt.Println(w)
	}
}

func handleDatabases(conn *dict.Conn) {
	dbs, err := conn.Databases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "show db failed: %v\n", err)
		return
	}
	for _, db := range dbs {
		fmt.Printf("%-16s %s\n", db.Name, db.Description)
	}
}

func handleStrategies(conn *dict.Conn) {
	strats, err := conn.Strategies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "show strat failed: %v\n", err)
		return
	}
	for _, s := range strats {
		fmt.Printf("%-16s %s\n", s.Name, s.Description)
	}
}

func handleStats(conn *dict.Conn) {
	s := conn.Stats()
	fmt.Printf("defines=%d definitions=%d matches=%d matchWords=%d dbLists=%d stratLists=%d errors=%d\n",
		s.Defines, s.Definitions, s.Matches, s.MatchWords, s.DatabaseLists, s.StrategyLists, s.Errors)
}

func printHelp() {
	fmt.Println("commands:")
	fmt.Println("  define <word> [db]            - look up definitions (db defaults to *)")
	fmt.Println("  match <word> <strategy> [db]  - find matching words")
	fmt.Println("  db                            - list databases")
	fmt.Println("  strat                         - list matching strategies")
	fmt.Println("  stats                         - show client counters")
	fmt.Println("  quit                          - exit")
}

// lineEditor reads input lines, using readline with persistent history
// when stdin is a TTY and a plain scanner when input is piped.
type lineEditor struct {
	rl      *readline.Instance
	scanner *bufio.Scanner
}

func newLineEditor() *lineEditor {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &lineEditor{scanner: bufio.NewScanner(os.Stdin)}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:  filepath.Join(home, historyFileName),
		HistoryLimit: historySize,
	})
	if err != nil {
		// Terminal without the needed capabilities: degrade to a scanner.
		return &lineEditor{scanner: bufio.NewScanner(os.Stdin)}
	}
	return &lineEditor{rl: rl}
}

func (e *lineEditor) GetLine(prompt string) (string, error) {
	if e.rl != nil {
		e.rl.SetPrompt(prompt)
		return e.rl.Readline()
	}

	fmt.Print(prompt)
	if !e.scanner.Scan() {
		if err := e.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return e.scanner.Text(), nil
}

func (e *lineEditor) Close() {
	if e.rl != nil {
		e.rl.Close()
	}
}
