package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/docstore"
	"bookshelf/internal/lending"

	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadEnvFiles()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	storeFlags := []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: "db.json", EnvVars: []string{"DATA_FILE"}, Usage: "backing file for the file driver"},
		&cli.StringFlag{Name: "driver", Value: config.DriverFile, EnvVars: []string{"STORE_DRIVER"}, Usage: "document store: file or postgres"},
		&cli.StringFlag{Name: "dsn", EnvVars: []string{"DB_DSN"}, Usage: "postgres connection string"},
		&cli.StringFlag{Name: "key", EnvVars: []string{"DOCUMENT_KEY"}, Usage: "document key for the postgres driver"},
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 10, Usage: "number of books to add"},
		&cli.Int64Flag{Name: "seed", Usage: "random seed (0 picks one)"},
	}

	return &cli.App{
		Name:  "seed",
		Usage: "add sample books to a catalog or lending document",
		Commands: []*cli.Command{
			{
				Name:   "catalog",
				Usage:  "seed the /beoks catalog",
				Flags:  storeFlags,
				Action: seedCatalog,
			},
			{
				Name:   "lending",
				Usage:  "seed the /api/books lending collection",
				Flags:  storeFlags,
				Action: seedLending,
			},
		},
	}
}

func openStore(c *cli.Context, defaultKey string) (docstore.Store, func(), error) {
	key := c.String("key")
	if key == "" {
		key = defaultKey
	}
	return docstore.Open(c.Context, docstore.Options{
		Driver: c.String("driver"),
		Path:   c.String("file"),
		DSN:    c.String("dsn"),
		Key:    key,
	})
}

func newRand(c *cli.Context) *rand.Rand {
	seed := c.Int64("seed")
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}

func seedCatalog(c *cli.Context) error {
	store, closeStore, err := openStore(c, "catalog")
	if err != nil {
		return err
	}
	defer closeStore()

	repo, err := catalog.NewDocumentRepo(c.Context, store)
	if err != nil {
		return err
	}
	svc := catalog.NewService(repo)
	rnd := newRand(c)

	for i := 0; i < c.Int("count"); i++ {
		b, err := svc.Create(c.Context, catalog.NewBook{
			Title:       randomTitle(rnd),
			Category:    catalog.Categories[rnd.Intn(len(catalog.Categories))],
			IsAvailable: rnd.Intn(4) != 0,
			IsVerified:  rnd.Intn(2) == 0,
		})
		if err != nil {
			return fmt.Errorf("create book %d: %w", i+1, err)
		}
		fmt.Fprintf(c.App.Writer, "added #%d %q (%s)\n", b.ID, b.Title, b.Category)
	}
	return nil
}

func seedLending(c *cli.Context) error {
	store, closeStore, err := openStore(c, "lending")
	if err != nil {
		return err
	}
	defer closeStore()

	repo := lending.NewDocumentRepo(store)
	if err := repo.Init(c.Context); err != nil {
		return err
	}
	svc := lending.NewService(repo)
	rnd := newRand(c)

	for i := 0; i < c.Int("count"); i++ {
		in := lending.NewBook{
			Title:       randomTitle(rnd),
			Author:      authors[rnd.Intn(len(authors))],
			Category:    genres[rnd.Intn(len(genres))],
			IsAvailable: true,
		}
		if rnd.Intn(3) == 0 {
			days := float64(1 + rnd.Intn(30))
			verified := true
			in.IsAvailable = false
			in.BorrowedDays = &days
			in.IsVerified = &verified
		}

		b, err := svc.Create(c.Context, in)
		if err != nil {
			return fmt.Errorf("create book %d: %w", i+1, err)
		}
		fmt.Fprintf(c.App.Writer, "added #%d %q by %s\n", b.ID, b.Title, b.Author)
	}
	return nil
}

var (
	genres  = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography"}
	authors = []string{"Ursula K. Le Guin", "Terry Pratchett", "Octavia Butler", "Italo Calvino", "Mary Beard", "Donald Knuth"}
	words   = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Peace", "Science", "Nature", "Technology", "History", "Future", "Past",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

func randomTitle(rnd *rand.Rand) string {
	return fmt.Sprintf("The %s of %s", words[rnd.Intn(len(words))], words[rnd.Intn(len(words))])
}
