package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"bookshelf/internal/book"
)

func main() {
	count := flag.Int("count", 25, "number of books to generate")
	out := flag.String("out", "books.json", "output snapshot path")
	flag.Parse()

	log.Printf("Generating %d books...", *count)

	books := make([]book.Book, 0, *count)
	for i := 0; i < *count; i++ {
		word := randomWord()
		books = append(books, book.Book{
			ID:            strconv.Itoa(i + 1),
			Title:         fmt.Sprintf("Book Title %d - %s", i+1, word),
			Author:        fmt.Sprintf("%s %s", randomWord(), randomWord()),
			Description:   fmt.Sprintf("This is a book about %s. It explores the fundamental concepts and provides insights into the subject matter.", word),
			PublishedYear: 1950 + rand.Intn(75),
		})
	}

	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode books: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Wrote %d books to %s", len(books), *out)
}

func randomWord() string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rand.Intn(len(words))]
}
