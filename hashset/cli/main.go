package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/webbmaffian/go-hashset/hashset"
)

// Loads a word list into a hash set and reports the chain length
// distribution, i.e. how many buckets hold 0, 1, 2, ... words. A uniform
// hasher should give mostly short chains and few empty buckets.

const (
	defaultWordList = "/usr/share/dict/words"
	defaultBuckets  = 80000
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	path := defaultWordList
	buckets := defaultBuckets

	args := os.Args[1:]

	if len(args) > 0 {
		path = args[0]
	}

	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])

		if err != nil {
			log.Println("invalid bucket count:", args[1])
			return
		}

		buckets = n
	}

	words, err := hashset.New(buckets, hashset.StringHash, hashset.CompareOrdered[string])

	if err != nil {
		log.Println(err)
		return
	}

	file, err := os.Open(path)

	if err != nil {
		log.Println(err)
		return
	}

	defer file.Close()

	var inserted int64
	done := make(chan struct{})

	go func() {
		defer close(done)

		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			words.Add(scanner.Text())
			atomic.AddInt64(&inserted, 1)
		}

		if err := scanner.Err(); err != nil {
			log.Println(err)
		}
	}()

	if isatty.IsTerminal(os.Stdout.Fd()) {
		render(ctx, done, &inserted)
	}

	select {
	case <-ctx.Done():
		return
	case <-done:
	}

	report(words)
}

// render shows live progress until loading is done or the context is
// cancelled.
func render(ctx context.Context, done <-chan struct{}, inserted *int64) {
	ticker := time.NewTicker(time.Millisecond * 100)
	defer ticker.Stop()

	writer := uilive.New()
	count := writer.Newline()

	writer.Start()
	defer writer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			fmt.Fprintf(count, "Words inserted: %d\n", atomic.LoadInt64(inserted))
			return
		case <-ticker.C:
			fmt.Fprintf(count, "Words inserted: %d\n", atomic.LoadInt64(inserted))
		}
	}
}

func report(words *hashset.Set[string]) {
	lens := make([]int, words.Buckets())

	for _, w := range words.Elems() {
		lens[hashset.StringHash(w)%uint64(len(lens))]++
	}

	// Chain length -> number of buckets with that length, in a set of its
	// own.
	type sizeCount struct {
		size  int
		count int
	}

	counts, err := hashset.New(50, func(sc *sizeCount) uint64 {
		return uint64(sc.size)
	}, func(a, b *sizeCount) int {
		return hashset.CompareOrdered(a.size, b.size)
	})

	if err != nil {
		log.Println(err)
		return
	}

	for _, n := range lens {
		if sc, ok := counts.Get(&sizeCount{size: n}); ok {
			sc.count++
		} else {
			counts.Add(&sizeCount{size: n, count: 1})
		}
	}

	sizes := counts.Elems()

	sort.Slice(sizes, func(i, j int) bool {
		return sizes[i].size < sizes[j].size
	})

	fmt.Println("chain length\tbuckets")

	for _, sc := range sizes {
		fmt.Printf("%d\t%d\n", sc.size, sc.count)
	}

	fmt.Printf("%d distinct words in %d buckets\n", words.Len(), words.Buckets())
}
