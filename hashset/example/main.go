package main

import (
	"log"

	"github.com/webbmaffian/go-hashset/hashset"
)

// A dictionary of words and their definitions. The word is the key part,
// the definition the value part.
type Word struct {
	Word       string
	Definition string
}

func main() {
	dict, err := hashset.New(10, func(w *Word) uint64 {
		return hashset.StringHash(w.Word)
	}, func(a, b *Word) int {
		return hashset.CompareOrdered(a.Word, b.Word)
	})

	if err != nil {
		log.Fatal(err)
	}

	dict.Add(&Word{Word: "cat", Definition: "A fine animal indeed"})
	dict.Add(&Word{Word: "dog", Definition: "A friend who likes to play frisbee"})

	if w, ok := dict.Get(&Word{Word: "cat"}); ok {
		log.Println("cat:", w.Definition)
	}

	// Same key, new definition: replaces in place.
	dict.Add(&Word{Word: "cat", Definition: "A nice friend who loves food"})

	log.Println(dict.Len(), "words")

	iter := dict.Iter()

	for iter.Next() {
		w := iter.Elem()
		log.Println(w.Word, "=", w.Definition)
	}

	log.Println("tadaaa")
}
