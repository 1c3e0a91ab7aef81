package main

import (
	"log"

	"github.com/webbmaffian/go-hashset/mmapset"
)

func main() {
	m, err := mmapset.New[uint32, uint32]("test.db", 255, 1024)

	if err != nil {
		log.Fatal(err)
	}

	defer m.Close()

	if err = m.Set(123, 456); err != nil {
		log.Fatal(err)
	}

	// Same key: replaces the value in place.
	if err = m.Set(123, 789); err != nil {
		log.Fatal(err)
	}

	log.Println(m.Len(), "items")

	iter := m.Iter()

	for iter.Next() {
		log.Println(iter.Key(), "=", *iter.Val())
	}

	log.Println("tadaaa")
}
