package mmapset

import "github.com/webbmaffian/go-hashset/internal/utils"

// link is one chain cell in the file: the next-cell byte offset (0 ends
// the chain), the key and the value.
type link[K utils.Unsigned, V any] struct {
	NextIdx K
	Key     K
	Val     V
}
