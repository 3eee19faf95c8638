package compact

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// charInfo records a symbol's position in the alphabet this wavelet tree
// was built over, in sorted byte order.
type charInfo struct {
	char byte
	code int
}

// waveletNode is one level of the binary wavelet tree: a bitvector
// recording, for each position in this node's slice of the original
// string, whether that character belongs to the lower or upper half of
// the alphabet still live at this depth. Leaves (a single remaining
// symbol) carry no bitvector.
type waveletNode struct {
	alpha     []charInfo
	leftChars map[byte]bool
	bits      *rsaBitVector
	left      *waveletNode
	right     *waveletNode
}

func (n *waveletNode) isLeaf() bool {
	return n.bits == nil
}

// waveletTree is a binary wavelet tree supporting Access/Rank/Select over
// the distinct bytes of the string it was built from.
type waveletTree struct {
	root   *waveletNode
	alpha  []charInfo
	length int
}

// newWaveletTreeFromString builds a waveletTree over s's distinct bytes,
// in ascending byte order. s must not be empty.
func newWaveletTreeFromString(s string) (waveletTree, error) {
	if len(s) == 0 {
		return waveletTree{}, errors.New("compact: cannot build a wavelet tree over an empty string")
	}

	seen := make(map[byte]bool)
	for i := 0; i < len(s); i++ {
		seen[s[i]] = true
	}
	chars := make([]byte, 0, len(seen))
	for c := range seen {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	alpha := make([]charInfo, len(chars))
	for i, c := range chars {
		alpha[i] = charInfo{char: c, code: i}
	}

	root := buildWaveletTree(0, alpha, []byte(s))
	return waveletTree{root: root, alpha: alpha, length: len(s)}, nil
}

// buildWaveletTree recursively splits alpha in half by code and routes
// data into a bitvector recording which half each byte fell into. An
// empty alpha yields a nil node (only reachable via a malformed/empty
// top-level alphabet); a single-symbol alpha yields a leaf.
func buildWaveletTree(depth int, alpha []charInfo, data []byte) *waveletNode {
	if len(alpha) == 0 {
		return nil
	}
	if len(alpha) == 1 {
		return &waveletNode{alpha: alpha}
	}

	mid := len(alpha) / 2
	low, high := alpha[:mid], alpha[mid:]
	lowSet := make(map[byte]bool, len(low))
	for _, ci := range low {
		lowSet[ci.char] = true
	}

	bv := newBitVector(len(data))
	var lowData, highData []byte
	for i, b := range data {
		if lowSet[b] {
			lowData = append(lowData, b)
		} else {
			bv.setBit(i, true)
			highData = append(highData, b)
		}
	}
	rsa := newRSABitVector(bv)

	return &waveletNode{
		alpha:     alpha,
		leftChars: lowSet,
		bits:      &rsa,
		left:      buildWaveletTree(depth+1, low, lowData),
		right:     buildWaveletTree(depth+1, high, highData),
	}
}

// lookupCharInfo returns c's entry in the tree's alphabet, panicking if c
// was never part of the string the tree was built from.
func (wt waveletTree) lookupCharInfo(c byte) charInfo {
	for _, ci := range wt.alpha {
		if ci.char == c {
			return ci
		}
	}
	panic(fmt.Sprintf("compact: character %q is not in the wavelet tree's alphabet", c))
}

// Access returns the byte at position pos.
func (wt waveletTree) Access(pos int) byte {
	node := wt.root
	for !node.isLeaf() {
		if node.bits.Access(pos) {
			pos = node.bits.Rank(true, pos)
			node = node.right
		} else {
			pos = node.bits.Rank(false, pos)
			node = node.left
		}
	}
	return node.alpha[0].char
}

// Rank returns the number of occurrences of c in [0, pos).
func (wt waveletTree) Rank(c byte, pos int) int {
	wt.lookupCharInfo(c)
	node := wt.root
	for !node.isLeaf() {
		if node.leftChars[c] {
			pos = node.bits.Rank(false, pos)
			node = node.left
		} else {
			pos = node.bits.Rank(true, pos)
			node = node.right
		}
	}
	return pos
}

// Select returns the position of the rank-th (0-indexed) occurrence of c.
func (wt waveletTree) Select(c byte, rank int) int {
	wt.lookupCharInfo(c)

	type step struct {
		node *waveletNode
		left bool
	}
	var path []step

	node := wt.root
	for !node.isLeaf() {
		if node.leftChars[c] {
			path = append(path, step{node: node, left: true})
			node = node.left
		} else {
			path = append(path, step{node: node, left: false})
			node = node.right
		}
	}

	pos := rank
	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		p, ok := s.node.bits.Select(!s.left, pos)
		if !ok {
			return -1
		}
		pos = p
	}
	return pos
}

// reconstruct rebuilds the original string this tree was built from, by
// repeated Access. Used only to validate the tree is well formed.
func (wt waveletTree) reconstruct() string {
	var b strings.Builder
	b.Grow(wt.length)
	for i := 0; i < wt.length; i++ {
		b.WriteByte(wt.Access(i))
	}
	return b.String()
}
