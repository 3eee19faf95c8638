package compact

import "math/bits"

// rsaBitVector answers Rank, Select, and Access queries against a
// bitVector in O(1) time using Jacobson rank: a chunk/sub-chunk
// cumulative-popcount index layered over the raw words, plus a pair of
// select maps. Kept close to generic bit-level machinery with no
// DNA-specific content, since the succinct-rank technique itself is
// domain-agnostic.
type rsaBitVector struct {
	bv                bitVector
	totalOnesRank     int
	chunks            []rankChunk
	subChunksPerChunk int
	bitsPerChunk      int
	bitsPerSubChunk   int
	oneSelectMap      map[int]int
	zeroSelectMap     map[int]int
}

type rankChunk struct {
	subChunks          []rankSubChunk
	onesCumulativeRank int
}

type rankSubChunk struct {
	onesCumulativeRank int
}

func newRSABitVector(bv bitVector) rsaBitVector {
	chunks, subChunksPerChunk, bitsPerSubChunk, totalOnesRank := buildJacobsonRank(bv)
	ones, zeros := buildSelectMaps(bv)

	return rsaBitVector{
		bv:                bv,
		totalOnesRank:     totalOnesRank,
		chunks:            chunks,
		subChunksPerChunk: subChunksPerChunk,
		bitsPerChunk:      subChunksPerChunk * bitsPerSubChunk,
		bitsPerSubChunk:   bitsPerSubChunk,
		oneSelectMap:      ones,
		zeroSelectMap:     zeros,
	}
}

// Rank returns the number of bits equal to val in [0, i).
func (rsa rsaBitVector) Rank(val bool, i int) int {
	if i == rsa.bv.len() {
		if val {
			return rsa.totalOnesRank
		}
		return rsa.bv.len() - rsa.totalOnesRank
	}

	chunkPos := i / rsa.bitsPerChunk
	chunk := rsa.chunks[chunkPos]

	subChunkPos := (i % rsa.bitsPerChunk) / rsa.bitsPerSubChunk
	subChunk := chunk.subChunks[subChunkPos]

	bitOffset := i % rsa.bitsPerSubChunk
	bitSet := rsa.bv.getBitSet(chunkPos*rsa.subChunksPerChunk + subChunkPos)
	shiftRightAmount := uint64(rsa.bitsPerSubChunk - bitOffset)

	if val {
		remaining := bitSet >> shiftRightAmount
		return chunk.onesCumulativeRank + subChunk.onesCumulativeRank + bits.OnesCount64(remaining)
	}
	remaining := ^bitSet >> shiftRightAmount
	return (chunkPos*rsa.bitsPerChunk - chunk.onesCumulativeRank) + (subChunkPos*rsa.bitsPerSubChunk - subChunk.onesCumulativeRank) + bits.OnesCount64(remaining)
}

// Select returns the position of the bit equal to val with the given
// 0-indexed rank among bits equal to val, or ok=false if rank is out of
// range.
func (rsa rsaBitVector) Select(val bool, rank int) (i int, ok bool) {
	if val {
		i, ok = rsa.oneSelectMap[rank]
		return i, ok
	}
	i, ok = rsa.zeroSelectMap[rank]
	return i, ok
}

// Access returns the value of the bit at offset i.
func (rsa rsaBitVector) Access(i int) bool {
	return rsa.bv.getBit(i)
}

func buildJacobsonRank(bv bitVector) (chunks []rankChunk, subChunksPerChunk, bitsPerSubChunk, totalRank int) {
	subChunksPerChunk = 4

	chunkCumulativeRank := 0
	subChunkCumulativeRank := 0

	var currSubChunks []rankSubChunk
	for i := range bv.bits {
		if len(currSubChunks) == subChunksPerChunk {
			chunks = append(chunks, rankChunk{
				subChunks:          currSubChunks,
				onesCumulativeRank: chunkCumulativeRank,
			})
			chunkCumulativeRank += subChunkCumulativeRank
			currSubChunks = nil
			subChunkCumulativeRank = 0
		}
		currSubChunks = append(currSubChunks, rankSubChunk{onesCumulativeRank: subChunkCumulativeRank})

		onesCount := bits.OnesCount64(bv.getBitSet(i))
		subChunkCumulativeRank += onesCount
		totalRank += onesCount
	}

	if currSubChunks != nil {
		chunks = append(chunks, rankChunk{
			subChunks:          currSubChunks,
			onesCumulativeRank: chunkCumulativeRank,
		})
	}

	return chunks, subChunksPerChunk, wordSize, totalRank
}

func buildSelectMaps(bv bitVector) (oneSelectMap, zeroSelectMap map[int]int) {
	oneSelectMap = make(map[int]int)
	zeroSelectMap = make(map[int]int)
	oneCount, zeroCount := 0, 0
	for i := 0; i < bv.len(); i++ {
		if bv.getBit(i) {
			oneSelectMap[oneCount] = i
			oneCount++
		} else {
			zeroSelectMap[zeroCount] = i
			zeroCount++
		}
	}
	oneSelectMap[oneCount] = bv.len()
	zeroSelectMap[zeroCount] = bv.len()

	return oneSelectMap, zeroSelectMap
}
