package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/curator/core"
)

// Key prefixes for different data types
const (
	sourceRecordPrefix     = "srcrec"
	sourceRecordIDSeq      = "srcrecseq"
	collectionRecordPrefix = "colrec"
	collectionRecordIDSeq  = "colrecseq"
	collectionLinkPrefix   = "collnk"
)

// makeSourceKey generates a key for a source record by ID.
func makeSourceKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", sourceRecordPrefix, id))
}

// makeCollectionKey generates a key for a collection by ID.
func makeCollectionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", collectionRecordPrefix, id))
}

// makeCollectionLinkKey generates a composite key for the collection-source
// link index. Format: prefix:collectionID:sourceID
func makeCollectionLinkKey(collectionID, sourceID core.ID) []byte {
	prefix := collectionLinkPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for collectionID + 8 bytes for sourceID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(collectionID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(sourceID))
	return buf
}

// makePartialCollectionLinkKey generates a partial key for listing the
// sources of one collection. Format: prefix:collectionID
func makePartialCollectionLinkKey(collectionID core.ID) []byte {
	prefix := collectionLinkPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(collectionID))
	return buf
}
