package scene

import "sync/atomic"

// ObjectID is the stable handle an object keeps for its whole lifetime.
// GPU resource caches key on it, so IDs are never reused.
type ObjectID uint64

var objectIDSeq uint64

// NextObjectID returns a globally unique object ID.
func NextObjectID() ObjectID {
	return ObjectID(atomic.AddUint64(&objectIDSeq, 1))
}
