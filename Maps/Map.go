package Maps

// Bounded is a fixed-capacity map from string keys to V.
type Bounded[V any] interface {
	// Set stores val under key. Returns false, changing nothing, when the map is full.
	Set(key string, val V) bool
	// Get the value stored under key. The bool is false if key is absent.
	Get(key string) (V, bool)
	// Delete key and return the value it held. The bool is false if key was absent.
	Delete(key string) (V, bool)
	// Load is Len()/capacity, in [0,1].
	Load() float64
	Len() int
}
