package storage

// Adapter is a durable key -> string mapping. Both backends share it:
// a single-file JSON store and a SQLite store. There are no
// transactions and no schema; structured values are JSON-encoded
// strings. A crash between two Set calls can leave the store partially
// updated, which hydration tolerates by defaulting every key
// independently.
type Adapter interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values. Get returns ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error

	// Clear erases every key.
	Clear() error

	// Utils
	Path() string
}
