package models

// Row is one table line keyed by column key. Missing keys read as Null.
type Row map[string]Value

// Get returns the value stored under key, or Null.
func (r Row) Get(key string) Value {
	if r == nil {
		return Null()
	}
	return r[key]
}
