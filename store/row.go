package store

import "strconv"

// DateColumn is the primary key column. Every row written to the store
// carries it and the value is unique across the file.
const DateColumn = "run_date_utc"

// Row is an ordered column/value mapping for one calendar date. Column
// order is first-set order; setting a column again overwrites the value
// without moving it. An empty string marks a column whose value is
// unavailable — it still claims its spot in the header.
type Row struct {
	keys []string
	vals map[string]string
}

func NewRow() *Row {
	return &Row{vals: make(map[string]string)}
}

func (r *Row) Set(key, val string) {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = val
}

func (r *Row) SetFloat(key string, v float64) {
	r.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// SetFloatPtr writes the float when present and reserves an empty column
// when v is nil.
func (r *Row) SetFloatPtr(key string, v *float64) {
	if v == nil {
		r.Set(key, "")
		return
	}
	r.SetFloat(key, *v)
}

func (r *Row) SetInt(key string, v int) {
	r.Set(key, strconv.Itoa(v))
}

func (r *Row) SetIntPtr(key string, v *int) {
	if v == nil {
		r.Set(key, "")
		return
	}
	r.SetInt(key, *v)
}

func (r *Row) Get(key string) (string, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Keys returns the column names in first-set order.
func (r *Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Record renders the row under the given header. Columns the row never
// set come out empty.
func (r *Row) Record(header []string) []string {
	rec := make([]string, len(header))
	for i, k := range header {
		rec[i] = r.vals[k]
	}
	return rec
}
