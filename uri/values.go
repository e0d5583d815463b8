package uri

import "strings"

// Values maps a query key to the list of its values.
// Keys are case-sensitive, keys and values are percent-decoded.
type Values map[string][]string

// Get returns values associated with the given key.
func (vals Values) Get(key string) []string { return vals[key] }

// First returns the first value of the key.
func (vals Values) First(key string) (string, bool) {
	v := vals[key]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Has checks whether a given key is in the list.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

func (vals Values) add(key, value string) {
	vals[key] = append(vals[key], value)
}

// QueryValues splits the query into "&" separated "key=value" pairs and decodes them.
// A pair without "=" yields an empty value. Empty pairs are skipped.
// It returns nil if the URI has no query.
func (u *URI) QueryValues() Values {
	if u == nil || !u.HasQuery {
		return nil
	}
	vals := make(Values)
	for pair := range strings.SplitSeq(u.Query, "&") {
		if pair == "" {
			continue
		}
		key, val, _ := strings.Cut(pair, "=")
		vals.add(Decode(key), Decode(val))
	}
	return vals
}
