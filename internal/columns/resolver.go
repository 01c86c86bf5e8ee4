// Package columns resolves a user-supplied column spec, either a
// numeric index or a header name, against the header row of a file.
package columns

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/armon/go-radix"
)

// Resolver maps column specs to 0-based indices. Header names are
// matched case-insensitively, first exactly and then by unique prefix.
type Resolver struct {
	header []string
	tree   *radix.Tree
}

func NewResolver(header []string) *Resolver {
	tree := radix.New()
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		// First column wins for duplicate header names.
		if _, ok := tree.Get(key); !ok {
			tree.Insert(key, i)
		}
	}
	return &Resolver{header: header, tree: tree}
}

// Resolve turns spec into a column index. A spec consisting of digits is
// taken as a 0-based index and checked against the header width.
func (r *Resolver) Resolve(spec string) (int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, fmt.Errorf("no column given")
	}

	if i, err := strconv.Atoi(spec); err == nil {
		if i < 0 || i >= len(r.header) {
			return 0, fmt.Errorf("column index %d is out of range: the file has %d columns (indices 0-%d)",
				i, len(r.header), len(r.header)-1)
		}
		return i, nil
	}

	key := strings.ToLower(spec)
	if v, ok := r.tree.Get(key); ok {
		return v.(int), nil
	}

	var matches []string
	r.tree.WalkPrefix(key, func(name string, v interface{}) bool {
		matches = append(matches, name)
		return false
	})

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("no column named %q: columns are %s", spec, strings.Join(r.header, ", "))
	case 1:
		v, _ := r.tree.Get(matches[0])
		return v.(int), nil
	default:
		return 0, fmt.Errorf("column %q is ambiguous: matches %s", spec, strings.Join(matches, ", "))
	}
}
