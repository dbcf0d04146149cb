package registry

import (
	"fmt"
	"sort"
	"strings"
)

var (
	byName      = make(map[string]*Descriptor)
	allDescs    []*Descriptor
	familyOrder = make(map[string]int)
)

// Register adds d to the process-wide registry. Intended to be called
// from a hash family's init() func, so that registration completes
// before any application code can evaluate a hash -- mirroring §5's
// "write-once at startup, read-only thereafter" resource model. The
// descriptor's Name is canonicalised per §6.4: underscores become '-'.
func Register(d *Descriptor) {
	if d.Init != nil && !d.Init() {
		return // unavailable on this host; never registered (§4.8)
	}

	name := strings.ReplaceAll(d.Name, "_", "-")
	d.Name = name

	if _, dup := byName[name]; dup {
		panic(fmt.Sprintf("registry: duplicate hash name %q", name))
	}
	if _, ok := familyOrder[d.Family]; !ok {
		familyOrder[d.Family] = len(familyOrder)
	}

	byName[name] = d
	allDescs = append(allDescs, d)
}

// Lookup returns the descriptor registered under name, or nil.
func Lookup(name string) *Descriptor {
	return byName[name]
}

// ListAll returns every registered descriptor ordered by family name,
// then SortOrder, then Name, per §4.5.
func ListAll() []*Descriptor {
	out := make([]*Descriptor, len(allDescs))
	copy(out, allDescs)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Family != b.Family {
			return familyOrder[a.Family] < familyOrder[b.Family]
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})
	return out
}

func mismatchMsg(d *Descriptor, e Endianness, got, want uint32) string {
	return fmt.Sprintf("%s: endian=%v computed=%#08x expected=%#08x", d.Name, e, got, want)
}
