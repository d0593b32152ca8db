package catalog

// InheritMap answers inheritance queries over the types of a catalog.
type InheritMap struct {
	bases map[string][]string
}

func NewInheritMap(c *Catalog) *InheritMap {
	bases := make(map[string][]string, len(c.Types))
	for _, t := range c.Types {
		bases[t.FullName] = t.BaseTypes
	}
	return &InheritMap{bases: bases}
}

// Inherits reports whether base appears in the transitive base chain of t.
// Bases that are not part of the catalog are leaves.
func (m *InheritMap) Inherits(t *Type, base string) bool {
	visited := map[string]bool{t.FullName: true}
	queue := append([]string(nil), t.BaseTypes...)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if name == base {
			return true
		}
		if visited[name] {
			continue
		}
		visited[name] = true
		queue = append(queue, m.bases[name]...)
	}
	return false
}
