package grouping

import "sort"

// BuildIndex inverts a grouping into a node-name lookup table. Groups are
// visited in decode order; when a name appears under several codes the
// last one visited wins. Empty name lists contribute nothing.
func BuildIndex(g *Grouping) CodeIndex {
	idx := make(CodeIndex)
	for _, grp := range g.Groups {
		for _, name := range grp.Names {
			idx[name] = grp.Code
		}
	}
	return idx
}

// Dupe records a node name filed under more than one code. Only the last
// code in Codes ends up in the index, so everything before it is a likely
// data-quality problem in the grouping file.
type Dupe struct {
	Name  string
	Codes []string
}

// Dupes lists duplicate node-to-code assignments in name order.
func Dupes(g *Grouping) []Dupe {
	codesFor := make(map[string][]string)
	for _, grp := range g.Groups {
		for _, name := range grp.Names {
			codesFor[name] = append(codesFor[name], grp.Code)
		}
	}

	var dupes []Dupe
	for name, codes := range codesFor {
		if len(codes) > 1 {
			dupes = append(dupes, Dupe{Name: name, Codes: codes})
		}
	}
	sort.Slice(dupes, func(i, j int) bool { return dupes[i].Name < dupes[j].Name })
	return dupes
}
