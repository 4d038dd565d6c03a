package grouping

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

var (
	// ErrInvalidGroupingFile means the grouping file is missing, unreadable,
	// or not valid JSON. Always fatal.
	ErrInvalidGroupingFile = errors.New("invalid grouping file")
	// ErrMalformedGroupingData means the JSON decoded fine but matches
	// neither accepted grouping shape. Always fatal.
	ErrMalformedGroupingData = errors.New("malformed grouping data")
)

// Group associates one code with the node names sorted under it.
type Group struct {
	Code  string
	Names []string
}

// Grouping is the decoded grouping file in its logical form: an ordered
// collection of code groups. The order is fixed at decode time and decides
// which code wins when a node name appears under more than one code.
type Grouping struct {
	Groups []Group
}

// CodeIndex maps a node name to its assigned code.
type CodeIndex map[string]string

// Load reads and decodes a grouping file, accepting both the flat
// {code: [names]} shape and the wrapped {"sorted": {...}} shape.
func Load(path string) (*Grouping, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGroupingFile, err)
	}
	root, err := oj.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidGroupingFile, path, err)
	}
	g, err := Normalize(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Normalize converts a decoded JSON tree into the logical grouping form.
// Both on-disk shapes terminate here; everything downstream of this call
// is shape-agnostic.
func Normalize(root any) (*Grouping, error) {
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformedGroupingData)
	}
	if _, wrapped := obj["sorted"]; wrapped {
		return normalizeWrapped(root)
	}
	return normalizeFlat(obj)
}

// normalizeFlat handles the older {code: [names...]} shape. JSON objects
// carry no key order, so codes are taken in lexical order to keep
// duplicate-name resolution reproducible across runs.
func normalizeFlat(obj map[string]any) (*Grouping, error) {
	codes := make([]string, 0, len(obj))
	for code := range obj {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	g := &Grouping{Groups: make([]Group, 0, len(codes))}
	for _, code := range codes {
		names, err := stringList(obj[code])
		if err != nil {
			return nil, fmt.Errorf("%w: code %q: %v", ErrMalformedGroupingData, code, err)
		}
		g.Groups = append(g.Groups, Group{Code: code, Names: names})
	}
	return g, nil
}

// normalizeWrapped handles the newer export shape, where the i-th title is
// the code for the i-th name list:
//
//	{"sorted": {"title": [codes...], "textItems": [[names...], ...]}}
func normalizeWrapped(root any) (*Grouping, error) {
	titles, err := sortedBranch(root, "$.sorted.title")
	if err != nil {
		return nil, err
	}
	items, err := sortedBranch(root, "$.sorted.textItems")
	if err != nil {
		return nil, err
	}
	if len(titles) != len(items) {
		return nil, fmt.Errorf("%w: %d titles but %d name lists",
			ErrMalformedGroupingData, len(titles), len(items))
	}

	g := &Grouping{Groups: make([]Group, 0, len(titles))}
	for i, t := range titles {
		code, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("%w: title %d is not a string", ErrMalformedGroupingData, i)
		}
		names, err := stringList(items[i])
		if err != nil {
			return nil, fmt.Errorf("%w: code %q: %v", ErrMalformedGroupingData, code, err)
		}
		g.Groups = append(g.Groups, Group{Code: code, Names: names})
	}
	return g, nil
}

// sortedBranch extracts one array branch of the wrapped shape via JSONPath.
func sortedBranch(root any, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	results := x.Get(root)
	if len(results) != 1 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedGroupingData, selector)
	}
	arr, ok := results[0].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", ErrMalformedGroupingData, selector)
	}
	return arr, nil
}

func stringList(v any) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, errors.New("value is not a list of names")
	}
	names := make([]string, 0, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("name %d is not a string", i)
		}
		names = append(names, s)
	}
	return names, nil
}
