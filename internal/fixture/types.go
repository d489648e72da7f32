// Package fixture discovers golden-output fixtures on disk.
//
// A fixture is a pair of sibling files sharing a base name: an input source
// file and the output the compiled program is expected to print. Fixtures
// live one level below a root directory, one sub-directory per suite:
//
//	<root>/<suite>/<name><input-ext>
//	<root>/<suite>/<name><output-ext>
package fixture

// Record is one fixture found during discovery. Input and Output are empty
// when the corresponding file was not found.
type Record struct {
	Name   string // Base name, without extension
	Suite  string // Suite directory the record was last assigned from
	Input  string // Path to the input file
	Output string // Path to the expected-output file
}

// Executable reports whether both files of the pair are present.
func (r Record) Executable() bool {
	return r.Input != "" && r.Output != ""
}

// Set holds records keyed by base name and remembers the order in which
// names were first seen during traversal.
type Set struct {
	order   []string
	records map[string]*Record
}

func newSet() *Set {
	return &Set{records: make(map[string]*Record)}
}

// ensure returns the record for name, creating it on first sight.
func (s *Set) ensure(name, suite string) *Record {
	if r, ok := s.records[name]; ok {
		return r
	}
	r := &Record{Name: name, Suite: suite}
	s.records[name] = r
	s.order = append(s.order, name)
	return r
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.order)
}

// Names returns the base names in discovery order.
func (s *Set) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Get returns a copy of the record named name.
func (s *Set) Get(name string) (Record, bool) {
	r, ok := s.records[name]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Records returns copies of all records in discovery order.
func (s *Set) Records() []Record {
	out := make([]Record, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.records[name])
	}
	return out
}
