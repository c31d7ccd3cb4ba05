// Package formula holds the state shared by the CNF and ANF formula
// backends: named variables, write-only parameters, and the add_max_args /
// xor_max_args encoding knobs. Grounded on bal/formula/formula.hpp and
// ple/library/formula.hpp, which independently implement the same
// responsibilities for their respective backends; this port unifies them
// into one embeddable Base.
package formula

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vsklad/cgen-sub001/literal"
	"github.com/vsklad/cgen-sub001/varray"
)

const (
	addMaxArgsDefault = 3
	addMaxArgsMin     = 2
	addMaxArgsMax     = 6

	xorMaxArgsDefault = 3
	xorMaxArgsMin     = 2
	xorMaxArgsMax     = 10
)

// DomainError reports an out-of-range encoding knob.
type DomainError struct {
	Name           string
	Value          uint32
	Min, Max       uint32
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("formula: %s %d should be between %d and %d", e.Name, e.Value, e.Min, e.Max)
}

// ErrUnknownName is returned by NamedVariableUpdateUnassigned when asked
// about a name that was never bound (the VARIABLEID_ERROR sentinel of the
// original, expressed as a Go error).
var ErrUnknownName = fmt.Errorf("formula: named variable not found")

// Base is embedded by the CNF and ANF formula types.
type Base struct {
	literal.Generator

	namedVariables map[string]varray.Array
	parameters     map[string]string

	addMaxArgs uint32
	xorMaxArgs uint32
}

// Init must be called once before use (construction-time reset, mirroring
// Formula::initialize()).
func (f *Base) Init() {
	f.namedVariables = make(map[string]varray.Array)
	f.parameters = make(map[string]string)
	f.addMaxArgs = 0
	f.xorMaxArgs = 0
}

// NamedVariables returns the current name -> binding map. Callers must not
// mutate the returned map.
func (f *Base) NamedVariables() map[string]varray.Array { return f.namedVariables }

// AddNamedVariable overwrites any previous binding of name with value.
func (f *Base) AddNamedVariable(name string, value varray.Array) {
	cp := make(varray.Array, len(value))
	copy(cp, value)
	f.namedVariables[name] = cp
}

// AddNamedVariableIndexed grows name's binding to hold index+1 elements of
// value's width and overwrites element index. This implementation
// standardizes on the ANF formula's grow-and-overwrite behavior for both
// backends; see DESIGN.md for why the CNF-side's differing original
// behavior (expand_append_element) was not preserved as a second code path.
func (f *Base) AddNamedVariableIndexed(name string, value varray.Array, index int) {
	existing, ok := f.namedVariables[name]
	if !ok {
		existing = varray.Array{}
	}
	existing = varray.ExpandElements(existing, len(value), index+1)
	varray.AssignElement(existing, value, index)
	f.namedVariables[name] = existing
}

// IsVariableNamed reports whether variableID is referenced, in either sign,
// by any named variable.
func (f *Base) IsVariableNamed(variableID literal.VariableID) bool {
	for _, v := range f.namedVariables {
		if v.Contains(variableID) {
			return true
		}
	}
	return false
}

// NamedVariablesUpdate rewrites every named binding by projecting it through
// source, a variable-id-indexed table.
func (f *Base) NamedVariablesUpdate(source varray.Array) {
	for name, v := range f.namedVariables {
		out := make(varray.Array, len(v))
		varray.AssignTemplateInto(source, v, out)
		f.namedVariables[name] = out
	}
}

// NamedVariableUpdateUnassigned fills in only the unassigned slots of name's
// binding from source (same length required) and returns how many changed.
func (f *Base) NamedVariableUpdateUnassigned(name string, source varray.Array) (int, error) {
	existing, ok := f.namedVariables[name]
	if !ok {
		return 0, ErrUnknownName
	}
	if len(existing) != len(source) {
		panic("formula: NamedVariableUpdateUnassigned requires matching lengths")
	}
	changed := 0
	for i := range existing {
		if existing[i] == literal.Unassigned && source[i] != literal.Unassigned {
			existing[i] = source[i]
			changed++
		}
	}
	return changed, nil
}

// NamedVariablesAssignNegations projects every named binding's signs back
// onto dst (a variable-id-indexed table): for each variable literal
// referenced by a binding, dst[variable_id] is set to that literal's sign.
// Conflicts are not detected; the last occurrence wins, per the original.
func (f *Base) NamedVariablesAssignNegations(dst varray.Array) {
	for _, v := range f.namedVariables {
		for _, t := range v {
			if t.IsVariable() {
				dst[t.VariableID()] = t
			}
		}
	}
}

// AddParameter appends name: value (quoted unless quote is false) to the
// comma-separated blob stored under key.
func (f *Base) AddParameter(key, name, value string, quote bool) {
	var item string
	if quote {
		item = fmt.Sprintf("%s: %q", name, value)
	} else {
		item = fmt.Sprintf("%s: %s", name, value)
	}
	if existing, ok := f.parameters[key]; ok && existing != "" {
		f.parameters[key] = existing + ", " + item
	} else {
		f.parameters[key] = item
	}
}

// AddParameterUint is AddParameter for an unquoted numeric value.
func (f *Base) AddParameterUint(key, name string, value uint32) {
	f.AddParameter(key, name, strconv.FormatUint(uint64(value), 10), false)
}

// ClearParameters removes key entirely.
func (f *Base) ClearParameters(key string) { delete(f.parameters, key) }

// Parameters returns the current key -> blob map. Callers must not mutate
// the returned map. Keys are stable across calls but iteration order is
// not; callers that need deterministic output should sort the keys
// themselves (the DIMACS/PolyBoRi writers do).
func (f *Base) Parameters() map[string]string { return f.parameters }

// SortedParameterKeys returns the parameter keys in ascending order, for
// deterministic serialization.
func (f *Base) SortedParameterKeys() []string {
	keys := make([]string, 0, len(f.parameters))
	for k := range f.parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAddMaxArgs returns the current add_max_args, or its default if unset.
func (f *Base) GetAddMaxArgs() uint32 {
	if f.addMaxArgs == 0 {
		return addMaxArgsDefault
	}
	return f.addMaxArgs
}

// SetAddMaxArgs validates and sets add_max_args.
func (f *Base) SetAddMaxArgs(value uint32) error {
	if value < addMaxArgsMin || value > addMaxArgsMax {
		return &DomainError{Name: "add_max_args", Value: value, Min: addMaxArgsMin, Max: addMaxArgsMax}
	}
	f.addMaxArgs = value
	return nil
}

// GetXorMaxArgs returns the current xor_max_args, or its default if unset.
func (f *Base) GetXorMaxArgs() uint32 {
	if f.xorMaxArgs == 0 {
		return xorMaxArgsDefault
	}
	return f.xorMaxArgs
}

// SetXorMaxArgs validates and sets xor_max_args.
func (f *Base) SetXorMaxArgs(value uint32) error {
	if value < xorMaxArgsMin || value > xorMaxArgsMax {
		return &DomainError{Name: "xor_max_args", Value: value, Min: xorMaxArgsMin, Max: xorMaxArgsMax}
	}
	f.xorMaxArgs = value
	return nil
}

// FormatParameterLines renders every parameter as a "c var .key = { ... }"
// DIMACS comment line, sorted by key for determinism.
func (f *Base) FormatParameterLines() []string {
	lines := make([]string, 0, len(f.parameters))
	for _, key := range f.SortedParameterKeys() {
		lines = append(lines, fmt.Sprintf("c var .%s = { %s }", key, f.parameters[key]))
	}
	return lines
}

// FormatNamedVariableLines renders every named variable as a "c var name =
// ..." DIMACS comment line, sorted by name for determinism.
func (f *Base) FormatNamedVariableLines() []string {
	names := make([]string, 0, len(f.namedVariables))
	for name := range f.namedVariables {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lits := make([]string, len(f.namedVariables[name]))
		for i, l := range f.namedVariables[name] {
			lits[i] = l.String()
		}
		lines = append(lines, fmt.Sprintf("c var %s = {%s}", name, strings.Join(lits, ",")))
	}
	return lines
}
