package listing

// Values is a filter-name to serialized-value mapping. Multi-select
// dimensions are comma-joined, month/year ranges use "MM-YYYY".
type Values map[string]string

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for name, value := range v {
		out[name] = value
	}
	return out
}

// Equal compares two value sets field by field.
func (v Values) Equal(other Values) bool {
	if len(v) != len(other) {
		return false
	}
	for name, value := range v {
		if other[name] != value {
			return false
		}
	}
	return true
}

// FilterSet holds the draft and applied copies of one resource's filters.
// Applied only changes through Apply, an immediate-class commit, or Clear;
// it is always the filter set reflected in the last issued query.
type FilterSet struct {
	defaults Values
	draft    Values
	applied  Values
}

// NewFilterSet starts both copies at the resource defaults.
func NewFilterSet(defaults Values) *FilterSet {
	if defaults == nil {
		defaults = Values{}
	}
	return &FilterSet{
		defaults: defaults.Clone(),
		draft:    defaults.Clone(),
		applied:  defaults.Clone(),
	}
}

// Draft returns a copy of the staged values.
func (f *FilterSet) Draft() Values { return f.draft.Clone() }

// Applied returns a copy of the committed values.
func (f *FilterSet) Applied() Values { return f.applied.Clone() }

// Stage edits one draft value without committing it.
func (f *FilterSet) Stage(name, value string) {
	if value == "" {
		delete(f.draft, name)
		return
	}
	f.draft[name] = value
}

// StageAll replaces the entire draft.
func (f *FilterSet) StageAll(values Values) {
	f.draft = values.Clone()
}

// Dirty reports whether the draft differs from the applied set; the Apply
// affordance is enabled only while this holds.
func (f *FilterSet) Dirty() bool {
	return !f.draft.Equal(f.applied)
}

// Apply commits the draft. The returned flag reports whether the applied
// state actually changed; applying an identical draft twice leaves the
// committed state byte-identical.
func (f *FilterSet) Apply() (Values, bool) {
	changed := f.Dirty()
	f.applied = f.draft.Clone()
	return f.applied.Clone(), changed
}

// Commit writes one immediate-class value (search text, page, page size)
// into both copies, bypassing the Apply gate.
func (f *FilterSet) Commit(name, value string) {
	f.Stage(name, value)
	if value == "" {
		delete(f.applied, name)
		return
	}
	f.applied[name] = value
}

// CanClear reports whether either copy is off the resource defaults.
func (f *FilterSet) CanClear() bool {
	return !f.draft.Equal(f.defaults) || !f.applied.Equal(f.defaults)
}

// Clear resets both copies to the defaults and reports whether anything
// changed.
func (f *FilterSet) Clear() bool {
	changed := f.CanClear()
	f.draft = f.defaults.Clone()
	f.applied = f.defaults.Clone()
	return changed
}
