package problem

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/phoenixlwpapix/math-toolkit/internal/logging"
)

// entry is one row of a dynamic list. Keys are UUIDs so that removing a row
// never re-targets keystrokes meant for another one.
type entry struct {
	key   string
	value string
}

// Form is the state of one open card: raw values, list entries and the
// mutually exclusive result/error pair. It is not safe for concurrent use;
// every surface owns its own Form.
type Form struct {
	def      Definition
	values   map[string]string
	entries  []entry
	result   string
	err      string
	solution *Solution
}

// NewForm creates an empty form for def.
func NewForm(def Definition) *Form {
	f := &Form{def: def}
	f.Reset()
	return f
}

// Definition returns the problem this form was built for.
func (f *Form) Definition() Definition {
	return f.def
}

// Reset clears every value, restores the initial list entries and drops any
// result or error.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.def.Fields))
	for _, field := range f.def.Fields {
		f.values[field.Key] = ""
	}
	f.entries = nil
	if f.def.List != nil {
		for i := 0; i < f.def.List.Initial; i++ {
			f.entries = append(f.entries, entry{key: uuid.NewString()})
		}
	}
	f.clearOutcome()
}

func (f *Form) clearOutcome() {
	f.result = ""
	f.err = ""
	f.solution = nil
}

func (f *Form) fail(err error) error {
	msg := err.Error()
	if msg == "" {
		msg = GenericSolveMessage
	}
	f.result = ""
	f.solution = nil
	f.err = msg
	return err
}

// Fields returns the static fields followed by one field per list entry.
func (f *Form) Fields() []Field {
	out := make([]Field, 0, len(f.def.Fields)+len(f.entries))
	out = append(out, f.def.Fields...)
	for i, e := range f.entries {
		out = append(out, f.entryField(i, e))
	}
	return out
}

func (f *Form) entryField(i int, e entry) Field {
	return Field{
		Key:         e.key,
		Label:       fmt.Sprintf("%s %d", f.def.List.Label, i+1),
		Placeholder: fmt.Sprintf("%s %d", f.def.List.Label, i+1),
		Kind:        f.def.List.Kind,
		Optional:    true,
	}
}

func (f *Form) lookup(key string) (Field, int, bool) {
	if field, ok := f.def.Field(key); ok {
		return field, -1, true
	}
	for i, e := range f.entries {
		if e.key == key {
			return f.entryField(i, e), i, true
		}
	}
	return Field{}, -1, false
}

// Value returns the raw value stored for key.
func (f *Form) Value(key string) string {
	if v, ok := f.values[key]; ok {
		return v
	}
	for _, e := range f.entries {
		if e.key == key {
			return e.value
		}
	}
	return ""
}

// Result is the last successful answer, or "".
func (f *Form) Result() string { return f.result }

// Error is the current error message, or "".
func (f *Form) Error() string { return f.err }

// Solution is the last successful solution, or nil.
func (f *Form) Solution() *Solution { return f.solution }

// EntryCount is the number of list rows currently shown.
func (f *Form) EntryCount() int { return len(f.entries) }

// UpdateField applies one keystroke's worth of input. A value that does not
// match the field's pattern is rejected: the stored value is kept, and the
// error names the field.
func (f *Form) UpdateField(key, raw string) error {
	field, idx, ok := f.lookup(key)
	if !ok {
		logging.FormWarn("%s: update for unknown field %q", f.def.ID, key)
		return f.fail(&InputError{Field: key, Label: key, Reason: reasonNoSuch})
	}
	if !field.Accepts(raw) {
		logging.FormDebug("%s: rejected %q for %s", f.def.ID, raw, key)
		reason := reasonInvalid
		if field.Kind == KindChoice {
			reason = reasonChoice
		}
		return f.fail(&InputError{Field: key, Label: field.Label, Reason: reason})
	}
	if field.Kind == KindChoice && raw != "" {
		raw, _ = field.Canonical(raw)
	}

	if idx >= 0 {
		f.entries[idx].value = raw
	} else {
		f.values[key] = raw
	}
	f.clearOutcome()
	return nil
}

// AddEntry appends an empty list row and returns its key.
func (f *Form) AddEntry() (string, error) {
	list := f.def.List
	if list == nil {
		return "", f.fail(errors.New("This problem has no list of values."))
	}
	if len(f.entries) >= list.Max {
		return "", f.fail(fmt.Errorf("At most %d data points.", list.Max))
	}
	key := uuid.NewString()
	f.entries = append(f.entries, entry{key: key})
	f.clearOutcome()
	return key, nil
}

// RemoveEntry drops the list row with the given key.
func (f *Form) RemoveEntry(key string) error {
	list := f.def.List
	if list == nil {
		return f.fail(errors.New("This problem has no list of values."))
	}
	if len(f.entries) <= list.Min {
		return f.fail(errors.New("At least one data point is required."))
	}
	for i, e := range f.entries {
		if e.key == key {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			f.clearOutcome()
			return nil
		}
	}
	logging.FormWarn("%s: remove for unknown entry %q", f.def.ID, key)
	return f.fail(&InputError{Field: key, Label: key, Reason: reasonNoSuch})
}

// check validates a single field value for submission. Empty optional values
// pass.
func check(field Field, raw string) *InputError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if field.Optional {
			return nil
		}
		return &InputError{Field: field.Key, Label: field.Label, Reason: reasonEmpty}
	}
	if field.Kind == KindChoice {
		if _, ok := field.Canonical(raw); !ok {
			return &InputError{Field: field.Key, Label: field.Label, Reason: reasonChoice}
		}
		return nil
	}
	if _, err := (Values{field.Key: raw}).Float(field.Key); err != nil {
		return &InputError{Field: field.Key, Label: field.Label, Reason: reasonInvalid}
	}
	return nil
}

// validate returns the first static field that would block submission. List
// entries never block: the solver ignores the ones that do not parse.
func (f *Form) validate() *InputError {
	for _, field := range f.def.Fields {
		if err := check(field, f.values[field.Key]); err != nil {
			return err
		}
	}
	return nil
}

// hasNumericEntry reports whether at least one list entry parses.
func (f *Form) hasNumericEntry() bool {
	for i, e := range f.entries {
		if strings.TrimSpace(e.value) == "" {
			continue
		}
		if check(f.entryField(i, e), e.value) == nil {
			return true
		}
	}
	return false
}

// CanSubmit reports whether submission is currently enabled. It is derived
// from state on every call; nothing caches it.
func (f *Form) CanSubmit() bool {
	if f.err != "" {
		return false
	}
	if f.validate() != nil {
		return false
	}
	if f.def.List != nil {
		return f.hasNumericEntry()
	}
	return true
}

// Values returns the mapping handed to the solver: static fields by key and
// list entries as Prefix1..PrefixN in display order.
func (f *Form) Values() Values {
	vals := make(Values, len(f.values)+len(f.entries))
	for k, v := range f.values {
		vals[k] = strings.TrimSpace(v)
	}
	if f.def.List != nil {
		for i, e := range f.entries {
			vals[fmt.Sprintf("%s%d", f.def.List.Prefix, i+1)] = strings.TrimSpace(e.value)
		}
	}
	return vals
}

// Submit validates every field and, if all pass, runs the solver. The
// outcome is stored on the form as either a result or an error.
func (f *Form) Submit() (Solution, error) {
	if inErr := f.validate(); inErr != nil {
		logging.FormDebug("%s: submit blocked on %s", f.def.ID, inErr.Field)
		return Solution{}, f.fail(inErr)
	}

	vals := f.Values()
	timer := logging.StartTimer(logging.CategorySolver, f.def.ID)
	sol, err := f.run(vals)
	timer.Stop()
	if err != nil {
		logging.SolverDebug("%s: %v", f.def.ID, err)
		return Solution{}, f.fail(err)
	}

	f.err = ""
	f.result = sol.Answer
	f.solution = &sol
	logging.Solver("%s solved: %s", f.def.ID, sol.Answer)
	return sol, nil
}

// run invokes the solver, converting a panic into the generic message so a
// card never becomes unusable.
func (f *Form) run(vals Values) (sol Solution, err error) {
	if f.def.Solve == nil {
		return Solution{}, &SolveError{Message: GenericSolveMessage}
	}
	defer func() {
		if r := recover(); r != nil {
			logging.SolverError("%s: solver panicked: %v", f.def.ID, r)
			sol = Solution{}
			err = &SolveError{Message: GenericSolveMessage}
		}
	}()
	return f.def.Solve(vals.Clone())
}
