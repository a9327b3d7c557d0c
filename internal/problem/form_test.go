package problem

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumSolver adds a and b.
func sumSolver(v Values) (Solution, error) {
	a, err := v.Float("a")
	if err != nil {
		return Solution{}, Errorf("bad a")
	}
	b, err := v.Float("b")
	if err != nil {
		return Solution{}, Errorf("bad b")
	}
	if b < 0 {
		return Solution{}, Errorf("b must not be negative")
	}
	return Solution{Answer: strconv.FormatFloat(a+b, 'f', -1, 64)}, nil
}

func sumDef() Definition {
	return Definition{
		ID:    "sum",
		Title: "Sum",
		Fields: []Field{
			{Key: "a", Label: "First", Kind: KindDecimal},
			{Key: "b", Label: "Second", Kind: KindDecimal},
		},
		Solve: sumSolver,
	}
}

func listDef(solve Solver) Definition {
	return Definition{
		ID:    "list",
		Title: "List",
		List:  &ListSpec{Prefix: "value", Label: "Value", Kind: KindUnsignedDecimal, Min: 1, Max: 3, Initial: 2},
		Solve: solve,
	}
}

func TestFieldAccepts(t *testing.T) {
	tests := []struct {
		kind Kind
		raw  string
		want bool
	}{
		{KindDecimal, "", true},
		{KindDecimal, "-", true},
		{KindDecimal, "-1.5", true},
		{KindDecimal, ".5", true},
		{KindDecimal, "1.", true},
		{KindDecimal, "1.2.3", false},
		{KindDecimal, "1e5", false},
		{KindDecimal, "--1", false},
		{KindDecimal, "abc", false},
		{KindUnsignedDecimal, "2.75", true},
		{KindUnsignedDecimal, "-2", false},
		{KindDigits, "42", true},
		{KindDigits, "4.2", false},
		{KindDigits, "-4", false},
	}
	for _, tt := range tests {
		f := Field{Key: "x", Kind: tt.kind}
		assert.Equal(t, tt.want, f.Accepts(tt.raw), "%s accepts %q", tt.kind, tt.raw)
	}

	choice := Field{Key: "op", Kind: KindChoice, Options: []string{"+", "×"}, Aliases: map[string]string{"x": "×"}}
	assert.True(t, choice.Accepts("+"))
	assert.True(t, choice.Accepts("X"))
	assert.False(t, choice.Accepts("%"))
	got, ok := choice.Canonical("x")
	require.True(t, ok)
	assert.Equal(t, "×", got)
	assert.Equal(t, "+ ×", choice.PlaceholderText())
	assert.Equal(t, "Enter a number", Field{Kind: KindDecimal}.PlaceholderText())
}

func TestValuesParsing(t *testing.T) {
	v := Values{"a": " 12.0 ", "b": "12.5", "c": "", "d": "100000000000000000000", "e": "NaN"}

	n, err := v.Int("a")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, err = v.Int("b")
	assert.Error(t, err)
	_, err = v.Float("c")
	assert.Error(t, err)
	_, err = v.Int("d")
	assert.Error(t, err)
	_, err = v.Float("e")
	assert.Error(t, err)

	list := Values{"value3": "3", "value1": "1", "value10": "10", "value2": "", "valuex": "9", "other": "7"}
	assert.Equal(t, []string{"1", "3", "10"}, list.List("value"))

	clone := v.Clone()
	clone["a"] = "changed"
	assert.Equal(t, " 12.0 ", v["a"])
}

func TestUpdateField(t *testing.T) {
	t.Run("accepts valid keystrokes", func(t *testing.T) {
		f := NewForm(sumDef())
		require.NoError(t, f.UpdateField("a", "-"))
		require.NoError(t, f.UpdateField("a", "-1."))
		require.NoError(t, f.UpdateField("a", "-1.5"))
		assert.Equal(t, "-1.5", f.Value("a"))
		assert.Empty(t, f.Error())
	})

	t.Run("rejection keeps the previous value", func(t *testing.T) {
		f := NewForm(sumDef())
		require.NoError(t, f.UpdateField("a", "1.5"))
		err := f.UpdateField("a", "1.5x")

		var inErr *InputError
		require.True(t, errors.As(err, &inErr))
		assert.Equal(t, "a", inErr.Field)
		assert.Equal(t, "1.5", f.Value("a"))
		assert.Equal(t, `"First" must be a valid number.`, f.Error())
		assert.Empty(t, f.Result())
		assert.False(t, f.CanSubmit())
	})

	t.Run("valid edit clears a previous error", func(t *testing.T) {
		f := NewForm(sumDef())
		require.Error(t, f.UpdateField("a", "?"))
		require.NoError(t, f.UpdateField("a", "2"))
		assert.Empty(t, f.Error())
	})

	t.Run("valid edit clears a previous result", func(t *testing.T) {
		f := NewForm(sumDef())
		require.NoError(t, f.UpdateField("a", "2"))
		require.NoError(t, f.UpdateField("b", "3"))
		_, err := f.Submit()
		require.NoError(t, err)
		require.Equal(t, "5", f.Result())

		require.NoError(t, f.UpdateField("b", "4"))
		assert.Empty(t, f.Result())
		assert.Nil(t, f.Solution())
	})

	t.Run("unknown key", func(t *testing.T) {
		f := NewForm(sumDef())
		assert.Error(t, f.UpdateField("zzz", "1"))
		assert.NotEmpty(t, f.Error())
	})

	t.Run("choice canonicalizes aliases", func(t *testing.T) {
		def := Definition{
			ID: "choice",
			Fields: []Field{{
				Key: "op", Label: "Operator", Kind: KindChoice,
				Options: []string{"+", "÷"}, Aliases: map[string]string{"/": "÷"},
			}},
			Solve: func(v Values) (Solution, error) { return Solution{Answer: v["op"]}, nil },
		}
		f := NewForm(def)
		require.NoError(t, f.UpdateField("op", "/"))
		assert.Equal(t, "÷", f.Value("op"))
		assert.Error(t, f.UpdateField("op", "%"))
		assert.Equal(t, `"Operator" must be one of the listed options.`, f.Error())
		assert.Equal(t, "÷", f.Value("op"))
	})
}

func TestSubmit(t *testing.T) {
	t.Run("empty field blocks submission", func(t *testing.T) {
		called := false
		def := sumDef()
		def.Solve = func(v Values) (Solution, error) {
			called = true
			return Solution{}, nil
		}
		f := NewForm(def)
		require.NoError(t, f.UpdateField("a", "1"))
		assert.False(t, f.CanSubmit())

		_, err := f.Submit()
		require.Error(t, err)
		assert.False(t, called)
		assert.Equal(t, `"Second" cannot be empty.`, f.Error())
	})

	t.Run("partial number blocks submission", func(t *testing.T) {
		f := NewForm(sumDef())
		require.NoError(t, f.UpdateField("a", "-"))
		require.NoError(t, f.UpdateField("b", "1"))
		assert.False(t, f.CanSubmit())
		_, err := f.Submit()
		assert.Error(t, err)
		assert.Equal(t, `"First" must be a valid number.`, f.Error())
	})

	t.Run("success stores the result", func(t *testing.T) {
		f := NewForm(sumDef())
		require.NoError(t, f.UpdateField("a", "1.5"))
		require.NoError(t, f.UpdateField("b", "2"))
		require.True(t, f.CanSubmit())

		sol, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, "3.5", sol.Answer)
		assert.Equal(t, "3.5", f.Result())
		assert.Empty(t, f.Error())
		require.NotNil(t, f.Solution())
	})

	t.Run("solver error replaces the result", func(t *testing.T) {
		f := NewForm(sumDef())
		require.NoError(t, f.UpdateField("a", "1"))
		require.NoError(t, f.UpdateField("b", "2"))
		_, err := f.Submit()
		require.NoError(t, err)

		require.NoError(t, f.UpdateField("b", "-2"))
		_, err = f.Submit()
		var se *SolveError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "b must not be negative", f.Error())
		assert.Empty(t, f.Result())
	})

	t.Run("resubmitting is idempotent", func(t *testing.T) {
		f := NewForm(sumDef())
		require.NoError(t, f.UpdateField("a", "4"))
		require.NoError(t, f.UpdateField("b", "5"))
		first, err := f.Submit()
		require.NoError(t, err)
		second, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("panic becomes the generic message", func(t *testing.T) {
		def := sumDef()
		def.Solve = func(Values) (Solution, error) { panic("boom") }
		f := NewForm(def)
		require.NoError(t, f.UpdateField("a", "1"))
		require.NoError(t, f.UpdateField("b", "1"))

		_, err := f.Submit()
		require.Error(t, err)
		assert.Equal(t, GenericSolveMessage, f.Error())

		// The card stays usable.
		require.NoError(t, f.UpdateField("a", "2"))
		assert.Empty(t, f.Error())
	})

	t.Run("solver cannot mutate the form", func(t *testing.T) {
		def := sumDef()
		def.Solve = func(v Values) (Solution, error) {
			v["a"] = "999"
			return Solution{Answer: "ok"}, nil
		}
		f := NewForm(def)
		require.NoError(t, f.UpdateField("a", "1"))
		require.NoError(t, f.UpdateField("b", "1"))
		_, err := f.Submit()
		require.NoError(t, err)
		assert.Equal(t, "1", f.Value("a"))
	})
}

func TestReset(t *testing.T) {
	f := NewForm(sumDef())
	require.NoError(t, f.UpdateField("a", "1"))
	require.NoError(t, f.UpdateField("b", "2"))
	_, err := f.Submit()
	require.NoError(t, err)

	f.Reset()
	assert.Empty(t, f.Value("a"))
	assert.Empty(t, f.Value("b"))
	assert.Empty(t, f.Result())
	assert.Empty(t, f.Error())
	assert.Nil(t, f.Solution())
}

func TestListEntries(t *testing.T) {
	var got Values
	f := NewForm(listDef(func(v Values) (Solution, error) {
		got = v
		return Solution{Answer: "ok"}, nil
	}))
	require.Equal(t, 2, f.EntryCount())
	fields := f.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Value 1", fields[0].Label)
	assert.True(t, fields[0].Optional)
	assert.NotEqual(t, fields[0].Key, fields[1].Key)

	// No filled entry yet.
	assert.False(t, f.CanSubmit())

	require.NoError(t, f.UpdateField(fields[1].Key, "4"))
	assert.True(t, f.CanSubmit())
	assert.Error(t, f.UpdateField(fields[1].Key, "-4"))
	assert.Equal(t, "4", f.Value(fields[1].Key))
	require.NoError(t, f.UpdateField(fields[1].Key, "4"))

	key, err := f.AddEntry()
	require.NoError(t, err)
	require.NoError(t, f.UpdateField(key, "7"))
	assert.Equal(t, 3, f.EntryCount())

	_, err = f.AddEntry()
	require.Error(t, err)
	assert.Equal(t, "At most 3 data points.", f.Error())
	assert.Equal(t, 3, f.EntryCount())

	// Removing the first row keeps the values of the others.
	require.NoError(t, f.RemoveEntry(fields[0].Key))
	assert.Equal(t, "4", f.Value(fields[1].Key))
	assert.Equal(t, Values{"value1": "4", "value2": "7"}, f.Values())

	_, err = f.Submit()
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "7"}, got.List("value"))

	require.NoError(t, f.RemoveEntry(key))
	err = f.RemoveEntry(fields[1].Key)
	require.Error(t, err)
	assert.Equal(t, "At least one data point is required.", f.Error())
	assert.Equal(t, 1, f.EntryCount())

	f.Reset()
	assert.Equal(t, 2, f.EntryCount())
}

func TestListOnNonListProblem(t *testing.T) {
	f := NewForm(sumDef())
	_, err := f.AddEntry()
	assert.Error(t, err)
	assert.Error(t, f.RemoveEntry("nope"))
}

func TestValuesChoice(t *testing.T) {
	options := []string{"area", "perimeter"}
	aliases := map[string]string{"p": "perimeter"}
	v := Values{"m": " area ", "alias": "P", "bad": "volume"}

	got, ok := v.Choice("m", options, aliases)
	assert.True(t, ok)
	assert.Equal(t, "area", got)

	got, ok = v.Choice("alias", options, aliases)
	assert.True(t, ok)
	assert.Equal(t, "perimeter", got)

	_, ok = v.Choice("bad", options, aliases)
	assert.False(t, ok)
	_, ok = v.Choice("missing", options, aliases)
	assert.False(t, ok)
}
