package domain

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFramework(t *testing.T) {
	t.Parallel()

	jsc, err := LookupFramework("JavaScriptCore")
	require.NoError(t, err)
	assert.Equal(t, "JavaScriptCore", jsc.Name())
	assert.Equal(t, "JSC", jsc.Namespace())
	assert.Equal(t, "JSC", jsc.MacroPrefix())

	webcore, err := LookupFramework("WebCore")
	require.NoError(t, err)
	assert.Equal(t, "WebCore", webcore.Namespace())
	assert.Equal(t, "WEBCORE", webcore.MacroPrefix())
}

func TestLookupFramework_Unknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "webcore", "JSC", "WebKit"} {
		_, err := LookupFramework(name)
		var ufe *UnknownFrameworkError
		require.True(t, errors.As(err, &ufe), "expected UnknownFrameworkError for %q", name)
		assert.Equal(t, name, ufe.Name)
	}
}

func TestFramework_SettingDefault(t *testing.T) {
	t.Parallel()

	fw, err := LookupFramework("WebCore")
	require.NoError(t, err)
	assert.Equal(t, "WebCore", fw.Setting(SettingNamespace, "fallback"))
	assert.Equal(t, "fallback", fw.Setting("export_macro", "fallback"))
}

func TestFrameworks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"JavaScriptCore", "WebCore"}, Frameworks())
}

func TestBuiltinFunction_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "every(callback, thisArg)", BuiltinFunction{Name: "every", Parameters: []string{"callback", "thisArg"}}.String())
	assert.Equal(t, "Promise(executor) [Constructor]", BuiltinFunction{Name: "Promise", Parameters: []string{"executor"}, IsConstructor: true}.String())
	assert.Equal(t, "noop()", BuiltinFunction{Name: "noop", Parameters: []string{}}.String())
}

func TestBuiltinFunction_Less(t *testing.T) {
	t.Parallel()

	fns := []BuiltinFunction{
		{Name: "map", ObjectName: "ArrayPrototype", Parameters: []string{"callback"}},
		{Name: "every", ObjectName: "StringPrototype"},
		{Name: "every", ObjectName: "ArrayPrototype", IsConstructor: true},
		{Name: "every", ObjectName: "ArrayPrototype"},
		{Name: "at", ObjectName: "ArrayPrototype", Parameters: []string{"b"}},
		{Name: "at", ObjectName: "ArrayPrototype", Parameters: []string{"a"}},
	}
	sort.SliceStable(fns, func(i, j int) bool { return fns[i].Less(fns[j]) })

	got := make([]string, len(fns))
	for i, fn := range fns {
		got[i] = fn.ObjectName + "." + fn.String()
	}
	assert.Equal(t, []string{
		"ArrayPrototype.at(a)",
		"ArrayPrototype.at(b)",
		"ArrayPrototype.every()",
		"ArrayPrototype.every() [Constructor]",
		"StringPrototype.every()",
		"ArrayPrototype.map(callback)",
	}, got)
}

func TestNewBuiltinObject_SetsOwner(t *testing.T) {
	t.Parallel()

	fns := []BuiltinFunction{{Name: "a"}, {Name: "b"}}
	obj := NewBuiltinObject("ArrayPrototype", fns)

	assert.Equal(t, "ArrayPrototype", obj.Name)
	for _, fn := range obj.Functions {
		assert.Equal(t, "ArrayPrototype", fn.ObjectName)
	}
	// The caller's slice is not modified.
	assert.Empty(t, fns[0].ObjectName)
}

func TestParseError_Error(t *testing.T) {
	t.Parallel()

	err := &ParseError{Kind: ParseErrorBraces, File: "Array.js", Offset: 12, Msg: "unbalanced"}
	assert.Equal(t, "Array.js: parse error (braces) at offset 12: unbalanced", err.Error())

	err = &ParseError{Kind: ParseErrorCopyright, Offset: -1, Msg: "no license"}
	assert.Equal(t, "parse error (copyright): no license", err.Error())
}
