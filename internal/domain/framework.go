package domain

import "sort"

// Setting keys understood by every framework.
const (
	SettingNamespace   = "namespace"
	SettingMacroPrefix = "macro_prefix"
)

// Framework identifies the subsystem a batch of builtins belongs to.
// Values are fixed at init and never mutated.
type Framework struct {
	name     string
	settings map[string]string
}

var frameworks = map[string]Framework{
	"JavaScriptCore": {
		name: "JavaScriptCore",
		settings: map[string]string{
			SettingMacroPrefix: "JSC",
			SettingNamespace:   "JSC",
		},
	},
	"WebCore": {
		name: "WebCore",
		settings: map[string]string{
			SettingMacroPrefix: "WEBCORE",
			SettingNamespace:   "WebCore",
		},
	},
}

// LookupFramework resolves a framework by its exact name.
func LookupFramework(name string) (Framework, error) {
	fw, ok := frameworks[name]
	if !ok {
		return Framework{}, &UnknownFrameworkError{Name: name}
	}
	return fw, nil
}

// Frameworks returns the known framework names in sorted order.
func Frameworks() []string {
	names := make([]string, 0, len(frameworks))
	for name := range frameworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f Framework) Name() string {
	return f.name
}

// Setting returns the labeled value for key, or def when the framework has none.
func (f Framework) Setting(key, def string) string {
	if v, ok := f.settings[key]; ok {
		return v
	}
	return def
}

func (f Framework) Namespace() string {
	return f.Setting(SettingNamespace, "")
}

func (f Framework) MacroPrefix() string {
	return f.Setting(SettingMacroPrefix, "")
}
