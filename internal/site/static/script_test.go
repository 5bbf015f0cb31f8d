package static

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/najrandevs/najran.dev/internal/platform/i18n"
	"github.com/najrandevs/najran.dev/internal/site/presentation"
)

// scriptHarness runs site.js against a minimal document and localStorage and
// prints the resulting root state as JSON. The scenario and script source are
// appended as globals by runScript.
const scriptHarness = `
var store = {};
if (scenario.stored !== null) { store.theme = scenario.stored; }
function classList() {
  var list = [];
  return {
    list: list,
    toggle: function (name, on) {
      var idx = list.indexOf(name);
      if (on && idx < 0) { list.push(name); }
      if (!on && idx >= 0) { list.splice(idx, 1); }
    }
  };
}
function element(attrs) {
  return {
    attrs: attrs,
    listeners: [],
    textContent: '',
    getAttribute: function (name) { return name in this.attrs ? this.attrs[name] : null; },
    addEventListener: function (type, fn) { this.listeners.push(fn); }
  };
}
var root = element({'data-locale': scenario.locale});
root.lang = '';
root.dir = '';
root.classList = classList();
var button = element({'data-label-light': 'Light mode', 'data-label-dark': 'Dark mode'});
globalThis.window = {
  localStorage: {
    getItem: function (key) {
      if (scenario.storageFails) { throw new Error('denied'); }
      return key in store ? store[key] : null;
    },
    setItem: function (key, value) {
      if (scenario.storageFails) { throw new Error('denied'); }
      store[key] = String(value);
    }
  }
};
globalThis.document = {
  documentElement: root,
  readyState: 'complete',
  querySelectorAll: function () { return [button]; },
  addEventListener: function () {}
};
(new Function(source))();
for (var i = 0; i < scenario.clicks; i++) {
  button.listeners.forEach(function (fn) { fn(); });
}
process.stdout.write(JSON.stringify({
  classes: root.classList.list,
  dir: root.dir,
  lang: root.lang,
  stored: 'theme' in store ? store.theme : null,
  label: button.textContent
}));
`

type scriptScenario struct {
	Locale       string  `json:"locale"`
	Stored       *string `json:"stored"`
	StorageFails bool    `json:"storageFails"`
	Clicks       int     `json:"clicks"`
}

type rootState struct {
	Classes []string `json:"classes"`
	Dir     string   `json:"dir"`
	Lang    string   `json:"lang"`
	Stored  *string  `json:"stored"`
	Label   string   `json:"label"`
}

type deniedStorage struct{}

func (deniedStorage) Get(string) (string, error) { return "", errors.New("denied") }
func (deniedStorage) Set(string, string) error   { return errors.New("denied") }

func runScript(t *testing.T, node string, scenario scriptScenario) rootState {
	t.Helper()
	source, err := fs.ReadFile(FS, "site.js")
	if err != nil {
		t.Fatalf("read site.js: %v", err)
	}
	scenarioJSON, err := json.Marshal(scenario)
	if err != nil {
		t.Fatalf("encode scenario: %v", err)
	}
	sourceJSON, err := json.Marshal(string(source))
	if err != nil {
		t.Fatalf("encode source: %v", err)
	}
	program := "var scenario = " + string(scenarioJSON) + ";\nvar source = " + string(sourceJSON) + ";\n" + scriptHarness
	file := filepath.Join(t.TempDir(), "harness.js")
	if err := os.WriteFile(file, []byte(program), 0o644); err != nil {
		t.Fatalf("write harness: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, node, file).Output()
	if err != nil {
		t.Fatalf("run site.js: %v", err)
	}
	var state rootState
	if err := json.Unmarshal(out, &state); err != nil {
		t.Fatalf("decode state %q: %v", out, err)
	}
	return state
}

// controllerState applies the same scenario to the Go controller.
func controllerState(scenario scriptScenario) rootState {
	root := presentation.NewDocument()
	var store presentation.Storage = deniedStorage{}
	var memory *presentation.MemoryStorage
	if !scenario.StorageFails {
		seed := map[string]string{}
		if scenario.Stored != nil {
			seed[presentation.StorageKey] = *scenario.Stored
		}
		memory = presentation.NewMemoryStorage(seed)
		store = memory
	}
	c := presentation.NewController(root, store, i18n.Locale(scenario.Locale))
	c.Mount()
	for i := 0; i < scenario.Clicks; i++ {
		c.ToggleTheme()
	}

	state := rootState{Classes: strings.Fields(root.ClassName())}
	state.Dir, _ = root.Attribute(presentation.AttrDir)
	state.Lang, _ = root.Attribute(presentation.AttrLang)
	if memory != nil {
		if value, err := memory.Get(presentation.StorageKey); err == nil {
			state.Stored = &value
		}
	}
	return state
}

func TestScriptMatchesPresentationController(t *testing.T) {
	node, err := exec.LookPath("node")
	if err != nil {
		t.Skip("node not installed")
	}

	stored := func(v string) *string { return &v }
	tests := []struct {
		name      string
		scenario  scriptScenario
		wantLabel string
	}{
		{name: "default dark", scenario: scriptScenario{Locale: "en"}, wantLabel: "Light mode"},
		{name: "arabic is rtl", scenario: scriptScenario{Locale: "ar"}, wantLabel: "Light mode"},
		{name: "restores light", scenario: scriptScenario{Locale: "en", Stored: stored("light")}, wantLabel: "Dark mode"},
		{name: "padded value is unrecognised", scenario: scriptScenario{Locale: "en", Stored: stored(" light")}, wantLabel: "Light mode"},
		{name: "unknown value is dark", scenario: scriptScenario{Locale: "ar", Stored: stored("sepia")}, wantLabel: "Light mode"},
		{name: "toggle once", scenario: scriptScenario{Locale: "en", Clicks: 1}, wantLabel: "Dark mode"},
		{name: "toggle twice", scenario: scriptScenario{Locale: "ar", Clicks: 2}, wantLabel: "Light mode"},
		{name: "storage failures", scenario: scriptScenario{Locale: "en", StorageFails: true}, wantLabel: "Light mode"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := runScript(t, node, tc.scenario)
			want := controllerState(tc.scenario)
			want.Label = tc.wantLabel
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("site.js state = %+v, controller state = %+v", describe(got), describe(want))
			}
		})
	}
}

func describe(s rootState) map[string]any {
	stored := "<unset>"
	if s.Stored != nil {
		stored = *s.Stored
	}
	return map[string]any{"classes": s.Classes, "dir": s.Dir, "lang": s.Lang, "stored": stored, "label": s.Label}
}
