package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Skin holds the color scheme for the calculator widget.
type Skin struct {
	Name string

	Display      lipgloss.Color // display text
	DisplayError lipgloss.Color // display text while errored
	Border       lipgloss.Color // display and button borders
	Button       lipgloss.Color // button labels
	ButtonAccent lipgloss.Color // operator column labels
	ActiveBorder lipgloss.Color // border of the pending operator's button
	Status       lipgloss.Color // bottom status line
	Brand        []lipgloss.Color
}

// activeSkin is the skin all rendering reads. It is set once at startup by
// InitializeSkin, before the event loop runs.
var activeSkin = defaultSkin()

func defaultSkin() Skin {
	return Skin{
		Name:         "default",
		Display:      lipgloss.Color("#E8F8F5"),
		DisplayError: lipgloss.Color("#FF4444"),
		Border:       lipgloss.Color("#5D6D7E"),
		Button:       lipgloss.Color("#FDFEFE"),
		ButtonAccent: lipgloss.Color("#F5B041"),
		ActiveBorder: lipgloss.Color("#F5B041"),
		Status:       lipgloss.Color("#85929E"),
		Brand: []lipgloss.Color{
			"#49E209", "#35DD2F", "#21D955", "#0DD47B", "#00D0A1",
		},
	}
}

func builtinSkins() map[string]Skin {
	light := defaultSkin()
	light.Name = "light"
	light.Display = lipgloss.Color("#17202A")
	light.DisplayError = lipgloss.Color("#C0392B")
	light.Border = lipgloss.Color("#AEB6BF")
	light.Button = lipgloss.Color("#1C2833")
	light.ButtonAccent = lipgloss.Color("#CA6F1E")
	light.ActiveBorder = lipgloss.Color("#CA6F1E")
	light.Status = lipgloss.Color("#566573")

	mono := defaultSkin()
	mono.Name = "mono"
	mono.Display = lipgloss.Color("7")
	mono.DisplayError = lipgloss.Color("7")
	mono.Border = lipgloss.Color("8")
	mono.Button = lipgloss.Color("7")
	mono.ButtonAccent = lipgloss.Color("7")
	mono.ActiveBorder = lipgloss.Color("15")
	mono.Status = lipgloss.Color("8")
	mono.Brand = []lipgloss.Color{"7"}

	return map[string]Skin{
		"default": defaultSkin(),
		"light":   light,
		"mono":    mono,
	}
}

// skinFile is the YAML shape of a user skin. Empty fields inherit from the
// default skin.
type skinFile struct {
	Display      string   `yaml:"display"`
	DisplayError string   `yaml:"display-error"`
	Border       string   `yaml:"border"`
	Button       string   `yaml:"button"`
	ButtonAccent string   `yaml:"button-accent"`
	ActiveBorder string   `yaml:"active-border"`
	Status       string   `yaml:"status"`
	Brand        []string `yaml:"brand"`
}

// InitializeSkin installs the named skin: a built-in name, or a user skin at
// <configDir>/skins/<name>.yml. On error the default skin stays active.
func InitializeSkin(name, configDir string) error {
	if name == "" {
		name = "default"
	}

	if skin, ok := builtinSkins()[name]; ok {
		activeSkin = skin
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unknown skin %q and no skin file at %s: %w", name, path, err)
	}

	skin, err := parseSkin(name, data)
	if err != nil {
		return fmt.Errorf("parsing skin file %s: %w", path, err)
	}

	activeSkin = skin
	return nil
}

func parseSkin(name string, data []byte) (Skin, error) {
	var sf skinFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return Skin{}, err
	}

	skin := defaultSkin()
	skin.Name = name

	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&skin.Display, sf.Display)
	set(&skin.DisplayError, sf.DisplayError)
	set(&skin.Border, sf.Border)
	set(&skin.Button, sf.Button)
	set(&skin.ButtonAccent, sf.ButtonAccent)
	set(&skin.ActiveBorder, sf.ActiveBorder)
	set(&skin.Status, sf.Status)

	if len(sf.Brand) > 0 {
		skin.Brand = make([]lipgloss.Color, len(sf.Brand))
		for i, c := range sf.Brand {
			skin.Brand[i] = lipgloss.Color(c)
		}
	}

	return skin, nil
}
