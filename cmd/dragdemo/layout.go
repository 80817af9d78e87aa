package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Layout describes the demo board and, for the headless mode, the scripted gestures.
type Layout struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Snapshot string `mapstructure:"snapshot"`
	// Insets is the width of the autoscroll bands of every list.
	Insets float32 `mapstructure:"insets"`
	// Step overrides the vertical autoscroll increment of the lists.
	Step float32 `mapstructure:"step"`

	Lists  []ListSpec `mapstructure:"lists"`
	Trash  ZoneSpec   `mapstructure:"trash"`
	Script []StepSpec `mapstructure:"script"`
}

// ListSpec is a scrollable column of cards.
type ListSpec struct {
	Name  string   `mapstructure:"name"`
	X     float32  `mapstructure:"x"`
	Y     float32  `mapstructure:"y"`
	W     float32  `mapstructure:"w"`
	H     float32  `mapstructure:"h"`
	Cards []string `mapstructure:"cards"`
}

// ZoneSpec is a drop zone accepting deletions.
type ZoneSpec struct {
	X float32 `mapstructure:"x"`
	Y float32 `mapstructure:"y"`
	W float32 `mapstructure:"w"`
	H float32 `mapstructure:"h"`
}

// StepSpec is a scripted pointer action: press, move, release or cancel.
// Hold keeps the pointer still, letting autoscrolling and animations run.
type StepSpec struct {
	Action string        `mapstructure:"action"`
	X      float32       `mapstructure:"x"`
	Y      float32       `mapstructure:"y"`
	Hold   time.Duration `mapstructure:"hold"`
}

var validActions = []string{"press", "move", "release", "cancel"}

// LoadLayout reads the layout from a TOML file. Scalar settings can be overridden
// by DRAGDEMO_* environment variables. Without a file the built-in board is used.
func LoadLayout(path string) (*Layout, error) {
	v := viper.New()

	v.SetDefault("width", 640)
	v.SetDefault("height", 480)
	v.SetDefault("snapshot", "")
	v.SetDefault("insets", 32)
	v.SetDefault("step", 0)

	v.SetConfigType("toml")
	v.SetEnvPrefix("DRAGDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
	}

	var l Layout
	if err := v.Unmarshal(&l); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}
	if len(l.Lists) == 0 {
		l.Lists = defaultLists()
		l.Trash = ZoneSpec{X: 440, Y: 360, W: 180, H: 100}
	}
	if len(l.Script) == 0 {
		l.Script = defaultScript()
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the board geometry and the script actions.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", l.Width, l.Height)
	}
	names := make(map[string]bool)
	for _, ls := range l.Lists {
		if ls.Name == "" {
			return errors.New("list without name")
		}
		if names[ls.Name] {
			return fmt.Errorf("duplicate list %q", ls.Name)
		}
		names[ls.Name] = true
		if ls.W <= 0 || ls.H <= 0 {
			return fmt.Errorf("list %q has an empty area", ls.Name)
		}
	}
	for i, s := range l.Script {
		if !isValidAction(s.Action) {
			return fmt.Errorf("script step %d: unknown action %q", i, s.Action)
		}
		if s.Hold < 0 {
			return fmt.Errorf("script step %d: negative hold", i)
		}
	}
	return nil
}

func isValidAction(action string) bool {
	return slices.Contains(validActions, action)
}

func defaultLists() []ListSpec {
	return []ListSpec{
		{
			Name: "todo", X: 20, Y: 20, W: 200, H: 440,
			Cards: []string{"design", "review", "deploy", "monitor", "refactor", "document", "benchmark", "release", "support", "plan"},
		},
		{
			Name: "done", X: 240, Y: 20, W: 200, H: 320,
			Cards: []string{"setup", "prototype"},
		},
	}
}

// defaultScript moves the first card to the other list, then deletes a card
// after scrolling the first list down.
func defaultScript() []StepSpec {
	return []StepSpec{
		{Action: "press", X: 120, Y: 45},
		{Action: "move", X: 200, Y: 80},
		{Action: "move", X: 330, Y: 200},
		{Action: "release", X: 330, Y: 200},
		{Action: "move", X: 330, Y: 200, Hold: 400 * time.Millisecond},
		{Action: "press", X: 120, Y: 45},
		{Action: "move", X: 120, Y: 445, Hold: 300 * time.Millisecond},
		{Action: "move", X: 530, Y: 410},
		{Action: "release", X: 530, Y: 410},
		{Action: "move", X: 530, Y: 410, Hold: 400 * time.Millisecond},
	}
}
