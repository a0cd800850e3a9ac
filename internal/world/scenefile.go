package world

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vrscene/internal/components"
	"vrscene/internal/engine"

	// registers look-controls
	_ "vrscene/internal/look"
)

// --- JSON types ---

type SceneFile struct {
	Name       string      `json:"name"`
	Background string      `json:"background,omitempty"`
	Objects    []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string         `json:"name"`
	Tags       []string       `json:"tags,omitempty"`
	Parent     string         `json:"parent,omitempty"`
	Position   [3]float32     `json:"position"`
	Rotation   [3]float32     `json:"rotation"`
	Scale      [3]float32     `json:"scale"`
	Components []ComponentDef `json:"components"`
}

// ComponentDef names a registered component and its props, e.g.
// {"type": "look-controls", "props": {"hmdEnabled": false}}.
type ComponentDef struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Loading ---

func LoadScene(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

// ParseScene builds a scene from JSON. Parents are resolved by name and
// must appear before their children.
func ParseScene(data []byte) (*engine.Scene, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	scene := engine.NewScene(sf.Name)
	if sf.Background != "" {
		bg, err := components.ParseColor(sf.Background)
		if err != nil {
			return nil, fmt.Errorf("scene background: %w", err)
		}
		scene.Background = bg
	}

	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = rl.Vector3{X: objDef.Position[0], Y: objDef.Position[1], Z: objDef.Position[2]}
		g.Transform.Rotation = rl.Vector3{X: objDef.Rotation[0], Y: objDef.Rotation[1], Z: objDef.Rotation[2]}

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			g.Transform.Scale = rl.Vector3{X: objDef.Scale[0], Y: objDef.Scale[1], Z: objDef.Scale[2]}
		}

		for _, def := range objDef.Components {
			c, err := engine.CreateComponent(def.Type, def.Props)
			if err != nil {
				return nil, fmt.Errorf("object %q: %w", objDef.Name, err)
			}
			g.AddComponent(c)
		}

		if objDef.Parent != "" {
			parent, ok := byName[objDef.Parent]
			if !ok {
				return nil, fmt.Errorf("object %q: unknown parent %q", objDef.Name, objDef.Parent)
			}
			parent.AddChild(g)
		}

		byName[g.Name] = g
		scene.AddGameObject(g)
	}

	return scene, nil
}

// --- Saving ---

func SaveScene(path string, scene *engine.Scene) error {
	data, err := json.MarshalIndent(Snapshot(scene), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

// Snapshot converts a live scene back to its file form. Components that no
// registered serializer claims are skipped.
func Snapshot(scene *engine.Scene) SceneFile {
	sf := SceneFile{
		Name:       scene.Name,
		Background: components.FormatColor(scene.Background),
	}

	for _, g := range scene.GameObjects {
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
			Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
			Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
		}
		if g.Parent != nil {
			objDef.Parent = g.Parent.Name
		}

		for _, c := range g.Components() {
			if name, props, ok := engine.SerializeComponent(c); ok {
				objDef.Components = append(objDef.Components, ComponentDef{Type: name, Props: props})
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	return sf
}
