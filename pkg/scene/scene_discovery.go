package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string
	build       func() *Scene
}

var builtInScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default Scene",
		Description: "Two spheres lit by a single light, the reference image",
		build:       NewDefaultScene,
	},
	{
		ID:          "shadow",
		DisplayName: "Shadow",
		Description: "A sphere casting a shadow on a large ground sphere",
		build:       NewShadowScene,
	},
	{
		ID:          "spheregrid",
		DisplayName: "Sphere Grid",
		Description: "10x10 grid of OKLCH-colored spheres",
		build:       func() *Scene { return NewSphereGridScene(10) },
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	copy(scenes, builtInScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup builds the built-in scene with the given ID. Matching ignores case
// and surrounding whitespace.
func Lookup(id string) (*Scene, SceneInfo, error) {
	normalized := strings.ToLower(strings.TrimSpace(id))
	for _, info := range builtInScenes {
		if info.ID == normalized {
			return info.build(), info, nil
		}
	}
	return nil, SceneInfo{}, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}
