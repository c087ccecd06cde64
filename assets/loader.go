// Package assets provides queued loading of models and textures.
//
// Raylib needs the GL context, so loads complete on the main thread — but
// never more than a few per tick, keeping any one frame cheap. Consumers hold
// a slot index and poll readiness; a failed load leaves its slot permanently
// unready (the actor simply stays absent) rather than crashing the frame
// loop.
package assets

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelSlot is the resolution target for one queued model load.
type ModelSlot struct {
	Path   string
	Model  rl.Model
	Ready  bool
	Failed bool
}

// TextureSlot is the resolution target for one queued texture load.
type TextureSlot struct {
	Path    string
	Texture rl.Texture2D
	Ready   bool
	Failed  bool
}

// Loader owns the pending queue and the resolved registry.
type Loader struct {
	models   []*ModelSlot
	textures []*TextureSlot

	pendingModels   []int
	pendingTextures []int

	perTick int
}

// NewLoader creates a loader completing at most perTick loads per Poll.
func NewLoader(perTick int) *Loader {
	if perTick < 1 {
		perTick = 1
	}
	return &Loader{perTick: perTick}
}

// QueueModel registers a model load and returns its slot index.
func (l *Loader) QueueModel(path string) int {
	idx := len(l.models)
	l.models = append(l.models, &ModelSlot{Path: path})
	l.pendingModels = append(l.pendingModels, idx)
	return idx
}

// QueueTexture registers a texture load and returns its slot index.
func (l *Loader) QueueTexture(path string) int {
	idx := len(l.textures)
	l.textures = append(l.textures, &TextureSlot{Path: path})
	l.pendingTextures = append(l.pendingTextures, idx)
	return idx
}

// Model returns the slot for idx, or nil for an out-of-range index.
func (l *Loader) Model(idx int) *ModelSlot {
	if l == nil || idx < 0 || idx >= len(l.models) {
		return nil
	}
	return l.models[idx]
}

// Texture returns the slot for idx, or nil for an out-of-range index.
func (l *Loader) Texture(idx int) *TextureSlot {
	if l == nil || idx < 0 || idx >= len(l.textures) {
		return nil
	}
	return l.textures[idx]
}

// Pending reports how many loads are still queued.
func (l *Loader) Pending() int {
	if l == nil {
		return 0
	}
	return len(l.pendingModels) + len(l.pendingTextures)
}

// Poll completes up to perTick queued loads. Called once per tick.
func (l *Loader) Poll() {
	if l == nil {
		return
	}
	budget := l.perTick

	for budget > 0 && len(l.pendingModels) > 0 {
		idx := l.pendingModels[0]
		l.pendingModels = l.pendingModels[1:]
		budget--

		slot := l.models[idx]
		slot.Model = rl.LoadModel(slot.Path)
		if rl.IsModelValid(slot.Model) {
			slot.Ready = true
			slog.Info("model loaded", "path", slot.Path)
		} else {
			slot.Failed = true
			slog.Warn("model load failed, actor stays absent", "path", slot.Path)
		}
	}

	for budget > 0 && len(l.pendingTextures) > 0 {
		idx := l.pendingTextures[0]
		l.pendingTextures = l.pendingTextures[1:]
		budget--

		slot := l.textures[idx]
		slot.Texture = rl.LoadTexture(slot.Path)
		if rl.IsTextureValid(slot.Texture) {
			slot.Ready = true
			slog.Info("texture loaded", "path", slot.Path)
		} else {
			slot.Failed = true
			slog.Warn("texture load failed", "path", slot.Path)
		}
	}
}

// Unload releases every resolved resource.
func (l *Loader) Unload() {
	if l == nil {
		return
	}
	for _, slot := range l.models {
		if slot.Ready {
			rl.UnloadModel(slot.Model)
		}
	}
	for _, slot := range l.textures {
		if slot.Ready {
			rl.UnloadTexture(slot.Texture)
		}
	}
}
