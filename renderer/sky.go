package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sky renders a textured dome centered on the camera. Purely decorative
// scene assembly; it tolerates its texture never arriving.
type Sky struct {
	model       rl.Model
	radius      float32
	textured    bool
	initialized bool
}

// NewSky creates a dome of the given radius.
func NewSky(radius float32) *Sky {
	return &Sky{radius: radius}
}

// Init builds the dome mesh (must be called after the raylib window is
// created).
func (s *Sky) Init() {
	if s.initialized {
		return
	}
	mesh := rl.GenMeshSphere(s.radius, 16, 32)
	s.model = rl.LoadModelFromMesh(mesh)
	s.initialized = true
}

// SetTexture applies the loaded sky texture. Safe to call once the async
// load resolves; until then the dome draws flat-shaded.
func (s *Sky) SetTexture(tex rl.Texture2D) {
	if !s.initialized {
		s.Init()
	}
	rl.SetMaterialTexture(&s.model.GetMaterials()[0], rl.MapDiffuse, tex)
	s.textured = true
}

// Draw renders the dome around the camera position. Backface culling is
// flipped off so the inside of the sphere is visible.
func (s *Sky) Draw(camX, camY, camZ float32) {
	if !s.initialized {
		s.Init()
	}
	tint := rl.SkyBlue
	if s.textured {
		tint = rl.White
	}
	rl.DisableBackfaceCulling()
	rl.DrawModel(s.model, rl.NewVector3(camX, camY, camZ), 1.0, tint)
	rl.EnableBackfaceCulling()
}

// Unload frees the dome model.
func (s *Sky) Unload() {
	if s.initialized {
		rl.UnloadModel(s.model)
		s.initialized = false
	}
}
