package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/swell/wave"
)

// Ocean renders the wave surface: a subdivided plane displaced in the vertex
// shader by the same formula wave.Field evaluates on the CPU. SyncParams
// pushes the exact numeric values the CPU uses, so the rendered surface and
// the actor placement never diverge.
type Ocean struct {
	shader rl.Shader
	model  rl.Model

	timeLoc      int32
	bigFreqLoc   int32
	bigElevLoc   int32
	bigSpeedLoc  int32
	smallFreqLoc int32
	smallElevLoc int32
	smallSpdLoc  int32
	iterLoc      int32
	biasLoc      int32

	size         float32
	subdivisions int32
	vsPath       string
	fsPath       string

	params      wave.Params
	paramsDirty bool
	initialized bool
}

// NewOcean creates an ocean renderer for a size x size plane.
func NewOcean(size float32, subdivisions int32, vsPath, fsPath string) *Ocean {
	return &Ocean{
		size:         size,
		subdivisions: subdivisions,
		vsPath:       vsPath,
		fsPath:       fsPath,
	}
}

// Init initializes the renderer (must be called after the raylib window is
// created).
func (o *Ocean) Init() {
	if o.initialized {
		return
	}

	mesh := rl.GenMeshPlane(o.size, o.size, o.subdivisions, o.subdivisions)
	o.model = rl.LoadModelFromMesh(mesh)

	o.shader = rl.LoadShader(o.vsPath, o.fsPath)
	o.timeLoc = rl.GetShaderLocation(o.shader, "time")
	o.bigFreqLoc = rl.GetShaderLocation(o.shader, "bigFreq")
	o.bigElevLoc = rl.GetShaderLocation(o.shader, "bigElevation")
	o.bigSpeedLoc = rl.GetShaderLocation(o.shader, "bigSpeed")
	o.smallFreqLoc = rl.GetShaderLocation(o.shader, "smallFreq")
	o.smallElevLoc = rl.GetShaderLocation(o.shader, "smallElevation")
	o.smallSpdLoc = rl.GetShaderLocation(o.shader, "smallSpeed")
	o.iterLoc = rl.GetShaderLocation(o.shader, "iterations")
	o.biasLoc = rl.GetShaderLocation(o.shader, "verticalBias")

	materials := o.model.GetMaterials()
	materials[0].Shader = o.shader

	o.paramsDirty = true
	o.initialized = true
}

// SyncParams records a new parameter set for upload. The actual upload
// happens in Draw so parameters changed mid-frame still reach the GPU exactly
// once, with the values the CPU queries used that frame.
func (o *Ocean) SyncParams(p wave.Params) {
	if p == o.params && !o.paramsDirty {
		return
	}
	o.params = p
	o.paramsDirty = true
}

// Draw renders the surface for simulation time t.
func (o *Ocean) Draw(t float32) {
	if !o.initialized {
		o.Init()
	}

	if o.paramsDirty {
		o.uploadParams()
		o.paramsDirty = false
	}

	rl.SetShaderValue(o.shader, o.timeLoc, []float32{t}, rl.ShaderUniformFloat)
	rl.DrawModel(o.model, rl.NewVector3(0, 0, 0), 1.0, rl.White)
}

func (o *Ocean) uploadParams() {
	p := o.params
	rl.SetShaderValue(o.shader, o.bigFreqLoc, []float32{p.BigFreqX, p.BigFreqZ}, rl.ShaderUniformVec2)
	rl.SetShaderValue(o.shader, o.bigElevLoc, []float32{p.BigElevation}, rl.ShaderUniformFloat)
	rl.SetShaderValue(o.shader, o.bigSpeedLoc, []float32{p.BigSpeed}, rl.ShaderUniformFloat)
	rl.SetShaderValue(o.shader, o.smallFreqLoc, []float32{p.SmallFreq}, rl.ShaderUniformFloat)
	rl.SetShaderValue(o.shader, o.smallElevLoc, []float32{p.SmallElevation}, rl.ShaderUniformFloat)
	rl.SetShaderValue(o.shader, o.smallSpdLoc, []float32{p.SmallSpeed}, rl.ShaderUniformFloat)
	rl.SetShaderValue(o.shader, o.iterLoc, []float32{float32(p.Iterations)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(o.shader, o.biasLoc, []float32{p.VerticalBias}, rl.ShaderUniformFloat)
}

// Unload frees resources.
func (o *Ocean) Unload() {
	if o.initialized {
		rl.UnloadShader(o.shader)
		rl.UnloadModel(o.model)
		o.initialized = false
	}
}
