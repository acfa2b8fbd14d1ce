package terrain

import "github.com/kjkrol/gokt/pkg/render"

// Uniforms the terrain vertex variant adds on top of the generic mesh
// pipeline contract.
const (
	UniformHeightMap   = "uHeightMap"
	UniformGridDim     = "uGridDim"
	UniformTerrainSpan = "uTerrainSpan"
	UniformAmplitude   = "uAmplitude"
	UniformMorphStart  = "uMorphStart"
	UniformMorphEnd    = "uMorphEnd"
)

// Morph thresholds: the distance band over which a vertex slides from its
// fine-grid position to the next coarser grid level.
const (
	DefaultMorphStart = float32(32)
	DefaultMorphEnd   = float32(80)
)

// The vertex stage displaces Y by the sampled height and morphs odd grid
// vertices toward their even neighbours as camera distance crosses the
// morph band, so successive LOD grid levels blend instead of popping.
const terrainVertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;
uniform sampler2D uHeightMap;
uniform vec2 uGridDim;      // vertices per side of the current grid level
uniform float uTerrainSpan; // world-space extent of the terrain patch
uniform float uAmplitude;
uniform float uMorphStart;
uniform float uMorphEnd;

out vec3 vNormal;

float heightAt(vec2 uv) {
    return texture(uHeightMap, uv).r * uAmplitude;
}

// 0 at uMorphStart, 1 at uMorphEnd.
float morphFactor(float dist) {
    return clamp((dist - uMorphStart) / (uMorphEnd - uMorphStart), 0.0, 1.0);
}

// Fractional position within a 2x2 block of the grid; odd vertices carry
// a non-zero fraction and slide toward the even neighbour as k reaches 1.
vec2 morphOffset(vec2 gridPos, float k) {
    vec2 frac = fract(gridPos * uGridDim * 0.5) * 2.0 / uGridDim;
    return -frac * k;
}

void main() {
    vec4 world = uModel * vec4(position, 1.0);
    vec2 gridPos = world.xz / uTerrainSpan + 0.5;

    vec4 viewPos = uView * world;
    float k = morphFactor(length(viewPos.xyz));
    gridPos += morphOffset(gridPos, k);

    world.xz = (gridPos - 0.5) * uTerrainSpan;
    world.y = heightAt(gridPos);

    vNormal = mat3(uModel) * normal;
    gl_Position = uProjection * (uView * world);
}
`

// ProgramSpec is the terrain variant of the mesh pipeline: a specialized
// vertex stage over the shared solid fragment stage, conforming to the
// same bind and uniform contract with the height-map uniforms added.
func ProgramSpec() render.ProgramSpec {
	return render.ProgramSpec{
		Name:     "terrain",
		Vertex:   terrainVertexSrc,
		Fragment: render.SolidFragmentSource(),
		Uniforms: []string{
			render.UniformProjection,
			render.UniformView,
			render.UniformModel,
			render.UniformColor,
			render.UniformWindowScale,
			UniformHeightMap,
			UniformGridDim,
			UniformTerrainSpan,
			UniformAmplitude,
			UniformMorphStart,
			UniformMorphEnd,
		},
	}
}
