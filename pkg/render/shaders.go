package render

// Uniform names shared by every program conforming to the mesh pipeline
// contract. Terrain and other specialized variants add their own on top.
const (
	UniformProjection  = "uProjection"
	UniformView        = "uView"
	UniformModel       = "uModel"
	UniformColor       = "uColor"
	UniformWindowScale = "uWindowScale"
)

const solidVertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModel) * normal;
    gl_Position = uProjection * uView * uModel * vec4(position, 1.0);
}
`

const solidFragmentSrc = `#version 410 core
uniform vec4 uColor;
uniform vec2 uWindowScale;

in vec3 vNormal;
out vec4 fragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(vec3(0.4, 1.0, 0.6))), 0.0);
    vec3 shaded = uColor.rgb * (0.35 + 0.65 * diffuse);
    vec2 uv = gl_FragCoord.xy / max(uWindowScale, vec2(1.0)) - vec2(0.5);
    float vignette = 1.0 - 0.25 * dot(uv, uv);
    fragColor = vec4(shaded * vignette, uColor.a);
}
`

const normalsVertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;

uniform mat4 uView;
uniform mat4 uModel;

out VS_OUT {
    vec3 normal;
} vs_out;

void main() {
    vs_out.normal = normalize(mat3(uView * uModel) * normal);
    gl_Position = uView * uModel * vec4(position, 1.0);
}
`

const normalsGeometrySrc = `#version 410 core
layout(triangles) in;
layout(line_strip, max_vertices = 6) out;

uniform mat4 uProjection;

in VS_OUT {
    vec3 normal;
} gs_in[];

const float normalLength = 0.25;

void emitNormal(int i) {
    gl_Position = uProjection * gl_in[i].gl_Position;
    EmitVertex();
    gl_Position = uProjection * (gl_in[i].gl_Position + vec4(gs_in[i].normal, 0.0) * normalLength);
    EmitVertex();
    EndPrimitive();
}

void main() {
    emitNormal(0);
    emitNormal(1);
    emitNormal(2);
}
`

const normalsFragmentSrc = `#version 410 core
out vec4 fragColor;

void main() {
    fragColor = vec4(0.9, 0.15, 0.1, 1.0);
}
`

// SolidFragmentSource exposes the primary fragment stage so specialized
// vertex variants (the terrain height-map shader) can share it.
func SolidFragmentSource() string { return solidFragmentSrc }

// SolidProgramSpec is the primary render program: shaded solid color over
// the interleaved position/normal layout.
func SolidProgramSpec() ProgramSpec {
	return ProgramSpec{
		Name:     "solid",
		Vertex:   solidVertexSrc,
		Fragment: solidFragmentSrc,
		Uniforms: []string{
			UniformProjection,
			UniformView,
			UniformModel,
			UniformColor,
			UniformWindowScale,
		},
	}
}

// NormalsProgramSpec is the debug overlay drawing a line per vertex normal,
// derived in the geometry stage from the same vertex array the primary
// pass uses.
func NormalsProgramSpec() ProgramSpec {
	return ProgramSpec{
		Name:     "normals",
		Vertex:   normalsVertexSrc,
		Geometry: normalsGeometrySrc,
		Fragment: normalsFragmentSrc,
		Uniforms: []string{
			UniformProjection,
			UniformView,
			UniformModel,
		},
	}
}
