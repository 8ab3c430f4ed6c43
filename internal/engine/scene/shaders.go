package scene

// flatVertexShader draws lines and points in a single colour. Points shrink
// with distance like a perspective-attenuated sprite.
const flatVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;
uniform mat4 uView;
uniform mat4 uModel;
uniform float uPointSize;  // world units, 0 for lines
uniform float uPointScale; // half the viewport height in pixels

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	gl_Position = uViewProj * world;
	if (uPointSize > 0.0) {
		float depth = max(-(uView * world).z, 0.001);
		gl_PointSize = uPointSize * uPointScale / depth;
	}
}
`

const flatFragmentShader = `#version 410 core
uniform vec4 uColor;
uniform float uPointSize;

out vec4 FragColor;

void main() {
	if (uPointSize > 0.0) {
		vec2 d = gl_PointCoord - vec2(0.5);
		if (dot(d, d) > 0.25) {
			discard;
		}
	}
	FragColor = uColor;
}
`

// litVertexShader transforms interleaved position/normal meshes.
const litVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uViewProj * world;
}
`

// litFragmentShader is Phong shading lit from both faces.
const litFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vWorldPos;

uniform vec4 uColor;
uniform vec3 uAmbient;
uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform vec3 uEye;
uniform float uShininess;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}
	vec3 l = normalize(uLightDir);
	vec3 v = normalize(uEye - vWorldPos);
	vec3 h = normalize(l + v);

	float diffuse = max(dot(n, l), 0.0);
	float specular = diffuse > 0.0 ? pow(max(dot(n, h), 0.0), uShininess) : 0.0;

	vec3 rgb = uColor.rgb * (uAmbient + uLightColor * diffuse) + uLightColor * specular * 0.07;
	FragColor = vec4(rgb, uColor.a);
}
`
