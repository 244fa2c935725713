package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Fragment modes, selected per draw command through the uMode uniform.
const (
	modeSolid int32 = iota // vertex color only
	modeAlpha              // texture red channel is coverage
	modeRGBA               // texture color times vertex color
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec2 inUV;
layout (location = 2) in vec4 inColor;

uniform mat4 uProj;

out vec2 fragUV;
out vec4 fragColor;

void main() {
    fragUV = inUV;
    fragColor = inColor;
    gl_Position = uProj * vec4(inPos, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 fragUV;
in vec4 fragColor;

uniform sampler2D uTex;
uniform int uMode;

out vec4 outColor;

void main() {
    if (uMode == 0) {
        outColor = fragColor;
        return;
    }
    vec4 t = texture(uTex, fragUV);
    outColor = uMode == 1 ? vec4(fragColor.rgb, fragColor.a * t.r) : t * fragColor;
}
` + "\x00"

// program is the linked GUI shader and its uniform locations.
type program struct {
	id   uint32
	proj int32
	tex  int32
	mode int32
}

func newProgram() (program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		return program{}, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		return program{}, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		log := infoLog(id, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(id)
		return program{}, fmt.Errorf("link: %s", log)
	}

	uniform := func(name string) int32 { return gl.GetUniformLocation(id, gl.Str(name+"\x00")) }
	return program{
		id:   id,
		proj: uniform("uProj"),
		tex:  uniform("uTex"),
		mode: uniform("uMode"),
	}, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	id := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		log := infoLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile: %s", log)
	}
	return id, nil
}

// infoLog reads a shader or program info log with the matching getters.
func infoLog(id uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n)
	read(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
