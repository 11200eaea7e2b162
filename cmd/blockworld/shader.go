package main

import (
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func newProgram(vertPath, fragPath string) uint32 {
	vert := compileShader(vertPath, gl.VERTEX_SHADER)
	frag := compileShader(fragPath, gl.FRAGMENT_SHADER)
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := string(make([]byte, logLength))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(infoLog))
		log.Fatalf("link %s + %s: %s", vertPath, fragPath, infoLog)
	}

	gl.DetachShader(prog, vert)
	gl.DetachShader(prog, frag)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog
}

func compileShader(path string, shaderType uint32) uint32 {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read shader: %v", err)
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := string(make([]byte, logLength))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		log.Fatalf("compile %s: %s", path, infoLog)
	}
	return shader
}
