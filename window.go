package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"axisviz/internal/render"
	"axisviz/internal/viewer"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec4 vc;
		out vec4 colour;
		void main() {
			colour = vc;
			gl_Position = vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

// Keys that keep acting while held, polled once per frame.
var heldKeys = map[glfw.Key]rune{
	glfw.KeyW: 'w',
	glfw.KeyS: 's',
	glfw.KeyA: 'a',
	glfw.KeyD: 'd',
	glfw.KeyQ: 'q',
	glfw.KeyE: 'e',
}

func newWindowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Interactive OpenGL viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			v, err := viewer.New(cfg, log)
			if err != nil {
				return err
			}
			return runWindow(v, cfg.Viewport.Width, cfg.Viewport.Height, log)
		},
	}
}

func runWindow(v *viewer.Viewer, width, height int, log logrus.FieldLogger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create window")
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize gl")
	}
	log.WithField("version", gl.GoStr(gl.GetString(gl.VERSION))).Info("opengl ready")

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	gl.UseProgram(program)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(render.VertexFloats * 4)
	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1.0)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	window.SetCharCallback(func(w *glfw.Window, char rune) {
		v.Press(char)
	})

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		v.Tick(currentTime - lastFrameTime)
		lastFrameTime = currentTime

		for key, r := range heldKeys {
			if window.GetKey(key) == glfw.Press {
				v.Hold(r)
			}
		}

		f := v.Frame()

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | %s | FPS: %d", title, f.Info[0], frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		tris, lines := render.Vertices(f)
		drawArrays(gl.TRIANGLES, tris)
		drawArrays(gl.LINES, lines)

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// drawArrays uploads vertices into the bound buffer and draws them.
func drawArrays(mode uint32, vertices []float32) {
	if len(vertices) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(mode, 0, int32(len(vertices)/render.VertexFloats))
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))

		return 0, errors.Errorf("failed to link program: %v", msg)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))

		return 0, errors.Errorf("failed to compile shader: %v", msg)
	}

	return shader, nil
}
