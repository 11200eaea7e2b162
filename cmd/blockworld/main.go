package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"blockworld/internal/config"
	"blockworld/internal/game"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

var fogColor = mgl32.Vec3{0.53, 0.81, 0.98}

func main() {
	log.SetPrefix("blockworld: ")
	log.SetFlags(0)

	configPath := flag.String("config", "", "optional YAML config overriding the defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	window, err := glfw.CreateWindow(windowWidth, windowHeight, "blockworld", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(onResize)
	if cfg.Vsync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		log.Fatalf("init gl: %v", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(fogColor.X(), fogColor.Y(), fogColor.Z(), 1)

	blockProg := newProgram("shaders/block.vert", "shaders/block.frag")
	textProg := newProgram("shaders/text.vert", "shaders/text.frag")

	gl.UseProgram(blockProg)
	atlas := loadTextureAtlas(cfg.AtlasPath)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, atlas)
	gl.Uniform1i(gl.GetUniformLocation(blockProg, gl.Str("atlas\x00")), 0)

	projection := mgl32.Perspective(mgl32.DegToRad(70), float32(windowWidth)/float32(windowHeight), 0.1, 350)
	gl.UniformMatrix4fv(gl.GetUniformLocation(blockProg, gl.Str("projection\x00")), 1, false, &projection[0])
	gl.Uniform3f(gl.GetUniformLocation(blockProg, gl.Str("fogColor\x00")), fogColor.X(), fogColor.Y(), fogColor.Z())
	fogDistance := float32(cfg.RenderPad*cfg.SectorSize) + 10
	gl.Uniform1f(gl.GetUniformLocation(blockProg, gl.Str("fogDistance\x00")), fogDistance)

	start := time.Now()
	session := game.NewSession(cfg, &glBatchFactory{atlasTiles: cfg.AtlasTiles})
	log.Printf("generated %d blocks (%d shown) in %.2fs",
		session.World().Len(), session.World().ShownLen(), time.Since(start).Seconds())

	hud := newHUD(textProg, "assets/fonts/label.ttf")

	in := newInputState(window, session)

	tickRate := float32(1) / float32(cfg.TicksPerSecond)
	var accumulator float32
	previous := time.Now()
	frames := 0
	fps := 0.0
	fpsMark := time.Now()

	for !window.ShouldClose() {
		dt := float32(time.Since(previous).Seconds())
		previous = time.Now()
		accumulator += dt

		glfw.PollEvents()
		in.sampleHeldKeys()

		for accumulator >= tickRate {
			session.OnTick(tickRate)
			accumulator -= tickRate
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.Enable(gl.DEPTH_TEST)
		gl.Enable(gl.CULL_FACE)
		gl.UseProgram(blockProg)
		gl.BindTexture(gl.TEXTURE_2D, atlas)

		player := session.Player()
		eye := player.Position
		view := mgl32.LookAtV(eye, eye.Add(player.SightVector()), mgl32.Vec3{0, 1, 0})
		gl.UniformMatrix4fv(gl.GetUniformLocation(blockProg, gl.Str("view\x00")), 1, false, &view[0])
		gl.Uniform3f(gl.GetUniformLocation(blockProg, gl.Str("cameraPosition\x00")), eye.X(), eye.Y(), eye.Z())

		session.OnDraw()

		frames++
		if elapsed := time.Since(fpsMark); elapsed >= 250*time.Millisecond {
			fps = float64(frames) / elapsed.Seconds()
			frames = 0
			fpsMark = time.Now()
			hud.setText(fmt.Sprintf("%.0f fps  (%.1f, %.1f, %.1f)  #%d",
				fps, eye.X(), eye.Y(), eye.Z(), session.Scheduler().BatchCount()))
		}
		hud.draw()

		window.SwapBuffers()
	}
}

func onResize(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
