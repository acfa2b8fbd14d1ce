package main

import (
	"flag"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/kjkrol/gokt/internal/config"
	"github.com/kjkrol/gokt/pkg/app"
	"github.com/kjkrol/gokt/pkg/render"
	"github.com/kjkrol/gokt/pkg/scene"
	"github.com/kjkrol/gokt/pkg/terrain"
)

func main() {
	confPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	conf := config.Default()
	if *confPath != "" {
		conf, err = config.Load(*confPath)
		if err != nil {
			log.Fatal("loading config", zap.Error(err))
		}
	}

	win, err := app.NewWindow(app.WindowConfig{
		Width:     conf.Window.Width,
		Height:    conf.Window.Height,
		Title:     conf.Window.Title,
		Resizable: conf.Window.Resizable,
		Samples:   conf.Window.Samples,
	}, log)
	if err != nil {
		log.Fatal("opening window", zap.Error(err))
	}
	defer win.Close()

	dev, err := render.NewGLDevice(log)
	if err != nil {
		log.Fatal("initializing GL device", zap.Error(err))
	}

	width, height := win.Size()
	renderer := render.NewRenderer(dev, width, height, render.WithLogger(log))
	defer renderer.Close()

	sc := scene.NewScene(func(s *scene.Scene) {
		buildScene(s, conf.Terrain, log)
	})
	sc.OnRelease(renderer.Release)
	defer sc.Unload()

	cam := &scene.Orbit{
		Target:   mgl64.Vec3{0, 0, 0},
		Distance: 24,
		Yaw:      0.7,
		Pitch:    0.55,
	}
	win.AddMouseObserver(app.NewOrbitController(cam))
	win.AddResizeObserver(app.ResizeFunc(renderer.Resize))
	win.AddKeyObserver(app.KeyFunc(func(ev app.KeyEvent) {
		if !ev.Pressed {
			return
		}
		switch ev.Code {
		case app.KeyEscape:
			win.RequestClose()
		case app.KeyP:
			renderer.SetProjectionMode(render.ProjectionPerspective)
		case app.KeyO:
			renderer.SetProjectionMode(render.ProjectionOrthographic)
		case app.KeyTab:
			if renderer.ProjectionMode() == render.ProjectionPerspective {
				renderer.SetProjectionMode(render.ProjectionOrthographic)
			} else {
				renderer.SetProjectionMode(render.ProjectionPerspective)
			}
		case app.KeyN:
			renderer.SetNormalsOverlay(!renderer.NormalsOverlay())
		case app.KeyR:
			sc.Reload()
		}
	}))

	win.RefreshRate(conf.Window.FPS)
	win.Run(func(dt time.Duration) {
		sc.Update(dt)
		if err := renderer.Render(sc, cam); err != nil {
			log.Error("render failed, stopping", zap.Error(err))
			win.RequestClose()
		}
	})
}

func buildScene(s *scene.Scene, conf config.Terrain, log *zap.Logger) {
	hm, err := terrain.Sample(conf.Grid, conf.Grid, conf.CellSize, rollingHills)
	if err != nil {
		log.Fatal("sampling terrain", zap.Error(err))
	}
	ground := scene.NewObject(
		terrain.BuildMesh(hm, float32(conf.CellSize), float32(conf.Amplitude)),
		mgl32.Vec4{0.33, 0.55, 0.25, 1},
	)
	s.Add(ground)

	marker := scene.NewObject(cubeMesh(), mgl32.Vec4{0.75, 0.2, 0.15, 1})
	marker.Model = mgl32.Translate3D(0, float32(conf.Amplitude)+1.5, 0)
	marker.Update = func(o *scene.Object, dt time.Duration) {
		spin := mgl32.HomogRotate3DY(float32(dt.Seconds()) * 0.8)
		o.Model = o.Model.Mul4(spin)
	}
	s.Add(marker)
}

// rollingHills is a deterministic stand-in for a noise source: a few
// superposed sine ridges, normalized to roughly [-1, 1].
func rollingHills(x, z float64) float64 {
	h := math.Sin(0.30*x)*math.Cos(0.23*z) +
		0.5*math.Sin(0.71*x+1.3)*math.Cos(0.67*z) +
		0.25*math.Sin(1.9*x)*math.Sin(1.7*z+0.5)
	return h / 1.75
}

// cubeMesh is a unit cube with shared corner vertices and outward corner
// normals, wound clockwise per the renderer's front-face convention.
func cubeMesh() *scene.Mesh {
	corners := []mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	vertices := make([]scene.Vertex, len(corners))
	for i, c := range corners {
		vertices[i] = scene.Vertex{Position: c, Normal: c.Normalize()}
	}
	faces := []scene.Face{
		{7, 5, 4}, {7, 6, 5}, // front (+z)
		{3, 1, 2}, {3, 0, 1}, // back (-z)
		{2, 5, 6}, {2, 1, 5}, // right (+x)
		{7, 0, 3}, {7, 4, 0}, // left (-x)
		{3, 6, 7}, {3, 2, 6}, // top (+y)
		{4, 1, 0}, {4, 5, 1}, // bottom (-y)
	}
	return scene.MustMesh(vertices, faces)
}
