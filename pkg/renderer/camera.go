package renderer

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// CameraConfig contains the user-facing camera settings. All fields are read
// once by NewCamera.
type CameraConfig struct {
	AspectRatio     float64     // Ideal ratio of image width over height
	ImageWidth      int         // Rendered image width in pixels
	SamplesPerPixel int         // Count of random samples for each pixel
	MaxDepth        int         // Maximum number of ray bounces into the scene
	VFov            float64     // Vertical field of view in degrees
	LookFrom        core.Point3 // Point the camera is looking from
	LookAt          core.Point3 // Point the camera is looking at
	Up              core.Vec3   // Camera-relative "up" direction
	DefocusAngle    float64     // Variation angle of rays through each pixel, in degrees (0 disables depth of field)
	FocusDistance   float64     // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      1280,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// Camera is the immutable viewing frame derived from a CameraConfig.
// It is safe to share between workers.
type Camera struct {
	config            CameraConfig
	imageWidth        int
	imageHeight       int
	samplesPerPixel   int
	pixelSamplesScale float64     // Color scale factor for a sum of pixel samples
	center            core.Point3 // Camera center
	pixel00           core.Point3 // Location of pixel 0, 0
	pixelDeltaU       core.Vec3   // Offset to pixel to the right
	pixelDeltaV       core.Vec3   // Offset to pixel below
	u, v, w           core.Vec3   // Camera frame basis vectors
	defocusDiskU      core.Vec3   // Defocus disk horizontal radius
	defocusDiskV      core.Vec3   // Defocus disk vertical radius
}

// NewCamera computes the viewing frame for config. Degenerate settings are
// normalized rather than rejected.
func NewCamera(config CameraConfig) *Camera {
	if config.ImageWidth < 1 {
		config.ImageWidth = 1
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}
	if config.FocusDistance <= 0 {
		config.FocusDistance = 1
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		config.VFov = 90
	}
	if config.LookFrom.Subtract(config.LookAt).NearZero() {
		config.LookAt = config.LookFrom.Add(core.NewVec3(0, 0, -1))
	}
	if viewDir := config.LookFrom.Subtract(config.LookAt).Normalize(); config.Up.Normalize().Cross(viewDir).NearZero() {
		config.Up = fallbackUp(viewDir)
	}

	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := config.LookFrom

	// Determine viewport dimensions
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(imageHeight))

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:            config,
		imageWidth:        config.ImageWidth,
		imageHeight:       imageHeight,
		samplesPerPixel:   config.SamplesPerPixel,
		pixelSamplesScale: 1.0 / float64(config.SamplesPerPixel),
		center:            center,
		pixel00:           pixel00,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		u:                 u,
		v:                 v,
		w:                 w,
		defocusDiskU:      u.Multiply(defocusRadius),
		defocusDiskV:      v.Multiply(defocusRadius),
	}
}

// fallbackUp picks a world axis that is not parallel to the unit view direction w
func fallbackUp(w core.Vec3) core.Vec3 {
	if math.Abs(w.Y) < 0.9 {
		return core.NewVec3(0, 1, 0)
	}
	return core.NewVec3(0, 0, -1)
}

// GetRay returns a camera ray through a random point in pixel (i, j), starting
// on the defocus disk when depth of field is enabled
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// PixelCenter returns the world position of the center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Point3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// sampleSquare returns a random point in the [-.5,-.5]-[+.5,+.5] unit square
func sampleSquare(sampler core.Sampler) core.Vec2 {
	s := sampler.Get2D()
	return core.NewVec2(s.X-0.5, s.Y-0.5)
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// ImageWidth returns the rendered image width in pixels
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the rendered image height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SamplesPerPixel returns the number of rays traced per pixel
func (c *Camera) SamplesPerPixel() int { return c.samplesPerPixel }

// PixelSamplesScale returns 1/SamplesPerPixel
func (c *Camera) PixelSamplesScale() float64 { return c.pixelSamplesScale }

// MaxDepth returns the bounce budget for each camera ray
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// Center returns the camera position
func (c *Camera) Center() core.Point3 { return c.center }

// Forward returns the viewing direction
func (c *Camera) Forward() core.Vec3 { return c.w.Negate() }

// Config returns the normalized configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }
