package ecss_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/MichaelMorf/glGA-SDK/ecss"
)

func TestComponentConstructorsDefaultToIdentity(t *testing.T) {
	trs := ecss.NewTransform("trs")
	assert.Equal(t, mgl32.Ident4(), trs.Local())
	assert.Equal(t, mgl32.Ident4(), trs.LocalToWorld())
	assert.Equal(t, mgl32.Ident4(), trs.LocalToCamera())

	cam := ecss.NewCamera("cam")
	assert.Equal(t, mgl32.Ident4(), cam.Projection())
	assert.Equal(t, mgl32.Ident4(), cam.RootToCamera())
}

func TestComponentConstructorOptions(t *testing.T) {
	local := mgl32.Translate3D(1, 2, 3)
	trs := ecss.NewTransform("trs", ecss.WithLocal(local))
	assert.Equal(t, local, trs.Local())
	assert.Equal(t, mgl32.Ident4(), trs.LocalToWorld())

	proj := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)
	view := mgl32.Translate3D(0, 0, -10)
	cam := ecss.NewCamera("cam", ecss.WithProjection(proj), ecss.WithRootToCamera(view))
	assert.Equal(t, proj, cam.Projection())
	assert.Equal(t, view, cam.RootToCamera())
}

func TestTransformUpdateRecognizedOptions(t *testing.T) {
	trs := ecss.NewTransform("trs")

	local := mgl32.Translate3D(1, 0, 0)
	world := mgl32.Translate3D(2, 0, 0)
	cam := mgl32.Translate3D(3, 0, 0)

	trs.Update(
		ecss.WithLocal(local),
		ecss.WithLocalToWorld(world),
		ecss.WithLocalToCamera(cam),
	)

	assert.Equal(t, local, trs.Local())
	assert.Equal(t, world, trs.LocalToWorld())
	assert.Equal(t, cam, trs.LocalToCamera())
}

func TestUpdateIgnoresOptionsForOtherKinds(t *testing.T) {
	trs := ecss.NewTransform("trs")
	cam := ecss.NewCamera("cam")

	// Camera options on a Transform change nothing.
	trs.Update(ecss.WithProjection(mgl32.Translate3D(9, 9, 9)))
	assert.Equal(t, mgl32.Ident4(), trs.Local())
	assert.Equal(t, mgl32.Ident4(), trs.LocalToWorld())

	// Transform options on a Camera change nothing.
	cam.Update(ecss.WithLocal(mgl32.Translate3D(9, 9, 9)))
	assert.Equal(t, mgl32.Ident4(), cam.Projection())
	assert.Equal(t, mgl32.Ident4(), cam.RootToCamera())
}

func TestRenderMeshUpdateTriggersDraw(t *testing.T) {
	draws := 0
	mesh := ecss.NewRenderMesh("mesh", ecss.WithDrawFunc(func(*ecss.RenderMesh) {
		draws++
	}))

	// Constructing with a draw hook must not draw.
	assert.Equal(t, 0, draws)

	mesh.Update()
	assert.Equal(t, 1, draws)

	// Update applies options before drawing.
	var seen *ecss.RenderMesh
	mesh.Update(ecss.WithDrawFunc(func(m *ecss.RenderMesh) {
		draws += 10
		seen = m
	}))
	assert.Equal(t, 11, draws)
	assert.Same(t, mesh, seen)
}

func TestRenderMeshDrawWithoutHook(t *testing.T) {
	mesh := ecss.NewRenderMesh("mesh")
	mesh.Draw() // no hook set, must not panic
	mesh.Update()
}

func TestAcceptDispatchesByKind(t *testing.T) {
	rec := &recordingSystem{}

	trs := ecss.NewTransform("trs")
	trs.Accept(rec)
	assert.Equal(t, []string{"apply:trs", "applyCameraTransform:trs"}, rec.visits)

	rec.visits = nil
	cam := ecss.NewCamera("cam")
	cam.Accept(rec)
	assert.Equal(t, []string{"applyCamera:cam"}, rec.visits)

	rec.visits = nil
	mesh := ecss.NewRenderMesh("mesh")
	mesh.Accept(rec)
	assert.Equal(t, []string{"applyMesh:mesh"}, rec.visits)
}

func TestUnsupportedKindsAreNoops(t *testing.T) {
	sys := &meshOnlySystem{}

	// Transform and Camera visits fall through to NoopSystem.
	ecss.NewTransform("trs").Accept(sys)
	ecss.NewCamera("cam").Accept(sys)
	assert.Equal(t, 0, sys.meshes)

	ecss.NewRenderMesh("mesh").Accept(sys)
	assert.Equal(t, 1, sys.meshes)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind ecss.Kind
		want string
	}{
		{ecss.KindEntity, "Entity"},
		{ecss.KindTransform, "Transform"},
		{ecss.KindCamera, "Camera"},
		{ecss.KindMesh, "Mesh"},
		{ecss.Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
