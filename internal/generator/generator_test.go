package generator

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shireesh.com/ontogen/internal/naming"
)

var update = flag.Bool("update", false, "rewrite golden files")

// assertGolden compares content with testdata/golden/<name>.
func assertGolden(t *testing.T, name string, content []byte) {
	t.Helper()
	p := filepath.Join("testdata", "golden", name)
	if *update {
		require.NoError(t, os.WriteFile(p, content, 0o644))
		return
	}
	want, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(content))
}

func TestRenderGolden(t *testing.T) {
	cases := []struct {
		spec naming.ClassSpec
		base string
	}{
		{naming.ClassSpec{ClassName: "Particle", ParentClassName: "Movable"}, "particle"},
		{naming.ClassSpec{ClassName: "ShapeshifterForm", ParentClassName: "GenericParentModule"}, "shapeshifter_form"},
	}
	for _, tc := range cases {
		t.Run(tc.spec.ClassName, func(t *testing.T) {
			names := naming.Derive(tc.spec)

			var hdr bytes.Buffer
			require.NoError(t, RenderHeader(&hdr, names))
			assertGolden(t, tc.base+".hpp.golden", hdr.Bytes())

			var src bytes.Buffer
			require.NoError(t, RenderSource(&src, names))
			assertGolden(t, tc.base+".cpp.golden", src.Bytes())
		})
	}
}

func TestRenderStartsWithLicense(t *testing.T) {
	names := naming.Derive(naming.ClassSpec{ClassName: "Brain", ParentClassName: "Entity"})
	lic := License()
	require.True(t, strings.HasPrefix(lic, "// Ylikuutio - A 3D game and simulation engine.\n"))
	require.False(t, strings.HasSuffix(lic, "\n"))

	for _, r := range []func(*bytes.Buffer) error{
		func(b *bytes.Buffer) error { return RenderHeader(b, names) },
		func(b *bytes.Buffer) error { return RenderSource(b, names) },
	} {
		var buf bytes.Buffer
		require.NoError(t, r(&buf))
		assert.True(t, strings.HasPrefix(buf.String(), lic+"\n\n"))
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	}
}

func TestRenderHeaderStructure(t *testing.T) {
	names := naming.Derive(naming.ClassSpec{ClassName: "MyWidget", ParentClassName: "Entity"})
	var buf bytes.Buffer
	require.NoError(t, RenderHeader(&buf, names))
	out := buf.String()

	assert.Contains(t, out, "#ifndef __MY_WIDGET_HPP_INCLUDED\n#define __MY_WIDGET_HPP_INCLUDED\n")
	assert.Contains(t, out, "#include \"entity.hpp\"\n")
	assert.Contains(t, out, "#include \"my_widget_struct.hpp\"")
	assert.Contains(t, out, "        class MyWidget: public yli::ontology::Entity\n")
	assert.Contains(t, out, "const yli::ontology::MyWidgetStruct& my_widget_struct,")
	assert.Contains(t, out, "yli::ontology::ChildModule child_of_entity;")
	assert.True(t, strings.HasSuffix(out, "}\n\n#endif\n"))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	spec := naming.ClassSpec{ClassName: "Particle", ParentClassName: "Movable"}

	written, err := Generate(dir, spec)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "particle.hpp"),
		filepath.Join(dir, "particle.cpp"),
	}, written)

	hdr, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Contains(t, string(hdr), "class Particle: public yli::ontology::Movable\n")

	src, err := os.ReadFile(written[1])
	require.NoError(t, err)
	assert.Contains(t, string(src), "Particle::~Particle()\n")
	assert.Contains(t, string(src), "#include \"particle.hpp\"\n")
}

func TestGenerateOverwrites(t *testing.T) {
	dir := t.TempDir()
	spec := naming.ClassSpec{ClassName: "Particle", ParentClassName: "Movable"}
	hdrPath := filepath.Join(dir, "particle.hpp")
	require.NoError(t, os.WriteFile(hdrPath, []byte(strings.Repeat("stale\n", 500)), 0o644))

	_, err := Generate(dir, spec)
	require.NoError(t, err)
	first, err := os.ReadFile(hdrPath)
	require.NoError(t, err)

	_, err = Generate(dir, spec)
	require.NoError(t, err)
	second, err := os.ReadFile(hdrPath)
	require.NoError(t, err)

	assert.NotContains(t, string(first), "stale")
	assert.Equal(t, first, second)
}

func TestGenerateMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	written, err := Generate(dir, naming.ClassSpec{ClassName: "Particle", ParentClassName: "Movable"})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, written)
}

func TestGenerateSourceFailureKeepsHeader(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the source file makes its creation fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "particle.cpp"), 0o755))

	written, err := Generate(dir, naming.ClassSpec{ClassName: "Particle", ParentClassName: "Movable"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "particle.cpp")
	assert.Equal(t, []string{filepath.Join(dir, "particle.hpp")}, written)
	assert.FileExists(t, filepath.Join(dir, "particle.hpp"))
}
