package stlfile

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-explode/internal/mathutil"
	"mesh-explode/internal/mesh"
)

func readVec(b []byte) mathutil.Vec3 {
	var v mathutil.Vec3
	for k := 0; k < 3; k++ {
		v[k] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[k*4:])))
	}
	return v
}

func quadAndLine() *mesh.Mesh {
	m := mesh.New("quad")
	m.AddVert(mathutil.Vec3{0, 0, 0})
	m.AddVert(mathutil.Vec3{1, 0, 0})
	m.AddVert(mathutil.Vec3{1, 1, 0})
	m.AddVert(mathutil.Vec3{0, 1, 0})
	m.AddFace(0, 1, 2, 3)
	m.AddFace(0, 1) // skipped
	return m
}

func TestWrite(t *testing.T) {
	m := quadAndLine()
	require.Equal(t, 2, TriangleCount(m))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))

	data := buf.Bytes()
	require.Len(t, data, headerSize+4+2*50)
	assert.True(t, bytes.HasPrefix(data, []byte("mesh-explode quad")))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[headerSize:]))

	rec := data[headerSize+4:]
	assert.Equal(t, mathutil.Vec3{0, 0, 1}, readVec(rec[0:]))
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, readVec(rec[12:]))
	assert.Equal(t, mathutil.Vec3{1, 0, 0}, readVec(rec[24:]))
	assert.Equal(t, mathutil.Vec3{1, 1, 0}, readVec(rec[36:]))

	rec = rec[50:]
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, readVec(rec[12:]))
	assert.Equal(t, mathutil.Vec3{1, 1, 0}, readVec(rec[24:]))
	assert.Equal(t, mathutil.Vec3{0, 1, 0}, readVec(rec[36:]))
}

func TestWriteDegenerateNormalIsZero(t *testing.T) {
	m := mesh.New("flat")
	m.AddVert(mathutil.Vec3{0, 0, 0})
	m.AddVert(mathutil.Vec3{1, 1, 1})
	m.AddVert(mathutil.Vec3{2, 2, 2})
	m.AddFace(0, 1, 2)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))
	assert.Equal(t, mathutil.Vec3{}, readVec(buf.Bytes()[headerSize+4:]))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.stl")
	require.NoError(t, Save(path, quadAndLine()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(headerSize+4+2*50), info.Size())

	assert.Error(t, Save(filepath.Join(t.TempDir(), "missing", "out.stl"), quadAndLine()))
}
