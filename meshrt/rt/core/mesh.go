package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// FloatsPerVertex is the stride of the interleaved position + normal layout.
const FloatsPerVertex = 6

// DefaultMeshScale shrinks the source meshes to roughly unit size.
const DefaultMeshScale = float32(1.0 / 7.0)

const maxMeshPrealloc = 1 << 16

var ErrTruncatedMesh = errors.New("truncated mesh file")

// MeshError reports a problem at a specific line of a mesh file.
type MeshError struct {
	File string
	Line int
	Err  error
}

func (e *MeshError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *MeshError) Unwrap() error {
	return e.Err
}

type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh is a triangle list stored as interleaved {px,py,pz,nx,ny,nz} floats.
type Mesh struct {
	Name string
	Data []float32
}

func (m *Mesh) VertexCount() int {
	return len(m.Data) / FloatsPerVertex
}

func (m *Mesh) Vertex(i int) Vertex {
	o := i * FloatsPerVertex
	d := m.Data[o : o+FloatsPerVertex]
	return Vertex{
		Position: [3]float32{d[0], d[1], d[2]},
		Normal:   [3]float32{d[3], d[4], d[5]},
	}
}

func LoadMesh(path string, scale float32) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer f.Close()

	return ParseMesh(f, path, scale)
}

// ParseMesh reads a vertex count header followed by one float per line.
// Every value is multiplied by scale.
func ParseMesh(r io.Reader, name string, scale float32) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	line := 0

	var count int
	for {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &MeshError{File: name, Line: line + 1, Err: err}
			}
			return nil, &MeshError{File: name, Line: line + 1, Err: fmt.Errorf("%w: missing vertex count header", ErrTruncatedMesh)}
		}
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, &MeshError{File: name, Line: line, Err: fmt.Errorf("invalid vertex count: %w", err)}
		}
		if n < 0 {
			return nil, &MeshError{File: name, Line: line, Err: fmt.Errorf("negative vertex count %d", n)}
		}
		if n > math.MaxInt/FloatsPerVertex {
			return nil, &MeshError{File: name, Line: line, Err: fmt.Errorf("vertex count %d out of range", n)}
		}
		count = n
		break
	}

	// The header is untrusted; capacity grows with the lines actually read.
	want := count * FloatsPerVertex
	data := make([]float32, 0, min(want, maxMeshPrealloc))
	for i := 0; i < want; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &MeshError{File: name, Line: line + 1, Err: err}
			}
			return nil, &MeshError{
				File: name,
				Line: line + 1,
				Err:  fmt.Errorf("%w: expected %d values, got %d", ErrTruncatedMesh, want, i),
			}
		}
		line++
		v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 32)
		if err != nil {
			return nil, &MeshError{File: name, Line: line, Err: err}
		}
		data = append(data, float32(v)*scale)
	}

	return &Mesh{Name: name, Data: data}, nil
}
