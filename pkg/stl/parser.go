// Package stl decodes STL files, in both the ASCII and the binary
// little-endian variant, into mesh values.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/printfab/printcost/pkg/geometry"
	"github.com/printfab/printcost/pkg/mesh"
)

// Parse reads an STL file and returns the decoded mesh
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads STL bytes from r and returns the decoded mesh as a flat
// vertex soup (three vertices per triangle, no index buffer)
func Decode(r io.Reader) (*mesh.Mesh, error) {
	br := bufio.NewReader(r)

	// Check if it's ASCII format (starts with "solid")
	head, err := br.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	if string(head) == "solid" {
		return decodeASCII(br)
	}

	return decodeBinary(br)
}

// DecodeIndexed decodes STL bytes and dedupes shared vertex positions
// into an index buffer, so that each distinct position is stored once.
func DecodeIndexed(r io.Reader) (*mesh.Mesh, error) {
	soup, err := Decode(r)
	if err != nil {
		return nil, err
	}

	vertMap := make(map[geometry.Vector3]int)
	vertices := make([]geometry.Vector3, 0, len(soup.Vertices)/4)
	indices := make([]int, 0, len(soup.Vertices))

	for _, v := range soup.Vertices {
		idx, ok := vertMap[v]
		if !ok {
			idx = len(vertices)
			vertices = append(vertices, v)
			vertMap[v] = idx
		}
		indices = append(indices, idx)
	}

	return mesh.NewIndexed(soup.Name, vertices, indices)
}

// decodeASCII parses an ASCII STL stream
func decodeASCII(reader io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(reader)

	name := ""
	var vertices []geometry.Vector3
	var facet []geometry.Vector3

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				facet = append(facet, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(facet) == 3 {
				vertices = append(vertices, facet...)
			}
			facet = facet[:0] // Clear vertices
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return mesh.New(name, vertices), nil
}

// decodeBinary parses a binary STL stream
func decodeBinary(reader io.Reader) (*mesh.Mesh, error) {
	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Extract name from header (if present)
	name := string(bytes.TrimRight(header, "\x00"))

	// Read triangle count
	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	// The declared count is untrusted input; grow the slice as triangles
	// actually arrive instead of preallocating from it.
	var vertices []geometry.Vector3

	for i := uint32(0); i < triangleCount; i++ {
		// Normal followed by three vertices, 32-bit floats
		var facet [12]float32
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		// Attribute byte count (usually unused, but required by the format)
		var attributeByteCount uint16
		if err := binary.Read(reader, binary.LittleEndian, &attributeByteCount); err != nil {
			return nil, fmt.Errorf("failed to read attribute for triangle %d: %w", i, err)
		}

		// The normal in facet[0:3] is ignored; winding determines orientation
		for v := 0; v < 3; v++ {
			vertices = append(vertices, geometry.NewVector3(
				float64(facet[3+3*v]),
				float64(facet[3+3*v+1]),
				float64(facet[3+3*v+2]),
			))
		}
	}

	return mesh.New(name, vertices), nil
}
