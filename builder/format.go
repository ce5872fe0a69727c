package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fontanf/stablesolver-sub000/graph"
)

// Format names the five external instance formats InstanceBuilder.Read
// understands. Exact field semantics (1-indexing, comment markers, section
// layout) are grounded on the original stablesolver instance_builder.cpp
// readers, since spec.md §6 leaves the wire format itself external.
type Format string

const (
	FormatDIMACS1992   Format = "dimacs1992"
	FormatDIMACS2010   Format = "dimacs2010"
	FormatMatrixMarket Format = "matrixmarket"
	FormatChaco        Format = "chaco"
	FormatSNAP         Format = "snap"
)

// ErrUnknownFormat is returned by Read for an unrecognized Format value.
var ErrUnknownFormat = fmt.Errorf("builder: unknown instance format")

// Read parses r according to format and feeds the result into b via
// AddVertices/AddVertex/SetWeight/AddEdge. It does not call Build.
func (b *InstanceBuilder) Read(r io.Reader, format Format) error {
	switch format {
	case FormatDIMACS1992:
		return b.readDIMACS1992(r)
	case FormatDIMACS2010:
		return b.readDIMACS2010(r)
	case FormatMatrixMarket:
		return b.readMatrixMarket(r)
	case FormatChaco:
		return b.readChaco(r)
	case FormatSNAP:
		return b.readSNAP(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (b *InstanceBuilder) readDIMACS1992(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			// Comment line; name extraction is out of scope here.
		case "p":
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return fmt.Errorf("builder: dimacs1992 'p' line: %w", err)
			}
			b.AddVertices(n)
		case "n":
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("builder: dimacs1992 'n' line: %w", err)
			}
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return fmt.Errorf("builder: dimacs1992 'n' line: %w", err)
			}
			if err := b.SetWeight(id-1, w); err != nil {
				return err
			}
		case "e":
			v1, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("builder: dimacs1992 'e' line: %w", err)
			}
			v2, err := strconv.Atoi(fields[2])
			if err != nil {
				return fmt.Errorf("builder: dimacs1992 'e' line: %w", err)
			}
			if err := b.AddEdge(v1-1, v2-1, graph.DuplicateAllow); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func (b *InstanceBuilder) readDIMACS2010(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	first := true
	vertexID := 0
	n := -1
	for (n == -1 || vertexID != n) && scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if first {
			parsed, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("builder: dimacs2010 header: %w", err)
			}
			n = parsed
			b.AddVertices(n)
			first = false
			continue
		}
		for _, tok := range fields {
			v2, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("builder: dimacs2010 adjacency row: %w", err)
			}
			v2--
			if v2 > vertexID {
				if err := b.AddEdge(vertexID, v2, graph.DuplicateAllow); err != nil {
					return err
				}
			}
		}
		vertexID++
	}
	return scanner.Err()
}

func (b *InstanceBuilder) readMatrixMarket(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var header string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "%") {
			continue
		}
		header = line
		break
	}
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return fmt.Errorf("builder: matrixmarket: missing header line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("builder: matrixmarket header: %w", err)
	}
	b.AddVertices(n)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		v1, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("builder: matrixmarket edge line: %w", err)
		}
		v2, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("builder: matrixmarket edge line: %w", err)
		}
		if err := b.AddEdge(v1-1, v2-1, graph.DuplicateAllow); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (b *InstanceBuilder) readChaco(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !scanner.Scan() {
		return fmt.Errorf("builder: chaco: empty file")
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 {
		return fmt.Errorf("builder: chaco: missing header line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("builder: chaco header: %w", err)
	}
	b.AddVertices(n)

	for v := 0; v < n; v++ {
		if !scanner.Scan() {
			return fmt.Errorf("builder: chaco: missing adjacency row for vertex %d", v)
		}
		for _, tok := range strings.Fields(scanner.Text()) {
			v2, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("builder: chaco adjacency row: %w", err)
			}
			v2--
			if v2 > v {
				if err := b.AddEdge(v, v2, graph.DuplicateAllow); err != nil {
					return err
				}
			}
		}
	}
	return scanner.Err()
}

func (b *InstanceBuilder) readSNAP(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		v1, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("builder: snap edge line: %w", err)
		}
		v2, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("builder: snap edge line: %w", err)
		}
		for max(v1, v2) >= b.NumberOfVertices() {
			b.AddVertex(0)
		}
		if err := b.AddEdge(v1, v2, graph.DuplicateAllow); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
