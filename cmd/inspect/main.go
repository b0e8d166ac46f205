package main

import (
	"fmt"
	"os"

	"mesh-explode/internal/objfile"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect file.obj [file.obj ...]")
		os.Exit(2)
	}

	exit := 0
	for _, path := range os.Args[1:] {
		m, err := objfile.Load(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			exit = 1
			continue
		}
		fmt.Printf("%s (%s)\n", path, m.Name)
		if err := m.Validate(); err != nil {
			fmt.Printf("  Invalid: %v\n", err)
			exit = 1
			continue
		}

		s := m.ComputeStats()
		fmt.Printf("  Faces: %d (tris=%d, quads=%d, ngons=%d, degenerate=%d)\n",
			s.Faces, s.Triangles, s.Quads, s.NGons, s.Degenerate)
		fmt.Printf("  Verts: %d, Corners: %d, Detached: %v\n", s.Verts, s.Corners, s.Detached)
		fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
			s.Min[0], s.Max[0], s.Min[1], s.Max[1], s.Min[2], s.Max[2])
		size := s.Max.Sub(s.Min)
		fmt.Printf("  Size: %.3f x %.3f x %.3f\n", size[0], size[1], size[2])
	}
	os.Exit(exit)
}
