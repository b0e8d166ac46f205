package main

import (
	"fmt"
	"strconv"
	"strings"

	"mesh-explode/internal/mathutil"
)

// vecFlag parses "x,y,z". set stays false until the flag is given.
type vecFlag struct {
	v   mathutil.Vec3
	set bool
}

func (f *vecFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.v[0], f.v[1], f.v[2])
}

func (f *vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	for k, p := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", k, err)
		}
		f.v[k] = c
	}
	f.set = true
	return nil
}

func (f *vecFlag) ptr() *mathutil.Vec3 {
	if !f.set {
		return nil
	}
	v := f.v
	return &v
}

// floatFlag is a float flag that remembers whether it was given, so an
// explicit 0 is distinguishable from the default.
type floatFlag struct {
	v   float64
	set bool
}

func (f *floatFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *floatFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

func (f *floatFlag) ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.v
	return &v
}
