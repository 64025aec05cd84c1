package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
	"github.com/mfarrell/go-whitted-raytracer/pkg/geometry"
)

// vec3Flag parses a comma-separated vector flag like "1,2.5,-3"
type vec3Flag struct {
	value core.Vec3
	isSet bool
}

func (f *vec3Flag) String() string {
	if !f.isSet {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.value.X, f.value.Y, f.value.Z)
}

func (f *vec3Flag) Set(s string) error {
	v, err := parseVec3(s)
	if err != nil {
		return err
	}
	f.value = v
	f.isSet = true
	return nil
}

func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected \"x,y,z\", got %q", s)
	}
	var components [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid component %q in %q", part, s)
		}
		components[i] = v
	}
	return core.NewVec3(components[0], components[1], components[2]), nil
}

func parseAlbedo(s string) (core.Vec3, error) {
	v, err := parseVec3(s)
	if err != nil {
		return core.Vec3{}, err
	}
	return v.Clamp(0, 1), nil
}

func parseReflectivity(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid reflectivity %q", s)
	}
	return max(0, min(1, v)), nil
}

func splitFields(s string, n int) ([]string, error) {
	parts := strings.Split(s, ";")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d ';'-separated fields, got %d in %q", n, len(parts), s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// objectListFlag accumulates primitives added via the repeatable -add-* flags
type objectListFlag struct {
	primitives []geometry.Primitive
}

// sphereFlag parses "cx,cy,cz;radius;r,g,b;reflectivity"
type sphereFlag struct{ objects *objectListFlag }

func (f sphereFlag) String() string { return "" }

func (f sphereFlag) Set(s string) error {
	fields, err := splitFields(s, 4)
	if err != nil {
		return err
	}
	center, err := parseVec3(fields[0])
	if err != nil {
		return err
	}
	radius, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("invalid radius %q", fields[1])
	}
	albedo, err := parseAlbedo(fields[2])
	if err != nil {
		return err
	}
	reflectivity, err := parseReflectivity(fields[3])
	if err != nil {
		return err
	}
	f.objects.primitives = append(f.objects.primitives,
		geometry.NewSphere(center, radius, albedo, reflectivity))
	return nil
}

// planeFlag parses "px,py,pz;nx,ny,nz;r,g,b;reflectivity"
type planeFlag struct{ objects *objectListFlag }

func (f planeFlag) String() string { return "" }

func (f planeFlag) Set(s string) error {
	fields, err := splitFields(s, 4)
	if err != nil {
		return err
	}
	point, err := parseVec3(fields[0])
	if err != nil {
		return err
	}
	normal, err := parseVec3(fields[1])
	if err != nil {
		return err
	}
	albedo, err := parseAlbedo(fields[2])
	if err != nil {
		return err
	}
	reflectivity, err := parseReflectivity(fields[3])
	if err != nil {
		return err
	}
	f.objects.primitives = append(f.objects.primitives,
		geometry.NewPlane(point, normal, albedo, reflectivity))
	return nil
}

// cubeFlag parses "cx,cy,cz;size;r,g,b;reflectivity"
type cubeFlag struct{ objects *objectListFlag }

func (f cubeFlag) String() string { return "" }

func (f cubeFlag) Set(s string) error {
	fields, err := splitFields(s, 4)
	if err != nil {
		return err
	}
	center, err := parseVec3(fields[0])
	if err != nil {
		return err
	}
	size, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("invalid size %q", fields[1])
	}
	albedo, err := parseAlbedo(fields[2])
	if err != nil {
		return err
	}
	reflectivity, err := parseReflectivity(fields[3])
	if err != nil {
		return err
	}
	f.objects.primitives = append(f.objects.primitives,
		geometry.NewCube(center, size, albedo, reflectivity))
	return nil
}

// cylinderFlag parses "cx,cy,cz;radius;halfHeight;r,g,b;reflectivity"
type cylinderFlag struct{ objects *objectListFlag }

func (f cylinderFlag) String() string { return "" }

func (f cylinderFlag) Set(s string) error {
	fields, err := splitFields(s, 5)
	if err != nil {
		return err
	}
	center, err := parseVec3(fields[0])
	if err != nil {
		return err
	}
	radius, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("invalid radius %q", fields[1])
	}
	halfHeight, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("invalid half-height %q", fields[2])
	}
	albedo, err := parseAlbedo(fields[3])
	if err != nil {
		return err
	}
	reflectivity, err := parseReflectivity(fields[4])
	if err != nil {
		return err
	}
	f.objects.primitives = append(f.objects.primitives,
		geometry.NewCylinder(center, radius, halfHeight, albedo, reflectivity))
	return nil
}
