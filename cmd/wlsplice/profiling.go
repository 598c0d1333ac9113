package main

import (
	"fmt"

	"github.com/pkg/profile"
)

type ProfileCategory string

const (
	ProfileCPU  ProfileCategory = "cpu"
	ProfileHeap ProfileCategory = "heap"
)

var profiler interface {
	Stop()
}

func startProfiling(what ProfileCategory) error {
	switch what {
	case ProfileCPU:
		profiler = profile.Start(profile.ProfilePath("."))
	case ProfileHeap:
		profiler = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	default:
		return fmt.Errorf("unknown profile %q: expected %s or %s", what, ProfileCPU, ProfileHeap)
	}
	return nil
}

func isProfiling() bool {
	return profiler != nil
}

func stopProfiling() {
	if isProfiling() {
		profiler.Stop()
		profiler = nil
	}
}
