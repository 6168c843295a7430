package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"
)

// cpuProfile is a running CPU profile for the whole session.
type cpuProfile struct {
	f    *os.File
	once sync.Once
	err  error
}

// startCPUProfile begins writing a CPU profile to path.
func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &cpuProfile{f: f}, nil
}

// Stop flushes the profile. Only the first call does anything.
func (p *cpuProfile) Stop() error {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		p.err = p.f.Close()
	})
	return p.err
}
