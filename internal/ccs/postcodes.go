// Package ccs answers whether a postcode is part of the census coverage survey.
package ccs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Postcodes is an immutable set of CCS postcodes. Lookups ignore case and spacing.
type Postcodes struct {
	set map[string]struct{}
}

func New(postcodes []string) *Postcodes {
	p := &Postcodes{set: make(map[string]struct{}, len(postcodes))}
	for _, pc := range postcodes {
		if key := normalize(pc); key != "" {
			p.set[key] = struct{}{}
		}
	}
	return p
}

// Load reads one postcode per line from path. Blank lines and lines starting
// with # are skipped.
func Load(path string) (*Postcodes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ccs postcodes: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (*Postcodes, error) {
	var postcodes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		postcodes = append(postcodes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ccs postcodes: %w", err)
	}
	return New(postcodes), nil
}

// FromConfig loads from file when one is configured, otherwise uses the list.
func FromConfig(file string, list []string) (*Postcodes, error) {
	if file != "" {
		return Load(file)
	}
	return New(list), nil
}

func (p *Postcodes) IsInCCS(postcode string) bool {
	_, ok := p.set[normalize(postcode)]
	return ok
}

func (p *Postcodes) Len() int { return len(p.set) }

func normalize(postcode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postcode), ""))
}
