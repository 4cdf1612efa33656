// Package parser decodes project documents written in TOML.
package parser

import (
	"bytes"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/starford/projlog/internal/apperr"
	"github.com/starford/projlog/internal/models"
)

// Document holds the fields of a project file exactly as written. Absent
// fields keep their zero value.
type Document struct {
	Status string `toml:"status"`
	Name   string `toml:"name"`
	Slug   string `toml:"slug"`

	What string `toml:"what"`
	How  string `toml:"how"`
	Now  string `toml:"now"`

	With  models.StringList `toml:"with"`
	Where models.StringList `toml:"where"`
	Media models.StringList `toml:"media"`

	Started  models.Timestamp `toml:"started"`
	Finished models.Timestamp `toml:"finished"`
}

// Result holds the output of parsing a project file.
type Result struct {
	Document Document
	// Unknown lists keys present in the file that no field consumed.
	Unknown []string
}

// Parse decodes raw TOML bytes. Any syntax or type error is reported as
// apperr.ErrParse.
func Parse(data []byte) (*Result, error) {
	var doc Document
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, apperr.Parse(err)
	}
	return &Result{
		Document: doc,
		Unknown:  unknownKeys(md),
	}, nil
}

func unknownKeys(md toml.MetaData) []string {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	out := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		out = append(out, k.String())
	}
	sort.Strings(out)
	return out
}
