package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/modern-world/internal/storage"
	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
)

func main() {
	exportYAML := flag.Bool("yaml", false, "print the save as YAML after validating")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-yaml] <save.json|save.yaml>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	validator := &SaveValidator{}

	gs, err := validator.validateFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	if *exportYAML {
		if err := storage.ExportYAML(os.Stdout, gs); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println("Save file is valid!")
}

type SaveValidator struct {
	errors []string
}

func (v *SaveValidator) validateFile(filename string) (*state.GameState, error) {
	fmt.Fprintf(os.Stderr, "Validating %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	gs, err := decode(filename, data)
	if err != nil {
		return nil, err
	}

	v.errors = nil
	v.validateState(gs)
	if len(v.errors) > 0 {
		return nil, fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return gs, nil
}

func decode(filename string, data []byte) (*state.GameState, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return storage.ImportYAML(bytes.NewReader(data))
	case ".json":
	default:
		return nil, fmt.Errorf("save file must have .json or .yaml extension: %s", filepath.Base(filename))
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("file %s contains invalid JSON", filename)
	}
	var gs state.GameState
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&gs); err != nil && err != io.EOF {
		return nil, fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}
	return &gs, nil
}

func (v *SaveValidator) validateState(gs *state.GameState) {
	if strings.TrimSpace(gs.Country) == "" {
		v.addError("country is empty")
	}
	if !catalog.IsValidRole(gs.PlayerRole) {
		v.addError(fmt.Sprintf("unknown player role '%s'", gs.PlayerRole))
	}
	if len(gs.History) > state.HistoryLimit {
		v.addError(fmt.Sprintf("history has %d reports, limit is %d", len(gs.History), state.HistoryLimit))
	}

	for _, m := range gs.Ministries {
		if !catalog.IsKnownMinistry(m.ID) {
			v.addError(fmt.Sprintf("unknown ministry id '%s'", m.ID))
		}
		if len(m.AutomatedActions) > state.AutomatedActionLimit {
			v.addError(fmt.Sprintf("ministry '%s' has %d automated actions, limit is %d", m.ID, len(m.AutomatedActions), state.AutomatedActionLimit))
		}
	}

	seen := make(map[string]bool, len(gs.StagedDecisions))
	for _, sd := range gs.StagedDecisions {
		if seen[sd.DecisionTitle] {
			v.addError(fmt.Sprintf("decision '%s' is staged more than once", sd.DecisionTitle))
		}
		seen[sd.DecisionTitle] = true
	}

	unlocked := make(map[string]bool, len(gs.UnlockedTechIDs))
	for _, id := range gs.UnlockedTechIDs {
		if _, ok := catalog.TechnologyByID(id); !ok {
			v.addError(fmt.Sprintf("unknown technology id '%s'", id))
		}
		if unlocked[id] {
			v.addError(fmt.Sprintf("technology '%s' is unlocked more than once", id))
		}
		unlocked[id] = true
	}
}

func (v *SaveValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}
