package persist

import (
	"encoding/json"
	"os"

	"github.com/turinglab/turing-runtime/errors"
)

// Save writes a document to path as JSON.
func Save(path string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.PhasePersist, errors.KindInvalidData, err, "marshal document")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.PhasePersist, errors.KindInvalidData, err, "write "+path)
	}
	return nil
}

// LoadMachine reads a machine document from path.
func LoadMachine(path string) (MachineDoc, error) {
	var doc MachineDoc
	err := load(path, &doc)
	return doc, err
}

// LoadAlphabet reads an alphabet document from path.
func LoadAlphabet(path string) (AlphabetDoc, error) {
	var doc AlphabetDoc
	err := load(path, &doc)
	return doc, err
}

// LoadTape reads a tape document from path.
func LoadTape(path string) (TapeDoc, error) {
	var doc TapeDoc
	err := load(path, &doc)
	return doc, err
}

func load(path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Load("read "+path, err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return errors.Load("parse "+path, err)
	}
	return nil
}
