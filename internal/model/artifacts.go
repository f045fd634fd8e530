// Package model loads and serves the pre-trained classification artifacts:
// the TF-IDF vectorizer, the linear classifier, and the label encoder.
// All three are read once at startup and never mutated afterwards, so
// concurrent requests can share them without locking.
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// Artifact file names within the model directory.
const (
	vectorizerFile = "vectorizer.json"
	classifierFile = "classifier.json"
	labelsFile     = "labels.json"
)

// Schema files used to validate artifacts before decoding.
const (
	vectorizerSchema = "schemas/vectorizer.schema.json"
	classifierSchema = "schemas/classifier.schema.json"
	labelsSchema     = "schemas/labels.schema.json"
)

// Artifacts bundles the three loaded model artifacts. Construct with
// Load and inject into the inference engine; there is no global instance.
type Artifacts struct {
	Vectorizer   *Vectorizer
	Classifier   *Classifier
	LabelEncoder *LabelEncoder
}

// Load reads all three artifacts from dir. Loading is all-or-nothing: if
// any file is missing, fails schema validation, or is internally
// inconsistent, Load returns an error and the caller must treat it as a
// fatal startup failure.
func Load(dir string) (*Artifacts, error) {
	a := &Artifacts{
		Vectorizer:   &Vectorizer{},
		Classifier:   &Classifier{},
		LabelEncoder: &LabelEncoder{},
	}

	var g errgroup.Group
	g.Go(func() error {
		return loadArtifact(dir, vectorizerFile, vectorizerSchema, a.Vectorizer)
	})
	g.Go(func() error {
		return loadArtifact(dir, classifierFile, classifierSchema, a.Classifier)
	})
	g.Go(func() error {
		return loadArtifact(dir, labelsFile, labelsSchema, a.LabelEncoder)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := a.Vectorizer.validate(); err != nil {
		return nil, err
	}
	if err := a.Classifier.validate(); err != nil {
		return nil, err
	}
	if err := a.LabelEncoder.validate(); err != nil {
		return nil, err
	}
	if err := a.crossCheck(); err != nil {
		return nil, err
	}
	return a, nil
}

// loadArtifact reads one artifact file, validates it against its JSON
// Schema, and decodes it into dst.
func loadArtifact(dir, name, schemaRel string, dst any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return &ArtifactError{Artifact: name, Message: "read failed", Cause: err}
	}

	schemaPath := schemas.ResolveSchemaPath(schemaRel)
	if schemaPath == "" {
		return &ArtifactError{
			Artifact: name,
			Message:  fmt.Sprintf("schema %s not found", schemaRel),
		}
	}
	if err := schemas.ValidateBytes(schemaPath, data); err != nil {
		return &ArtifactError{Artifact: name, Message: "schema validation failed", Cause: err}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &ArtifactError{Artifact: name, Message: "decode failed", Cause: err}
	}
	return nil
}

// crossCheck verifies the three artifacts agree on dimensions: the
// vectorizer's feature space must match the classifier's input width,
// and the classifier's class count must match the label set.
func (a *Artifacts) crossCheck() error {
	if a.Vectorizer.NumFeatures() != a.Classifier.NumFeatures() {
		return &ArtifactError{
			Artifact: classifierFile,
			Message: fmt.Sprintf("feature dimension mismatch: vectorizer has %d, classifier expects %d",
				a.Vectorizer.NumFeatures(), a.Classifier.NumFeatures()),
		}
	}
	if a.Classifier.NumClasses() != len(a.LabelEncoder.Classes) {
		return &ArtifactError{
			Artifact: labelsFile,
			Message: fmt.Sprintf("class count mismatch: classifier has %d, label encoder has %d",
				a.Classifier.NumClasses(), len(a.LabelEncoder.Classes)),
		}
	}
	return nil
}
