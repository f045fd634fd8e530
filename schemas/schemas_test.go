package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"vectorizer.schema.json",
	"classifier.schema.json",
	"labels.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_HaveSchemaStructure(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Contains(t, schemaObj, "$schema")
			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "properties")
			assert.Contains(t, schemaObj, "required")
		})
	}
}

func TestBundledArtifacts_MatchSchemaNames(t *testing.T) {
	// Every schema has a matching artifact in models/
	artifacts := map[string]string{
		"vectorizer.schema.json": "../models/vectorizer.json",
		"classifier.schema.json": "../models/classifier.json",
		"labels.schema.json":     "../models/labels.json",
	}

	for schemaFile, artifactPath := range artifacts {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(artifactPath)
			require.NoError(t, err, "bundled artifact should exist")

			var v interface{}
			assert.NoError(t, json.Unmarshal(data, &v))
		})
	}
}
