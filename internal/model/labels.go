package model

// LabelEncoder maps class indices back to human-readable job category
// names. The class set is closed: every prediction resolves to one of
// these labels or loading would have failed.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// InverseTransform resolves a class index to its category label.
func (l *LabelEncoder) InverseTransform(index int) (string, error) {
	if index < 0 || index >= len(l.Classes) {
		return "", &ArtifactError{
			Artifact: labelsFile,
			Message:  "class index out of range",
		}
	}
	return l.Classes[index], nil
}

// Contains reports whether the label belongs to the trained class set.
func (l *LabelEncoder) Contains(label string) bool {
	for _, c := range l.Classes {
		if c == label {
			return true
		}
	}
	return false
}

// validate checks internal consistency after load.
func (l *LabelEncoder) validate() error {
	if len(l.Classes) < 2 {
		return &ArtifactError{Artifact: labelsFile, Message: "need at least two classes"}
	}
	seen := make(map[string]struct{}, len(l.Classes))
	for _, c := range l.Classes {
		if c == "" {
			return &ArtifactError{Artifact: labelsFile, Message: "empty class label"}
		}
		if _, dup := seen[c]; dup {
			return &ArtifactError{Artifact: labelsFile, Message: "duplicate class label " + c}
		}
		seen[c] = struct{}{}
	}
	return nil
}
