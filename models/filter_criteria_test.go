package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteriaValidate(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		wantErr  bool
	}{
		{"empty", FilterCriteria{}, false},
		{"valid age range", FilterCriteria{MinAge: 25, MaxAge: 35}, false},
		{"single age bound", FilterCriteria{MinAge: 25}, false},
		{"inverted age range", FilterCriteria{MinAge: 40, MaxAge: 20}, true},
		{"inverted height range", FilterCriteria{MinHeightCm: 190, MaxHeightCm: 150}, true},
		{"valid height range", FilterCriteria{MinHeightCm: 150, MaxHeightCm: 190}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
