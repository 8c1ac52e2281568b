package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/resume"
)

func TestValidate_Seed(t *testing.T) {
	raw, err := json.Marshal(resume.Seed())
	require.NoError(t, err)
	assert.NoError(t, Validate(raw))
}

func TestValidate_EmptyCollections(t *testing.T) {
	raw, err := json.Marshal(resume.ResumeData{})
	require.NoError(t, err)
	assert.NoError(t, Validate(raw))
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"personalInfo":`,
		"missing summary": `{"personalInfo":{"name":"","title":"","email":"","phone":"","location":""},"activities":[],"skills":[],"education":[]}`,
		"bad status": `{"personalInfo":{"name":"","title":"","email":"","phone":"","location":""},"summary":"",` +
			`"activities":[{"id":"1","type":"course","title":"","organization":"","date":"","status":"pending","skills":[],"description":""}],` +
			`"skills":[],"education":[]}`,
		"fractional level": `{"personalInfo":{"name":"","title":"","email":"","phone":"","location":""},"summary":"",` +
			`"activities":[],"skills":[{"name":"Go","level":12.5,"verified":false,"category":"technical"}],"education":[]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, Validate([]byte(raw)), ErrInvalidDocument)
		})
	}
}

func TestValidate_ChecksShapeOnly(t *testing.T) {
	raw := `{"personalInfo":{"name":"","title":"","email":"","phone":"","location":""},"summary":"",` +
		`"activities":[{"id":"","type":"course","title":"","organization":"","date":"","status":"completed","skills":[],"description":""}],` +
		`"skills":[{"name":"Go","level":150,"verified":false,"category":"technical"}],"education":[]}`
	assert.NoError(t, Validate([]byte(raw)))
}
